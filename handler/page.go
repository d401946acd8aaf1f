package handler

import (
	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// CMS content: pages, menus, site metadata. The storefront reads,
// admins write.

func GetPageBySlug(c *fiber.Ctx) error {
	pageSlug := c.Params("slug")

	var page model.Page
	if err := database.DB.Where("slug = ? AND published = ?", pageSlug, true).First(&page).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Page not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func GetMenus(c *fiber.Ctx) error {
	var menus []model.Menu
	if err := database.DB.Order("location").Find(&menus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, menus)
}

func GetSiteMeta(c *fiber.Ctx) error {
	var metas []model.SiteMeta
	if err := database.DB.Find(&metas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// flatten to a key/value map for the storefront
	kv := make(map[string]string, len(metas))
	for _, meta := range metas {
		kv[meta.Key] = meta.Value
	}
	return utils.SuccessResponse(c, fiber.StatusOK, kv)
}

func GetPagesAdmin(c *fiber.Ctx) error {
	var pages []model.Page
	if err := database.DB.Order("updated_at desc").Find(&pages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pages)
}

func CreatePage(c *fiber.Ctx) error {
	input, ok := c.Locals("createPageInput").(model.CreatePageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing page input", nil)
	}

	var page model.Page
	if err := copier.Copy(&page, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		page.Slug = helper.GenerateUniqueSlug(tx, &model.Page{}, input.Title)
		return tx.Create(&page).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, page)
}

func EditPage(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("updatePageInput").(model.UpdatePageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing page input", nil)
	}

	var page model.Page
	if err := database.DB.First(&page, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Page not found", err)
	}

	if err := copier.CopyWithOption(&page, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&page).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func DeletePage(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok || len(input.IDs) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No page ids given", nil)
	}

	if err := database.DB.Delete(&model.Page{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

func UpsertMenu(c *fiber.Ctx) error {
	var input model.Menu
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid menu input", err)
	}
	if input.Location == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Menu location is required", nil)
	}

	var menu model.Menu
	err := database.DB.Where(model.Menu{Location: input.Location}).
		Assign(model.Menu{Items: input.Items}).
		FirstOrCreate(&menu).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

func UpsertSiteMeta(c *fiber.Ctx) error {
	var input model.SiteMeta
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid meta input", err)
	}
	if input.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Meta key is required", nil)
	}

	var meta model.SiteMeta
	err := database.DB.Where(model.SiteMeta{Key: input.Key}).
		Assign(model.SiteMeta{Value: input.Value}).
		FirstOrCreate(&meta).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, meta)
}
