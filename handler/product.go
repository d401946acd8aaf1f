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

// GetProducts is the public catalog listing: active products only,
// filterable by brand/flavor/strength, searchable on both languages.
func GetProducts(c *fiber.Ctx) error {
	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := database.DB.Model(&model.Product{}).Where("active = ?", true)

	if filter.Brand != nil && *filter.Brand != "" {
		query = query.Where("brand = ?", *filter.Brand)
	}
	if filter.Flavor != nil && *filter.Flavor != "" {
		query = query.Where("flavor = ?", *filter.Flavor)
	}
	if filter.StrengthMg != nil {
		query = query.Where("strength_mg = ?", *filter.StrengthMg)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("name LIKE ? OR name_it LIKE ?", like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var products []model.Product
	if err := utils.ApplyPagination(query.Order("name"), filter.Limit, filter.Page).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetProductBySlug(c *fiber.Ctx) error {
	productSlug := c.Params("slug")

	var product model.Product
	if err := database.DB.Where("slug = ? AND active = ?", productSlug, true).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// Admin catalog CRUD below. All go through Protected() + validate.

func GetProductsAdmin(c *fiber.Ctx) error {
	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := database.DB.Model(&model.Product{})
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("name LIKE ? OR name_it LIKE ? OR brand LIKE ?", like, like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var products []model.Product
	if err := utils.ApplyPagination(query.Order("updated_at desc"), filter.Limit, filter.Page).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("createProductInput").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing product input", nil)
	}

	var product model.Product
	if err := copier.Copy(&product, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if product.PackSize < 1 {
		product.PackSize = 1
	}
	product.Active = utils.Ptr(true)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		product.Slug = helper.GenerateUniqueSlug(tx, &model.Product{}, input.Name)
		return tx.Create(&product).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("updateProductInput").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing product input", nil)
	}

	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	// only non-nil pointers land on the row
	if err := copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok || len(input.IDs) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No product ids given", nil)
	}

	if err := database.DB.Delete(&model.Product{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// GetCatalogFacets returns the distinct brand/flavor values the
// storefront filter bar renders.
func GetCatalogFacets(c *fiber.Ctx) error {
	var brands, flavors []string

	if err := database.DB.Model(&model.Product{}).Where("active = ? AND brand <> ''", true).
		Distinct("brand").Order("brand").Pluck("brand", &brands).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(&model.Product{}).Where("active = ? AND flavor <> ''", true).
		Distinct("flavor").Order("flavor").Pluck("flavor", &flavors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"brands":  brands,
		"flavors": flavors,
	})
}

