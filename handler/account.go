package handler

import (
	"errors"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

// Admin user management. Exposed both as REST routes and as the rpc
// functions of the data proxy (handler/data.go), so the logic lives in
// plain funcs returning values.

func listAccounts() ([]model.Account, error) {
	var accounts model.Accounts
	err := database.DB.Order("username").Find(&accounts).Error
	return accounts, err
}

func createAccount(input model.CreateAccountInput) (*model.Account, error) {
	if input.Role == "" {
		input.Role = constants.ROLE_EDITOR
	}
	if input.Role != constants.ROLE_ADMIN && input.Role != constants.ROLE_EDITOR {
		return nil, errors.New("unknown role " + input.Role)
	}

	var existing model.Account
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, errors.New("username already exists")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := model.Account{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Active:   true,
		Role:     input.Role,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func removeAccount(id uint) error {
	var count int64
	database.DB.Model(&model.Account{}).Where("role = ? AND active = ? AND id <> ?", constants.ROLE_ADMIN, true, id).Count(&count)

	var account model.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		return errors.New("account not found")
	}
	// never delete the last active admin
	if account.Role == constants.ROLE_ADMIN && count == 0 {
		return errors.New("cannot remove the last admin account")
	}
	return database.DB.Delete(&account).Error
}

func setAccountPassword(input model.SetPasswordInput) error {
	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	result := database.DB.Model(&model.Account{}).Where("id = ?", input.AccountId).Update("password", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("account not found")
	}
	return nil
}

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", nil)
	}

	accounts, err := listAccounts()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", nil)
	}

	input, ok := c.Locals("createAccountInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing account input", nil)
	}

	account, err := createAccount(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Create account failed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func DeleteAccount(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", nil)
	}

	id, _ := c.Locals("inputId").(int)
	if err := removeAccount(uint(id)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Delete account failed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

func SetAccountPassword(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", nil)
	}

	input, ok := c.Locals("setPasswordInput").(model.SetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing password input", nil)
	}

	if err := setAccountPassword(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Set password failed", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": input.AccountId})
}
