package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

// decodeRPCData maps the free-form rpc data onto a typed input via its
// json tags.
func decodeRPCData(data map[string]any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// DataProxy is the generic admin-data endpoint: whitelisted raw table
// operations plus a handful of named rpc functions for account
// management. The admin UI speaks only this.
func DataProxy(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin only", nil)
	}

	var input model.DataProxyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if input.Operation == "rpc" {
		return dataProxyRPC(c, input)
	}

	if !tableAllowed(input.Table) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Table not allowed", fmt.Errorf("table %q", input.Table))
	}

	switch input.Operation {
	case "select":
		var rows []map[string]any
		query := database.DB.Table(input.Table)
		for k, v := range input.Match {
			query = query.Where(fmt.Sprintf("%s = ?", k), v)
		}
		if err := query.Find(&rows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, rows)

	case "insert":
		if len(input.Data) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing data", nil)
		}
		if err := database.DB.Table(input.Table).Create(input.Data).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, input.Data)

	case "update":
		if len(input.Data) == 0 || len(input.Match) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Update needs data and match", nil)
		}
		query := database.DB.Table(input.Table)
		for k, v := range input.Match {
			query = query.Where(fmt.Sprintf("%s = ?", k), v)
		}
		result := query.Updates(input.Data)
		if result.Error != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": result.RowsAffected})

	case "delete":
		if len(input.Match) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Delete needs match", nil)
		}
		query := database.DB.Table(input.Table)
		for k, v := range input.Match {
			query = query.Where(fmt.Sprintf("%s = ?", k), v)
		}
		result := query.Delete(nil)
		if result.Error != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})

	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown operation", fmt.Errorf("operation %q", input.Operation))
	}
}

func dataProxyRPC(c *fiber.Ctx, input model.DataProxyInput) error {
	switch input.Function {
	case "list_users":
		accounts, err := listAccounts()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, accounts)

	case "create_user":
		var createInput model.CreateAccountInput
		if err := decodeRPCData(input.Data, &createInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rpc data", err)
		}
		account, err := createAccount(createInput)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Create user failed", err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, account)

	case "delete_user":
		id, ok := input.Data["id"].(float64)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing user id", nil)
		}
		if err := removeAccount(uint(id)); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Delete user failed", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": uint(id)})

	case "set_password":
		var pwInput model.SetPasswordInput
		if err := decodeRPCData(input.Data, &pwInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rpc data", err)
		}
		if err := setAccountPassword(pwInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Set password failed", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"updated": pwInput.AccountId})

	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown rpc function", errors.New(input.Function))
	}
}

func tableAllowed(table string) bool {
	for _, allowed := range constants.ProxyTableWhitelist {
		if allowed == table {
			return true
		}
	}
	return false
}
