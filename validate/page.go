package validate

import (
	"errors"
	"fmt"

	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePageInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", errors.New("admin role required"))
		}

		c.Locals("createPageInput", input)
		return c.Next()
	}
}

func UpdatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePageInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Title != nil && *input.Title == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title must not be empty", errors.New("title invalid"))
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", errors.New("admin role required"))
		}

		c.Locals("updatePageInput", input)
		return c.Next()
	}
}
