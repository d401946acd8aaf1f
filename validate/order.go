package validate

import (
	"errors"
	"fmt"
	"strings"

	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput

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

		input.Status = strings.ToLower(strings.TrimSpace(input.Status))
		if !helper.IsValidStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown order status", errors.New(input.Status))
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", errors.New("admin role required"))
		}

		c.Locals("statusInput", input)
		return c.Next()
	}
}
