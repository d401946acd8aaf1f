package validate

import (
	"errors"
	"fmt"

	"pouchesitaly/helper"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

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

		c.Locals("createProductInput", input)
		return c.Next()
	}
}

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProductInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Price != nil && *input.Price < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Price must not be negative", errors.New("price invalid"))
		}
		if input.PackSize != nil && *input.PackSize < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pack size must be at least 1", errors.New("packSize invalid"))
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Forbidden", errors.New("admin role required"))
		}

		c.Locals("updateProductInput", input)
		return c.Next()
	}
}
