package validate

import (
	"park_manager/constants"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAttraction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAttractionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createAttractionInput", input)
		return c.Next()
	}
}

func UpdateAttraction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAttractionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("updateAttractionInput", input)
		return c.Next()
	}
}

func UpdateWaitTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateWaitTimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("updateWaitTimeInput", input)
		return c.Next()
	}
}
