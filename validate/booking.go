package validate

import (
	"park_manager/constants"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateServiceBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createServiceBookingInput", input)
		return c.Next()
	}
}

func UpdateServiceBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateServiceBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("updateServiceBookingInput", input)
		return c.Next()
	}
}
