package validate

import (
	"park_manager/constants"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func ToggleNotifications() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ToggleNotificationsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("toggleNotificationsInput", input)
		return c.Next()
	}
}
