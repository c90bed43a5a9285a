package validate

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.PaymentMethod != nil && !utils.IsValidValueOfConstant(*input.PaymentMethod, constants.PaymentMethods) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown payment method", errors.New("payment method not accepted"))
		}

		db := database.DB
		var ticketType model.TicketType
		if err := db.First(&ticketType, input.TicketTypeId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
		if input.DiscountId != nil {
			var discount model.Discount
			if err := db.First(&discount, *input.DiscountId).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Discount not found", err)
			}
		}

		c.Locals("createTicketInput", input)
		return c.Next()
	}
}

func UpdateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.PaymentMethod != nil && !utils.IsValidValueOfConstant(*input.PaymentMethod, constants.PaymentMethods) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown payment method", errors.New("payment method not accepted"))
		}

		if input.TicketTypeId != nil {
			var ticketType model.TicketType
			if err := database.DB.First(&ticketType, *input.TicketTypeId).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
			}
		}

		c.Locals("updateTicketInput", input)
		return c.Next()
	}
}

func ValidateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ValidateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("validateTicketInput", input)
		return c.Next()
	}
}
