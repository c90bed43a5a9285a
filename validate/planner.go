package validate

import (
	"errors"
	"park_manager/constants"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePlanner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePlannerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("createPlannerInput", input)
		return c.Next()
	}
}

func UpdatePlanner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePlannerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("updatePlannerInput", input)
		return c.Next()
	}
}

func AttachToPlanner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PlannerAttachInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.AttractionId == nil && input.ShowId == nil && input.ServiceId == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("one of attractionId, showId or serviceId is required"))
		}

		c.Locals("plannerAttachInput", input)
		return c.Next()
	}
}
