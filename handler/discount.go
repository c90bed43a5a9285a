package handler

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetDiscounts(c *fiber.Ctx) error {
	var discounts []model.Discount
	if err := database.DB.Order("percent desc").Find(&discounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving discounts", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, discounts)
}

func CreateDiscount(c *fiber.Ctx) error {
	input := c.Locals("createDiscountInput").(model.CreateDiscountInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	discount := model.Discount{Name: input.Name, Percent: input.Percent}
	if err := database.DB.Create(&discount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, discount)
}

func DeleteDiscount(c *fiber.Ctx) error {
	discountId := c.Locals("inputId").(int)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var discount model.Discount
	if err := db.First(&discount, discountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Discount not found", err)
	}

	var ticketCount int64
	db.Model(&model.Ticket{}).Where("discount_id = ?", discount.ID).Count(&ticketCount)
	if ticketCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Discount is attached to issued tickets", errors.New("discount in use"))
	}

	if err := db.Delete(&discount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during discount deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Discount successfully deleted",
	})
}
