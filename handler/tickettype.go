package handler

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTicketTypeById(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)

	var ticketType model.TicketType
	if err := database.DB.
		Preload("Attractions").
		Preload("Shows").
		Preload("Services").
		First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType)
}

func CreateTicketType(c *fiber.Ctx) error {
	input := c.Locals("createTicketTypeInput").(model.CreateTicketTypeInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	var ticketType model.TicketType
	copier.Copy(&ticketType, &input)

	if err := database.DB.Create(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticketType)
}

func UpdateTicketType(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)
	input := c.Locals("updateTicketTypeInput").(model.UpdateTicketTypeInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var ticketType model.TicketType
	if err := db.First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	if input.Name != nil {
		ticketType.Name = *input.Name
	}
	if input.Price != nil {
		ticketType.Price = *input.Price
	}
	if input.Description != nil {
		ticketType.Description = *input.Description
	}

	if err := db.Save(&ticketType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during ticket type update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType)
}

func DeleteTicketType(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var ticketType model.TicketType
	if err := db.First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	var ticketCount int64
	db.Model(&model.Ticket{}).Where("ticket_type_id = ?", ticketType.ID).Count(&ticketCount)
	if ticketCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Ticket type still has issued tickets", errors.New("ticket type in use"))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_type_id = ?", ticketType.ID).Delete(&model.TicketTypeAttraction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_type_id = ?", ticketType.ID).Delete(&model.TicketTypeShow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_type_id = ?", ticketType.ID).Delete(&model.TicketTypeService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ticketType).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during ticket type deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Ticket type successfully deleted",
	})
}

// Association endpoints manage the whitelist rows directly. Adding twice is
// a conflict, removing a missing row is a 404.

func AddTicketTypeAttraction(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.AttractionId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("attractionId is required"))
	}

	db := database.DB
	if err := db.First(&model.TicketType{}, input.TicketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}
	if err := db.First(&model.Attraction{}, *input.AttractionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Attraction not found", err)
	}

	row := model.TicketTypeAttraction{TicketTypeId: input.TicketTypeId, AttractionId: *input.AttractionId}
	var count int64
	db.Model(&model.TicketTypeAttraction{}).
		Where("ticket_type_id = ? AND attraction_id = ?", row.TicketTypeId, row.AttractionId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Attraction already included", errors.New("duplicate association"))
	}

	if err := db.Create(&row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, row)
}

func RemoveTicketTypeAttraction(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.AttractionId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("attractionId is required"))
	}

	result := database.DB.
		Where("ticket_type_id = ? AND attraction_id = ?", input.TicketTypeId, *input.AttractionId).
		Delete(&model.TicketTypeAttraction{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Association not found", errors.New("no such association"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Attraction removed from ticket type",
	})
}

func GetTicketTypeAttractions(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)

	var ticketType model.TicketType
	if err := database.DB.Preload("Attractions").First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType.Attractions)
}

func AddTicketTypeShow(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.ShowId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("showId is required"))
	}

	db := database.DB
	if err := db.First(&model.TicketType{}, input.TicketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}
	if err := db.First(&model.Show{}, *input.ShowId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}

	row := model.TicketTypeShow{TicketTypeId: input.TicketTypeId, ShowId: *input.ShowId}
	var count int64
	db.Model(&model.TicketTypeShow{}).
		Where("ticket_type_id = ? AND show_id = ?", row.TicketTypeId, row.ShowId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Show already included", errors.New("duplicate association"))
	}

	if err := db.Create(&row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, row)
}

func RemoveTicketTypeShow(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.ShowId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("showId is required"))
	}

	result := database.DB.
		Where("ticket_type_id = ? AND show_id = ?", input.TicketTypeId, *input.ShowId).
		Delete(&model.TicketTypeShow{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Association not found", errors.New("no such association"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Show removed from ticket type",
	})
}

func GetTicketTypeShows(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)

	var ticketType model.TicketType
	if err := database.DB.Preload("Shows").First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType.Shows)
}

func AddTicketTypeService(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.ServiceId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("serviceId is required"))
	}

	db := database.DB
	if err := db.First(&model.TicketType{}, input.TicketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}
	if err := db.First(&model.Service{}, *input.ServiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	row := model.TicketTypeService{TicketTypeId: input.TicketTypeId, ServiceId: *input.ServiceId}
	var count int64
	db.Model(&model.TicketTypeService{}).
		Where("ticket_type_id = ? AND service_id = ?", row.TicketTypeId, row.ServiceId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Service already included", errors.New("duplicate association"))
	}

	if err := db.Create(&row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, row)
}

func RemoveTicketTypeService(c *fiber.Ctx) error {
	input := c.Locals("ticketTypeAssociationInput").(model.TicketTypeAssociationInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}
	if input.ServiceId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("serviceId is required"))
	}

	result := database.DB.
		Where("ticket_type_id = ? AND service_id = ?", input.TicketTypeId, *input.ServiceId).
		Delete(&model.TicketTypeService{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Association not found", errors.New("no such association"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Service removed from ticket type",
	})
}

func GetTicketTypeServices(c *fiber.Ctx) error {
	ticketTypeId := c.Locals("inputId").(int)

	var ticketType model.TicketType
	if err := database.DB.Preload("Services").First(&ticketType, ticketTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketType.Services)
}
