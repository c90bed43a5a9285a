package handler

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetTicketTypes(c *fiber.Ctx) error {
	var ticketTypes []model.TicketType
	if err := database.DB.
		Preload("Attractions").
		Preload("Shows").
		Preload("Services").
		Find(&ticketTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error retrieving ticket types", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticketTypes)
}

func GetTickets(c *fiber.Ctx) error {
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	filterInput := new(model.FilterTicketInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Ticket{}).
		Preload("TicketType").
		Preload("TicketType.Attractions").
		Preload("TicketType.Shows").
		Preload("TicketType.Services").
		Preload("Discount").
		Where("user_id = ?", userInfo.UserId)

	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.TicketTypeId > 0 {
		condition = condition.Where("ticket_type_id = ?", filterInput.TicketTypeId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var tickets []model.Ticket
	if err := condition.Order("created_at desc").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error retrieving tickets", err)
	}

	response := &model.ResponseCustom{
		Rows:       tickets,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTicketById(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	var ticket model.Ticket
	if err := database.DB.
		Preload("TicketType").
		Preload("TicketType.Attractions").
		Preload("TicketType.Shows").
		Preload("TicketType.Services").
		Preload("Discount").
		First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	if ticket.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("ticket belongs to another user"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func GetTicketByCode(c *fiber.Ctx) error {
	rawCode := c.Params("rawCode")

	var ticket model.Ticket
	if err := database.DB.
		Preload("TicketType").
		Preload("TicketType.Attractions").
		Preload("Discount").
		Where("raw_code = ?", rawCode).
		First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("createTicketInput").(model.CreateTicketInput)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	validFor, err := utils.ParseDate(input.ValidFor)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	now := time.Now().UTC()
	if utils.IsPastDay(validFor.Time, now) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDITY_IN_PAST, errors.New("validity window already elapsed"))
	}

	rawCode := fmt.Sprintf("TICKET-%d-%d-%s", userInfo.UserId, input.TicketTypeId, uuid.New().String()[:8])
	ticketUrl := fmt.Sprintf("%s/validate-ticket?code=%s", os.Getenv("FRONTEND_URL"), url.QueryEscape(rawCode))

	qrCodeImage, err := utils.GenerateQRCodeDataURL(ticketUrl, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error generating QR code", err)
	}

	ticket := model.Ticket{
		UserId:        userInfo.UserId,
		TicketTypeId:  input.TicketTypeId,
		RawCode:       rawCode,
		QRCode:        qrCodeImage,
		ValidFor:      validFor,
		Status:        utils.StatusFor(validFor.Time, now),
		DiscountId:    input.DiscountId,
		PaymentMethod: input.PaymentMethod,
	}

	if err := database.DB.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating the ticket", err)
	}

	database.DB.
		Preload("TicketType").
		Preload("TicketType.Attractions").
		Preload("TicketType.Shows").
		Preload("TicketType.Services").
		First(&ticket, ticket.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func UpdateTicket(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	input := c.Locals("updateTicketInput").(model.UpdateTicketInput)

	_, _, isStaff := helper.GetInfoUserFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not permission"))
	}

	db := database.DB
	var ticket model.Ticket
	if err := db.First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	now := time.Now().UTC()

	if input.TicketTypeId != nil {
		var ticketType model.TicketType
		if err := db.First(&ticketType, *input.TicketTypeId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
		ticket.TicketTypeId = *input.TicketTypeId
	}
	if input.ValidFor != nil {
		validFor, err := utils.ParseDate(*input.ValidFor)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if utils.IsPastDay(validFor.Time, now) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDITY_IN_PAST, errors.New("validity window already elapsed"))
		}
		ticket.ValidFor = validFor
		// Moving the validity day recomputes status, but never un-redeems.
		if ticket.Status != constants.TICKET_USED {
			ticket.Status = utils.StatusFor(validFor.Time, now)
		}
	}
	if input.DiscountId != nil {
		ticket.DiscountId = input.DiscountId
	}
	if input.PaymentMethod != nil {
		ticket.PaymentMethod = input.PaymentMethod
	}

	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating the ticket", err)
	}

	db.
		Preload("TicketType").
		Preload("TicketType.Attractions").
		Preload("TicketType.Shows").
		Preload("TicketType.Services").
		Preload("Discount").
		First(&ticket, ticket.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func DeleteTicket(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	var ticket model.Ticket
	if err := database.DB.First(&ticket, ticketId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	if ticket.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("ticket belongs to another user"))
	}

	if err := database.DB.Delete(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting the ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Ticket successfully deleted",
		"ticket":  ticket,
	})
}

// ValidateTicket is the staff-side QR redemption endpoint.
func ValidateTicket(c *fiber.Ctx) error {
	input := c.Locals("validateTicketInput").(model.ValidateTicketInput)

	_, _, isStaff := helper.GetInfoUserFromToken(c)
	if !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not permission"))
	}

	ticket, err := helper.RedeemTicket(input.QRCode, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrTicketNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		case errors.Is(err, helper.ErrAlreadyUsed):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_ALREADY_USED, err)
		case errors.Is(err, helper.ErrInvalidStatus):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_INVALID_STATUS, err)
		case errors.Is(err, helper.ErrWrongDay):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_WRONG_DAY, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error during ticket validation", err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Ticket successfully validated",
		"ticket":  ticket,
	})
}
