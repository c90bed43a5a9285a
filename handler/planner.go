package handler

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func plannerPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Attractions").
		Preload("Shows").
		Preload("Services").
		Preload("Ticket").
		Preload("Ticket.TicketType")
}

func attractionsByIds(tx *gorm.DB, ids []uint) ([]model.Attraction, error) {
	var rows []model.Attraction
	if len(ids) == 0 {
		return rows, nil
	}
	err := tx.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func showsByIds(tx *gorm.DB, ids []uint) ([]model.Show, error) {
	var rows []model.Show
	if len(ids) == 0 {
		return rows, nil
	}
	err := tx.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func servicesByIds(tx *gorm.DB, ids []uint) ([]model.Service, error) {
	var rows []model.Service
	if len(ids) == 0 {
		return rows, nil
	}
	err := tx.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func CreatePlanner(c *fiber.Ctx) error {
	input := c.Locals("createPlannerInput").(model.CreatePlannerInput)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	db := database.DB

	// A planner can only be built on a ticket the user has already redeemed.
	var ticket model.Ticket
	if err := db.Where("id = ? AND user_id = ? AND status = ?",
		input.TicketId, userInfo.UserId, constants.TICKET_USED).
		First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"The ticket must be validated before creating a planner", err)
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	attractionIds, showIds, serviceIds, err := helper.FilterPlannerSelection(
		ticket.TicketTypeId, input.AttractionIds, input.ShowIds, input.ServiceIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var planner model.Planner
	err = db.Transaction(func(tx *gorm.DB) error {
		attractions, err := attractionsByIds(tx, attractionIds)
		if err != nil {
			return err
		}
		shows, err := showsByIds(tx, showIds)
		if err != nil {
			return err
		}
		services, err := servicesByIds(tx, serviceIds)
		if err != nil {
			return err
		}

		planner = model.Planner{
			Title:       input.Title,
			Description: input.Description,
			Date:        date,
			UserId:      userInfo.UserId,
			TicketId:    ticket.ID,
			Attractions: attractions,
			Shows:       shows,
			Services:    services,
		}
		return tx.Create(&planner).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during planner creation", err)
	}

	plannerPreloads(db).First(&planner, planner.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, planner)
}

func GetPlanners(c *fiber.Ctx) error {
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	condition := plannerPreloads(database.DB)
	if !isAdmin {
		condition = condition.Where("user_id = ?", userInfo.UserId)
	}

	var planners []model.Planner
	if err := condition.Order("created_at desc").Find(&planners).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving planners", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, planners)
}

func GetPlannerById(c *fiber.Ctx) error {
	plannerId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	var planner model.Planner
	if err := plannerPreloads(database.DB).First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}

	if planner.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("planner belongs to another user"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, planner)
}

// UpdatePlanner merges the requested IDs into the currently attached sets
// before filtering: items the caller did not resubmit survive the update.
func UpdatePlanner(c *fiber.Ctx) error {
	plannerId := c.Locals("inputId").(int)
	input := c.Locals("updatePlannerInput").(model.UpdatePlannerInput)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var planner model.Planner
	if err := plannerPreloads(db).First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}

	if planner.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("planner belongs to another user"))
	}

	currentAttractions := make([]uint, 0, len(planner.Attractions))
	for _, a := range planner.Attractions {
		currentAttractions = append(currentAttractions, a.ID)
	}
	currentShows := make([]uint, 0, len(planner.Shows))
	for _, s := range planner.Shows {
		currentShows = append(currentShows, s.ID)
	}
	currentServices := make([]uint, 0, len(planner.Services))
	for _, s := range planner.Services {
		currentServices = append(currentServices, s.ID)
	}

	attractionIds, showIds, serviceIds, err := helper.FilterPlannerSelection(
		planner.Ticket.TicketTypeId,
		helper.MergeIds(currentAttractions, input.AttractionIds),
		helper.MergeIds(currentShows, input.ShowIds),
		helper.MergeIds(currentServices, input.ServiceIds))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Title != nil {
		planner.Title = *input.Title
	}
	if input.Description != nil {
		planner.Description = *input.Description
	}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		planner.Date = date
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Attractions", "Shows", "Services").Save(&planner).Error; err != nil {
			return err
		}

		attractions, err := attractionsByIds(tx, attractionIds)
		if err != nil {
			return err
		}
		if err := tx.Model(&planner).Association("Attractions").Replace(attractions); err != nil {
			return err
		}

		shows, err := showsByIds(tx, showIds)
		if err != nil {
			return err
		}
		if err := tx.Model(&planner).Association("Shows").Replace(shows); err != nil {
			return err
		}

		services, err := servicesByIds(tx, serviceIds)
		if err != nil {
			return err
		}
		return tx.Model(&planner).Association("Services").Replace(services)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during planner update", err)
	}

	plannerPreloads(db).First(&planner, planner.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, planner)
}

// attachToPlanner backs the three PATCH add-{attraction,show,service} routes.
func attachToPlanner(c *fiber.Ctx, attach func(tx *gorm.DB, planner *model.Planner, entityId uint) error, entityId uint, eligible []uint) error {
	plannerId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var planner model.Planner
	if err := db.Preload("Ticket").First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}

	if planner.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("planner belongs to another user"))
	}

	if len(helper.FilterEligible([]uint{entityId}, eligible)) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Not included in the ticket type", errors.New("entity not whitelisted for this ticket type"))
	}

	if err := attach(db, &planner, entityId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	plannerPreloads(db).First(&planner, planner.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, planner)
}

func AddPlannerAttraction(c *fiber.Ctx) error {
	input := c.Locals("plannerAttachInput").(model.PlannerAttachInput)
	if input.AttractionId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("attractionId is required"))
	}

	plannerId := c.Locals("inputId").(int)
	var planner model.Planner
	if err := database.DB.Preload("Ticket").First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}
	eligible, err := helper.EligibleAttractionIds(planner.Ticket.TicketTypeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return attachToPlanner(c, func(tx *gorm.DB, planner *model.Planner, entityId uint) error {
		var attraction model.Attraction
		if err := tx.First(&attraction, entityId).Error; err != nil {
			return err
		}
		return tx.Model(planner).Association("Attractions").Append(&attraction)
	}, *input.AttractionId, eligible)
}

func AddPlannerShow(c *fiber.Ctx) error {
	input := c.Locals("plannerAttachInput").(model.PlannerAttachInput)
	if input.ShowId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("showId is required"))
	}

	plannerId := c.Locals("inputId").(int)
	var planner model.Planner
	if err := database.DB.Preload("Ticket").First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}
	eligible, err := helper.EligibleShowIds(planner.Ticket.TicketTypeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return attachToPlanner(c, func(tx *gorm.DB, planner *model.Planner, entityId uint) error {
		var show model.Show
		if err := tx.First(&show, entityId).Error; err != nil {
			return err
		}
		return tx.Model(planner).Association("Shows").Append(&show)
	}, *input.ShowId, eligible)
}

func AddPlannerService(c *fiber.Ctx) error {
	input := c.Locals("plannerAttachInput").(model.PlannerAttachInput)
	if input.ServiceId == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("serviceId is required"))
	}

	plannerId := c.Locals("inputId").(int)
	var planner model.Planner
	if err := database.DB.Preload("Ticket").First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}
	eligible, err := helper.EligibleServiceIds(planner.Ticket.TicketTypeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return attachToPlanner(c, func(tx *gorm.DB, planner *model.Planner, entityId uint) error {
		var service model.Service
		if err := tx.First(&service, entityId).Error; err != nil {
			return err
		}
		return tx.Model(planner).Association("Services").Append(&service)
	}, *input.ServiceId, eligible)
}

func DeletePlanner(c *fiber.Ctx) error {
	plannerId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var planner model.Planner
	if err := db.First(&planner, plannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}

	if planner.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("planner belongs to another user"))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planner_id = ?", planner.ID).Delete(&model.ServiceBooking{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&planner).Association("Attractions").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&planner).Association("Shows").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&planner).Association("Services").Clear(); err != nil {
			return err
		}
		return tx.Delete(&planner).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during planner deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Planner successfully deleted",
	})
}
