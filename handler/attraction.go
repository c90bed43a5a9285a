package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type waitTimeMessage struct {
	AttractionId uint      `json:"attractionId"`
	WaitTime     int       `json:"waitTime"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// FetchAttractionWaitTime returns the latest wait-time record for the
// websocket initial push.
func FetchAttractionWaitTime(attractionId uint) (waitTimeMessage, error) {
	var attraction model.Attraction
	if err := database.DB.First(&attraction, attractionId).Error; err != nil {
		return waitTimeMessage{}, err
	}
	return waitTimeMessage{
		AttractionId: attraction.ID,
		WaitTime:     attraction.WaitTime,
		RecordedAt:   attraction.UpdatedAt,
	}, nil
}

func GetAttractions(c *fiber.Ctx) error {
	db := database.DB
	var attractions []model.Attraction
	var total int64

	search := strings.TrimSpace(c.Query("search", ""))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := db.Model(&model.Attraction{})
	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while counting attractions", err)
	}
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&attractions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving attractions", err)
	}

	response := &model.ResponseCustom{
		Rows:       attractions,
		Limit:      &limit,
		Page:       &page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetAttractionBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var attraction model.Attraction
	if err := database.DB.Where("slug = ?", slugParam).First(&attraction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Attraction not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, attraction)
}

func CreateAttraction(c *fiber.Ctx) error {
	input := c.Locals("createAttractionInput").(model.CreateAttractionInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var attraction model.Attraction
	copier.Copy(&attraction, &input)
	attraction.Slug = helper.GenerateUniqueAttractionSlug(db, input.Name)

	if err := db.Create(&attraction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, attraction)
}

func UpdateAttraction(c *fiber.Ctx) error {
	attractionId := c.Locals("inputId").(int)
	input := c.Locals("updateAttractionInput").(model.UpdateAttractionInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var attraction model.Attraction
	if err := db.First(&attraction, attractionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Attraction not found", err)
	}

	if input.Name != nil && *input.Name != attraction.Name {
		attraction.Name = *input.Name
		attraction.Slug = helper.GenerateUniqueAttractionSlug(db, *input.Name)
	}
	if input.Category != nil {
		attraction.Category = *input.Category
	}
	if input.Location != nil {
		attraction.Location = *input.Location
	}
	if input.Description != nil {
		attraction.Description = *input.Description
	}
	if input.WaitTime != nil {
		attraction.WaitTime = *input.WaitTime
	}

	if err := db.Save(&attraction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during attraction update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, attraction)
}

// UpdateWaitTime records the new wait time, keeps the history row, and
// pushes the change to every websocket client watching the attraction.
func UpdateWaitTime(c *fiber.Ctx) error {
	attractionId := c.Locals("inputId").(int)
	input := c.Locals("updateWaitTimeInput").(model.UpdateWaitTimeInput)
	_, isAdmin, isStaff := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("permission denied"))
	}

	db := database.DB
	var attraction model.Attraction
	if err := db.First(&attraction, attractionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Attraction not found", err)
	}

	now := time.Now().UTC()
	err := db.Transaction(func(tx *gorm.DB) error {
		attraction.WaitTime = input.WaitTime
		if err := tx.Save(&attraction).Error; err != nil {
			return err
		}
		return tx.Create(&model.WaitTime{
			AttractionId: attraction.ID,
			Minutes:      input.WaitTime,
			RecordedAt:   now,
		}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during wait time update", err)
	}

	payload, _ := json.Marshal(waitTimeMessage{
		AttractionId: attraction.ID,
		WaitTime:     input.WaitTime,
		RecordedAt:   now,
	})
	if err := redisClient.Publish(context.Background(),
		fmt.Sprintf("attraction:%d", attraction.ID), payload).Err(); err != nil {
		log.Printf("wait time publish failed for attraction %d: %v", attraction.ID, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, attraction)
}

func GetWaitTimeHistory(c *fiber.Ctx) error {
	attractionId := c.Locals("inputId").(int)

	var records []model.WaitTime
	if err := database.DB.
		Where("attraction_id = ?", attractionId).
		Order("recorded_at desc").
		Limit(100).
		Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving wait time history", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, records)
}

func DeleteAttraction(c *fiber.Ctx) error {
	attractionId := c.Locals("inputId").(int)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var attraction model.Attraction
	if err := db.First(&attraction, attractionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Attraction not found", err)
	}

	if err := db.Delete(&attraction).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during attraction deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Attraction successfully deleted",
	})
}
