package handler

import (
	"errors"
	"fmt"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// combineDateTime joins a calendar day with an HH:MM clock string (UTC).
func combineDateTime(date utils.CustomDate, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %s", clock)
	}
	d := date.Time
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func GetShows(c *fiber.Ctx) error {
	db := database.DB
	var shows []model.Show
	var total int64

	search := strings.TrimSpace(c.Query("search", ""))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := db.Model(&model.Show{})
	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ?", searchPattern)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while counting shows", err)
	}
	if err := query.Offset(offset).Limit(limit).Order("date asc, start_time asc").Find(&shows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving shows", err)
	}

	// Status is derived, not stored authoritatively: refresh it on read.
	now := time.Now().UTC()
	for i := range shows {
		shows[i].Status = helper.CalculateShowStatus(shows[i].StartTime, shows[i].EndTime, now)
	}

	response := &model.ResponseCustom{
		Rows:       shows,
		Limit:      &limit,
		Page:       &page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetShowBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var show model.Show
	if err := database.DB.Where("slug = ?", slugParam).First(&show).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	show.Status = helper.CalculateShowStatus(show.StartTime, show.EndTime, time.Now().UTC())
	return utils.SuccessResponse(c, fiber.StatusOK, show)
}

func CreateShow(c *fiber.Ctx) error {
	input := c.Locals("createShowInput").(model.CreateShowInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	startTime, err := combineDateTime(date, input.StartTime)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	endTime, err := combineDateTime(date, input.EndTime)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if !endTime.After(startTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End time must be after start time", errors.New("invalid time range"))
	}

	db := database.DB
	show := model.Show{
		Title:       input.Title,
		Slug:        helper.GenerateUniqueShowSlug(db, input.Title),
		Description: input.Description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    input.Location,
		Status:      helper.CalculateShowStatus(startTime, endTime, time.Now().UTC()),
	}

	if err := db.Create(&show).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, show)
}

func UpdateShow(c *fiber.Ctx) error {
	showId := c.Locals("inputId").(int)
	input := c.Locals("updateShowInput").(model.UpdateShowInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var show model.Show
	if err := db.First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}

	if input.Title != nil && *input.Title != show.Title {
		show.Title = *input.Title
		show.Slug = helper.GenerateUniqueShowSlug(db, *input.Title)
	}
	if input.Description != nil {
		show.Description = *input.Description
	}
	if input.Location != nil {
		show.Location = *input.Location
	}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		show.Date = date
	}

	startClock := show.StartTime.Format("15:04")
	if input.StartTime != nil {
		startClock = *input.StartTime
	}
	endClock := show.EndTime.Format("15:04")
	if input.EndTime != nil {
		endClock = *input.EndTime
	}

	startTime, err := combineDateTime(show.Date, startClock)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	endTime, err := combineDateTime(show.Date, endClock)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if !endTime.After(startTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "End time must be after start time", errors.New("invalid time range"))
	}

	show.StartTime = startTime
	show.EndTime = endTime
	show.Status = helper.CalculateShowStatus(startTime, endTime, time.Now().UTC())

	if err := db.Save(&show).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during show update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, show)
}

func DeleteShow(c *fiber.Ctx) error {
	showId := c.Locals("inputId").(int)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var show model.Show
	if err := db.First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show not found", err)
	}

	if err := db.Delete(&show).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during show deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Show successfully deleted",
	})
}
