package handler

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetServices(c *fiber.Ctx) error {
	db := database.DB
	var services []model.Service
	var total int64

	search := strings.TrimSpace(c.Query("search", ""))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := db.Model(&model.Service{})
	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}
	if serviceType := c.Query("type"); serviceType != "" {
		query = query.Where("type = ?", serviceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while counting services", err)
	}
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving services", err)
	}

	response := &model.ResponseCustom{
		Rows:       services,
		Limit:      &limit,
		Page:       &page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetServiceById(c *fiber.Ctx) error {
	serviceId := c.Locals("inputId").(int)

	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	input := c.Locals("createServiceInput").(model.CreateServiceInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	var service model.Service
	copier.Copy(&service, &input)

	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func UpdateService(c *fiber.Ctx) error {
	serviceId := c.Locals("inputId").(int)
	input := c.Locals("updateServiceInput").(model.UpdateServiceInput)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var service model.Service
	if err := db.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Type != nil {
		service.Type = *input.Type
	}
	if input.Location != nil {
		service.Location = *input.Location
	}
	if input.Description != nil {
		service.Description = *input.Description
	}

	if err := db.Save(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during service update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func DeleteService(c *fiber.Ctx) error {
	serviceId := c.Locals("inputId").(int)
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	db := database.DB
	var service model.Service
	if err := db.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	if err := db.Delete(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during service deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Service successfully deleted",
	})
}
