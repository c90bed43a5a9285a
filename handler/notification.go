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

// GetNotifications lists the caller's delivered notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	var notifications []model.Notification
	if err := database.DB.
		Where("user_id = ? AND sent = ?", userInfo.UserId, true).
		Order("send_at desc").
		Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving notifications", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationId := c.Locals("inputId").(int)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var notification model.Notification
	if err := db.First(&notification, notificationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", err)
	}

	if notification.UserId != userInfo.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("notification belongs to another user"))
	}

	notification.Read = true
	if err := db.Save(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}

// ToggleNotifications flips the user's opt-in for reminder notifications.
func ToggleNotifications(c *fiber.Ctx) error {
	input := c.Locals("toggleNotificationsInput").(model.ToggleNotificationsInput)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, userInfo.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	user.AllowNotifications = *input.Enabled
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"allowNotifications": user.AllowNotifications,
	})
}

// DeleteNotifications clears a batch of the caller's notifications.
func DeleteNotifications(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	// Scoping by user id means foreign notifications are silently skipped.
	result := database.DB.
		Where("id IN ? AND user_id = ?", input.IDs, userInfo.UserId).
		Delete(&model.Notification{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Notifications deleted",
		"count":   result.RowsAffected,
	})
}

func DeleteNotification(c *fiber.Ctx) error {
	notificationId := c.Locals("inputId").(int)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var notification model.Notification
	if err := db.First(&notification, notificationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", err)
	}

	if notification.UserId != userInfo.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("notification belongs to another user"))
	}

	if err := db.Delete(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during notification deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Notification successfully deleted",
	})
}
