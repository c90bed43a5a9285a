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

func Me(c *fiber.Ctx) error {
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	var user model.User
	if err := database.DB.First(&user, userInfo.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateProfile(c *fiber.Ctx) error {
	input := c.Locals("updateProfileInput").(model.UpdateProfileInput)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, userInfo.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil && *input.Email != user.Email {
		var existing model.User
		if err := db.Where("email = ? AND id <> ?", *input.Email, user.ID).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email already in use", errors.New("duplicate email"))
		}
		user.Email = *input.Email
	}

	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during profile update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UploadProfileImage(c *fiber.Ctx) error {
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "An image file is required", err)
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read uploaded file", err)
	}
	defer f.Close()

	url, err := helper.UploadProfileImage(c.Context(), userInfo.UserId, f)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	db := database.DB
	var user model.User
	if err := db.First(&user, userInfo.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}
	user.ProfileImage = &url
	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during profile update", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
