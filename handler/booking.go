package handler

import (
	"errors"
	"fmt"
	"park_manager/config"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/helper"
	"park_manager/model"
	"park_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseBookingTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking time: %s", s)
	}
	return t.UTC(), nil
}

func CreateServiceBooking(c *fiber.Ctx) error {
	input := c.Locals("createServiceBookingInput").(model.CreateServiceBookingInput)
	userInfo, _, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	db := database.DB

	var planner model.Planner
	if err := db.Preload("Services").First(&planner, input.PlannerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
	}
	if planner.UserId != userInfo.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("planner belongs to another user"))
	}

	// Only services already attached to the planner can be booked.
	attached := false
	for _, s := range planner.Services {
		if s.ID == input.ServiceId {
			attached = true
			break
		}
	}
	if !attached {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Service is not part of this planner", errors.New("service not attached"))
	}

	bookingTime, err := parseBookingTime(input.BookingTime)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if bookingTime.Before(time.Now().UTC()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking time cannot be in the past", errors.New("booking time in past"))
	}

	var user model.User
	if err := db.First(&user, userInfo.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}
	var service model.Service
	if err := db.First(&service, input.ServiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	booking := model.ServiceBooking{
		UserId:          userInfo.UserId,
		PlannerId:       planner.ID,
		ServiceId:       service.ID,
		BookingTime:     bookingTime,
		NumberOfPeople:  input.NumberOfPeople,
		SpecialRequests: input.SpecialRequests,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// Reminder lands 10 minutes before the booking, opted-in users only.
		if user.AllowNotifications {
			reminder := model.Notification{
				UserId: user.ID,
				Title:  "Upcoming booking: " + service.Name,
				Message: fmt.Sprintf("Your booking at %s starts at %s.",
					service.Name, bookingTime.Format("15:04")),
				SendAt:           bookingTime.Add(-10 * time.Minute),
				ServiceBookingId: &booking.ID,
			}
			if err := tx.Create(&reminder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during booking creation", err)
	}

	people := 1
	if input.NumberOfPeople != nil {
		people = *input.NumberOfPeople
	}
	utils.SendBookingConfirmationEmail(user.Email, utils.BookingConfirmationData{
		ServiceName:    service.Name,
		BookingTime:    bookingTime.Format("2006-01-02 15:04"),
		NumberOfPeople: people,
		PlannerTitle:   planner.Title,
		DetailLink:     fmt.Sprintf("%s/bookings/%d", config.Config("FRONTEND_URL"), booking.ID),
	})

	db.Preload("Service").First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetServiceBookings(c *fiber.Ctx) error {
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if userInfo.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.PERMISSION_DENIED, nil)
	}

	condition := database.DB.Preload("Service")
	if !isAdmin {
		condition = condition.Where("user_id = ?", userInfo.UserId)
	}
	if plannerId := c.Query("plannerId"); plannerId != "" {
		condition = condition.Where("planner_id = ?", plannerId)
	}

	var bookings []model.ServiceBooking
	if err := condition.Order("booking_time asc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error while retrieving bookings", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetServiceBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	var booking model.ServiceBooking
	if err := database.DB.Preload("Service").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("booking belongs to another user"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func UpdateServiceBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("updateServiceBookingInput").(model.UpdateServiceBookingInput)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var booking model.ServiceBooking
	if err := db.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("booking belongs to another user"))
	}

	if input.ServiceId != nil && *input.ServiceId != booking.ServiceId {
		var planner model.Planner
		if err := db.Preload("Services").First(&planner, booking.PlannerId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLANNER_NOT_FOUND, err)
		}
		attached := false
		for _, s := range planner.Services {
			if s.ID == *input.ServiceId {
				attached = true
				break
			}
		}
		if !attached {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Service is not part of this planner", errors.New("service not attached"))
		}
		booking.ServiceId = *input.ServiceId
	}

	if input.BookingTime != nil {
		bookingTime, err := parseBookingTime(*input.BookingTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if bookingTime.Before(time.Now().UTC()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking time cannot be in the past", errors.New("booking time in past"))
		}
		booking.BookingTime = bookingTime
	}
	if input.NumberOfPeople != nil {
		booking.NumberOfPeople = input.NumberOfPeople
	}
	if input.SpecialRequests != nil {
		booking.SpecialRequests = input.SpecialRequests
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		// Keep the unsent reminder aligned with the new booking time.
		if input.BookingTime != nil {
			if err := tx.Model(&model.Notification{}).
				Where("service_booking_id = ? AND sent = ?", booking.ID, false).
				Update("send_at", booking.BookingTime.Add(-10*time.Minute)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during booking update", err)
	}

	db.Preload("Service").First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func DeleteServiceBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	userInfo, isAdmin, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	var booking model.ServiceBooking
	if err := db.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != userInfo.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PERMISSION_DENIED, errors.New("booking belongs to another user"))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_booking_id = ? AND sent = ?", booking.ID, false).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during booking deletion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Booking successfully deleted",
	})
}
