package model

import "time"

type Service struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type ServiceBooking struct {
	DTO
	UserId          uint      `gorm:"not null;index" json:"userId"`
	PlannerId       uint      `gorm:"not null;index" json:"plannerId"`
	ServiceId       uint      `gorm:"not null" json:"serviceId"`
	BookingTime     time.Time `gorm:"not null" json:"bookingTime"`
	NumberOfPeople  *int      `json:"numberOfPeople,omitempty"`
	SpecialRequests *string   `gorm:"size:500" json:"specialRequests,omitempty"`

	User    User    `gorm:"foreignKey:UserId" json:"-"`
	Planner Planner `gorm:"foreignKey:PlannerId" json:"-"`
	Service Service `gorm:"foreignKey:ServiceId" json:"service,omitempty"`
}

type CreateServiceInput struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdateServiceInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
}

type CreateServiceBookingInput struct {
	ServiceId       uint    `json:"serviceId" validate:"required,gt=0"`
	PlannerId       uint    `json:"plannerId" validate:"required,gt=0"`
	BookingTime     string  `json:"bookingTime" validate:"required"`
	NumberOfPeople  *int    `json:"numberOfPeople" validate:"omitempty,gt=0"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=500"`
}

type UpdateServiceBookingInput struct {
	ServiceId       *uint   `json:"serviceId" validate:"omitempty,gt=0"`
	BookingTime     *string `json:"bookingTime" validate:"omitempty"`
	NumberOfPeople  *int    `json:"numberOfPeople" validate:"omitempty,gt=0"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=500"`
}
