package model

import "time"

type Notification struct {
	DTO
	UserId  uint      `gorm:"not null;index" json:"userId"`
	Title   string    `gorm:"not null" json:"title"`
	Message string    `gorm:"not null" json:"message"`
	SendAt  time.Time `gorm:"not null;index" json:"sendAt"`
	Sent    bool      `gorm:"default:false" json:"sent"`
	Read    bool      `gorm:"default:false" json:"read"`

	ServiceBookingId *uint `json:"serviceBookingId,omitempty"`
	ShowId           *uint `json:"showId,omitempty"`

	User User `gorm:"foreignKey:UserId" json:"-"`
}

type ToggleNotificationsInput struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
