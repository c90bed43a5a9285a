package model

import (
	"park_manager/utils"
	"time"
)

type Show struct {
	DTO
	Title       string           `gorm:"not null" json:"title"`
	Slug        string           `gorm:"uniqueIndex" json:"slug"`
	Description string           `json:"description"`
	Date        utils.CustomDate `gorm:"type:date" json:"date"`
	StartTime   time.Time        `gorm:"not null" json:"startTime"`
	EndTime     time.Time        `gorm:"not null" json:"endTime"`
	Location    string           `json:"location"`
	Status      string           `gorm:"not null;default:'SCHEDULED'" json:"status"`
}

type CreateShowInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string `json:"endTime" validate:"required,datetime=15:04"`
	Location    string `json:"location" validate:"omitempty"`
}

type UpdateShowInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"endTime" validate:"omitempty,datetime=15:04"`
	Location    *string `json:"location" validate:"omitempty"`
}
