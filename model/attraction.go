package model

import "time"

type Attraction struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	WaitTime    int    `gorm:"default:0" json:"waitTime"`
}

// WaitTime keeps the history of posted wait times for an attraction.
type WaitTime struct {
	DTO
	AttractionId uint      `gorm:"not null;index" json:"attractionId"`
	Minutes      int       `gorm:"not null" json:"minutes"`
	RecordedAt   time.Time `gorm:"not null" json:"recordedAt"`

	Attraction Attraction `gorm:"foreignKey:AttractionId" json:"-"`
}

type CreateAttractionInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"omitempty"`
	Location    string `json:"location" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	WaitTime    int    `json:"waitTime" validate:"omitempty,gte=0"`
}

type UpdateAttractionInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	WaitTime    *int    `json:"waitTime" validate:"omitempty,gte=0"`
}

type UpdateWaitTimeInput struct {
	WaitTime int `json:"waitTime" validate:"gte=0"`
}
