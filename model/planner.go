package model

import (
	"park_manager/utils"
)

type Planner struct {
	DTO
	Title       string           `gorm:"not null" json:"title"`
	Description string           `json:"description"`
	Date        utils.CustomDate `gorm:"type:date" json:"date"`
	UserId      uint             `gorm:"not null;index" json:"userId"`
	TicketId    uint             `gorm:"not null" json:"ticketId"`

	// Only entities whitelisted by the ticket's type may be attached.
	Attractions []Attraction `gorm:"many2many:planner_attractions" json:"attractions"`
	Shows       []Show       `gorm:"many2many:planner_shows" json:"shows"`
	Services    []Service    `gorm:"many2many:planner_services" json:"services"`

	User   User   `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Ticket Ticket `gorm:"foreignKey:TicketId" json:"ticket,omitempty"`
}

type CreatePlannerInput struct {
	Title         string `json:"title" validate:"required,min=1"`
	Description   string `json:"description" validate:"omitempty"`
	TicketId      uint   `json:"ticketId" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	AttractionIds []uint `json:"attractionIds" validate:"omitempty,dive,gt=0"`
	ShowIds       []uint `json:"showIds" validate:"omitempty,dive,gt=0"`
	ServiceIds    []uint `json:"serviceIds" validate:"omitempty,dive,gt=0"`
}

type UpdatePlannerInput struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Description   *string `json:"description" validate:"omitempty"`
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	AttractionIds []uint  `json:"attractionIds" validate:"omitempty,dive,gt=0"`
	ShowIds       []uint  `json:"showIds" validate:"omitempty,dive,gt=0"`
	ServiceIds    []uint  `json:"serviceIds" validate:"omitempty,dive,gt=0"`
}

type PlannerAttachInput struct {
	AttractionId *uint `json:"attractionId" validate:"omitempty,gt=0"`
	ShowId       *uint `json:"showId" validate:"omitempty,gt=0"`
	ServiceId    *uint `json:"serviceId" validate:"omitempty,gt=0"`
}
