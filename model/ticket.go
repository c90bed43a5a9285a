package model

import "park_manager/utils"

type Ticket struct {
	DTO
	RawCode       string           `gorm:"size:100;uniqueIndex;not null" json:"rawCode"`
	QRCode        string           `gorm:"type:text" json:"qrCode"`
	ValidFor      utils.CustomDate `gorm:"type:date;not null" json:"validFor"`
	Status        string           `gorm:"not null;default:'ACTIVE'" json:"status"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`

	UserId       uint  `gorm:"not null;index" json:"userId"`
	TicketTypeId uint  `gorm:"not null" json:"ticketTypeId"`
	DiscountId   *uint `gorm:"default:null" json:"discountId,omitempty"`

	User       User       `gorm:"foreignKey:UserId" json:"user,omitempty"`
	TicketType TicketType `gorm:"foreignKey:TicketTypeId" json:"ticketType,omitempty"`
	Discount   *Discount  `gorm:"foreignKey:DiscountId" json:"discount,omitempty"`
}

type CreateTicketInput struct {
	TicketTypeId  uint    `json:"ticketTypeId" validate:"required,gt=0"`
	ValidFor      string  `json:"validFor" validate:"required,datetime=2006-01-02"`
	DiscountId    *uint   `json:"discountId" validate:"omitempty,gt=0"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty"`
}

type UpdateTicketInput struct {
	TicketTypeId  *uint   `json:"ticketTypeId" validate:"omitempty,gt=0"`
	ValidFor      *string `json:"validFor" validate:"omitempty,datetime=2006-01-02"`
	DiscountId    *uint   `json:"discountId" validate:"omitempty,gt=0"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty"`
}

type ValidateTicketInput struct {
	QRCode string `json:"qrCode" validate:"required"`
}

type FilterTicketInput struct {
	Pagination
	Status       string `json:"status" validate:"omitempty,oneof=ACTIVE USED EXPIRED"`
	TicketTypeId uint   `json:"ticketTypeId" validate:"omitempty,gt=0"`
}
