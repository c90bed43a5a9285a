package model

type TicketType struct {
	DTO
	Name        string  `gorm:"not null;uniqueIndex" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`

	// Eligibility whitelist: what a ticket of this type grants access to.
	Attractions []Attraction `gorm:"many2many:ticket_type_attractions" json:"attractions,omitempty"`
	Shows       []Show       `gorm:"many2many:ticket_type_shows" json:"shows,omitempty"`
	Services    []Service    `gorm:"many2many:ticket_type_services" json:"services,omitempty"`
}

// Join rows are plain records so the association endpoints and the
// eligibility filter can address them directly.
type TicketTypeAttraction struct {
	TicketTypeId uint `gorm:"primaryKey;autoIncrement:false" json:"ticketTypeId"`
	AttractionId uint `gorm:"primaryKey;autoIncrement:false" json:"attractionId"`
}

type TicketTypeShow struct {
	TicketTypeId uint `gorm:"primaryKey;autoIncrement:false" json:"ticketTypeId"`
	ShowId       uint `gorm:"primaryKey;autoIncrement:false" json:"showId"`
}

type TicketTypeService struct {
	TicketTypeId uint `gorm:"primaryKey;autoIncrement:false" json:"ticketTypeId"`
	ServiceId    uint `gorm:"primaryKey;autoIncrement:false" json:"serviceId"`
}

type CreateTicketTypeInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty"`
}

type UpdateTicketTypeInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty"`
}

type TicketTypeAssociationInput struct {
	TicketTypeId uint  `json:"ticketTypeId" validate:"required,gt=0"`
	AttractionId *uint `json:"attractionId" validate:"omitempty,gt=0"`
	ShowId       *uint `json:"showId" validate:"omitempty,gt=0"`
	ServiceId    *uint `json:"serviceId" validate:"omitempty,gt=0"`
}
