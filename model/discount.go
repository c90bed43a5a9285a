package model

type Discount struct {
	DTO
	Name    string  `gorm:"not null" json:"name"`
	Percent float64 `gorm:"not null" json:"percent"`
}

type CreateDiscountInput struct {
	Name    string  `json:"name" validate:"required"`
	Percent float64 `json:"percent" validate:"required,gt=0,lte=100"`
}
