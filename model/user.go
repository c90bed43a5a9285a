package model

import "time"

type User struct {
	DTO
	FirstName          string  `gorm:"not null" json:"firstName"`
	LastName           string  `gorm:"not null" json:"lastName"`
	Email              string  `gorm:"uniqueIndex;not null" json:"email"`
	Password           string  `gorm:"not null" json:"-"`
	Role               string  `gorm:"not null;default:'USER'" json:"role"`
	ProfileImage       *string `json:"profileImage,omitempty"`
	AllowNotifications bool    `gorm:"default:true" json:"allowNotifications"`
}

type PasswordResetToken struct {
	DTO
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	UserId    uint      `gorm:"not null" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`

	User User `gorm:"foreignKey:UserId" json:"-"`
}

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=USER STAFF ADMIN"`
}

type UpdateProfileInput struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
