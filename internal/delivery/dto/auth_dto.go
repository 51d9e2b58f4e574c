package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	RecoveryWord string `json:"recovery_word" validate:"required,min=4,max=250"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone" validate:"omitempty,len=10"`
	Sex          string `json:"sex" validate:"omitempty,oneof=M F T"`
	Age          string `json:"age"`
	BirthDate    string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	ReferredBy   string `json:"referred_by"`
}

type LoginRequest struct {
	// Username also accepts the account email
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email     string `json:"email" validate:"required,email"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Sex        string    `json:"sex,omitempty"`
	Age        string    `json:"age,omitempty"`
	ReferredBy string    `json:"referred_by,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RecoveryWordResponse struct {
	Username     string `json:"username"`
	RecoveryWord string `json:"recovery_word"`
}
