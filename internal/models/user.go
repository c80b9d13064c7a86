package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model   `json:"-"`
	ID           uint   `json:"-" gorm:"primaryKey"`
	UID          string `json:"_id" gorm:"size:64;uniqueIndex"` // string identity used on the wire
	Username     string `json:"user_name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	Password     string `json:"-"` // bcrypt hash
	ProfileImage string `json:"profile_image"`
}

type RegisterRequest struct {
	Username string `json:"user_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
	jwt.RegisteredClaims
}
