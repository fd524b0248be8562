package dto

import "time"

// LoginRequest holds the credentials posted to /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required,notblank,max=50" example:"admin"`
	Password string `json:"password" validate:"required,min=6" example:"secreto123"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	Usuario    string    `json:"usuario"`
}
