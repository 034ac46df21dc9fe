package dto

import "time"

// ResidentRequest body para POST /api/residents y PUT /api/residents/:id.
type ResidentRequest struct {
	FirstName          string `json:"first_name" validate:"required,min=1,max=100"`
	LastName           string `json:"last_name" validate:"required,min=1,max=100"`
	NationalID         string `json:"national_id" validate:"required,min=11,max=13"`
	RegistrationNumber string `json:"registration_number" validate:"max=30"`
	Phone              string `json:"phone" validate:"max=30"`
	Address            string `json:"address" validate:"max=250"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ResidentResponse residente en respuestas.
type ResidentResponse struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	FullName           string    `json:"full_name"`
	NationalID         string    `json:"national_id"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Address            string    `json:"address,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ResidentListResponse lista paginada de residentes.
type ResidentListResponse struct {
	Items []ResidentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
