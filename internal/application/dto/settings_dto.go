package dto

import "time"

// CompanySettingsRequest body para PUT /api/settings/company.
type CompanySettingsRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"required,min=9,max=15"`
	Address string `json:"address" validate:"max=250"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Website string `json:"website" validate:"omitempty,url"`
}

// CompanySettingsResponse perfil del emisor.
type CompanySettingsResponse struct {
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FiscalSettingsRequest body para PUT /api/settings/fiscal.
// ValidUntil en formato YYYY-MM-DD.
type FiscalSettingsRequest struct {
	ResolutionNumber string `json:"resolution_number" validate:"required,max=50"`
	ValidUntil       string `json:"valid_until" validate:"required,datetime=2006-01-02"`
	NCFSeries        string `json:"ncf_series" validate:"required,len=3"`
	CurrentSequence  int64  `json:"current_sequence" validate:"min=0"`
	MaxSequence      int64  `json:"max_sequence" validate:"required,gtfield=CurrentSequence,max=99999999"`
	IsActive         bool   `json:"is_active"`
}

// FiscalSettingsResponse configuración fiscal vigente.
type FiscalSettingsResponse struct {
	ResolutionNumber string    `json:"resolution_number"`
	ValidUntil       string    `json:"valid_until"`
	NCFSeries        string    `json:"ncf_series"`
	CurrentSequence  int64     `json:"current_sequence"`
	MaxSequence      int64     `json:"max_sequence"`
	Remaining        int64     `json:"remaining"`
	IsActive         bool      `json:"is_active"`
	UpdatedAt        time.Time `json:"updated_at"`
}
