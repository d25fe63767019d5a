package client

import (
	"time"

	"github.com/turnario/turnario-backend-go/internal/pkg/validator"
)

// Client is a committente: the company booking events.
type Client struct {
	ID        string
	Name      string
	VATNumber *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientResponse represents the response structure for a client.
type ClientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	VATNumber *string `json:"vat_number,omitempty"`
	IsActive  bool    `json:"is_active"`
}

// CreateClientRequest represents the request structure for creating a client.
type CreateClientRequest struct {
	Name      string  `json:"name"`
	VATNumber *string `json:"vat_number,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.VATNumber != nil && *r.VATNumber != "" && !validator.IsValidVATNumber(*r.VATNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "vat_number",
			Message: "vat_number must be a valid Italian VAT number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateClientRequest represents the request structure for updating a client.
type UpdateClientRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
