package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"seeds-backend/internal/app/repository"
)

// ============ Common ============

type ErrorResponse struct {
	Error string `json:"error"`
}

type BackendErrorResponse struct {
	Error *repository.BackendError `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ============ Auth ============

type LoginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User string `json:"user"`
	Role string `json:"role"`
}

// ============ Clients ============

type CreateClientRequest struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
	Phone string   `json:"phone"`
}

// ============ Licenses ============

// CreateLicenseForm is the text part of the multipart license form. The
// optional "image" file part is read separately.
type CreateLicenseForm struct {
	Client  string `form:"client" json:"client"`
	Seed    string `form:"seed" json:"seed"`
	License string `form:"license" json:"license"`
	Value   string `form:"value" json:"value"`
}

type PaymentRequest struct {
	ID     RecordID `json:"id"`
	Status string   `json:"status"`
}

// RecordID accepts a row id sent either as a JSON number or a JSON string.
type RecordID string

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or a string: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// ============ Users ============

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
