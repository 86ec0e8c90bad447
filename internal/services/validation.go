package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error     string            `json:"error"`               // Error message
	Details   map[string]string `json:"details,omitempty"`   // Validation details
	Retryable bool              `json:"retryable,omitempty"` // Set when a fresh attempt may succeed
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &ValidationHelper{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	writeError(w, ErrorResponse{Error: message}, statusCode, validationErr)
}

// SendRetryableError sends a JSON error response flagged as safe to retry
func SendRetryableError(w http.ResponseWriter, message string, statusCode int) {
	writeError(w, ErrorResponse{Error: message, Retryable: true}, statusCode, nil)
}

func writeError(w http.ResponseWriter, errorResp ErrorResponse, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	var fieldErrs validator.ValidationErrors
	if validationErr != nil && errors.As(validationErr, &fieldErrs) {
		errorResp.Details = make(map[string]string)
		for _, err := range fieldErrs {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}
