package dto

import (
	"strings"
	"time"

	"github.com/yigit/schoolapi/internal/pkg/apperrors"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// parseOptionalDate converts an optional date-time field. Absent or blank values yield nil.
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := helpers.ParseDateTime(*value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, field+" must be a valid date-time")
	}
	return &t, nil
}

// optionalString treats a blank value as absent
func optionalString(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	s := *value
	return &s
}
