package utils

import (
	"time"

	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate turns an optional date string from a form into a nullable
// timestamp. Empty or absent values become null, unparseable values are a
// validation error.
func ParseDate(raw *string) (null.Time, error) {
	if raw == nil || *raw == "" {
		return null.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return null.TimeFrom(t), nil
		}
	}
	return null.Time{}, apperrors.NewBadRequestError("Invalid date format: " + *raw)
}
