package validator

import (
	"log"
	"regexp"
	"time"

	"yadtamar_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	userIDPattern = regexp.MustCompile(`^[0-9A-Za-z]{9}$`)
	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}$`)
)

// DateLayouts are the accepted forms for date query parameters, tried in order.
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("userid", validateUserID)
	mustRegister("isodate", validateISODate)
	mustRegister("phone", validatePhone)
	mustRegister("request-status", validateRequestStatus)
}

// Empty values pass every custom rule; 'required' handles presence.

func validateUserID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || userIDPattern.MatchString(value)
}

func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := ParseDate(value)
	return ok
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || phonePattern.MatchString(value)
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RequestStatusName(value) {
	case models.RequestStatusPending, models.RequestStatusInProgress,
		models.RequestStatusCompleted, models.RequestStatusRejected:
		return true
	default:
		return false
	}
}

// ParseDate parses value with the first matching layout in DateLayouts.
// The bool reports whether any layout matched.
func ParseDate(value string) (time.Time, bool) {
	t, _, ok := ParseDateWithPrecision(value)
	return t, ok
}

// ParseDateWithPrecision is ParseDate that also reports whether the value was
// a bare date (no time of day).
func ParseDateWithPrecision(value string) (t time.Time, dateOnly bool, ok bool) {
	for i, layout := range DateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, i == len(DateLayouts)-1, true
		}
	}
	return time.Time{}, false, false
}
