// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/questlog/internal/models"
)

const codeValidation = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule, reported by the field's wire name.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string { return e.Message }

// RequestValidationError collects every failed rule of one struct.
type RequestValidationError struct {
	Fields []FieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Fields))
	for i := range ve.Fields {
		msgs[i] = ve.Fields[i].Message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the shape the HTTP layer renders for a 400.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError flattens the failures. A single failure keeps its own message;
// several are prefixed with their field names and listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.Fields) {
	case 0:
		return &APIError{Code: codeValidation, Message: "Validation failed"}
	case 1:
		fe := ve.Fields[0]
		return &APIError{
			Code:    codeValidation,
			Message: fe.Message,
			Details: map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "value": fe.Value},
		}
	}

	fields := make([]map[string]interface{}, len(ve.Fields))
	msgs := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		fields[i] = map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "message": fe.Message}
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return &APIError{
		Code:    codeValidation,
		Message: strings.Join(msgs, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator with the platform rules
// registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(wireName)

		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return models.Platform(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("manual_platform", func(fl validator.FieldLevel) bool {
			return models.Platform(fl.Field().String()).Manual()
		})
		validate.RegisterStructValidation(completionTime, models.ManualAchievement{})
	})
	return validate
}

// completionTime requires completed_time on a completed achievement and
// rejects it on an open one.
func completionTime(sl validator.StructLevel) {
	a, ok := sl.Current().Interface().(models.ManualAchievement)
	if !ok {
		return
	}
	switch {
	case a.Completed && a.CompletedTime == nil:
		sl.ReportError(a.CompletedTime, "completed_time", "CompletedTime", "required_when_completed", "")
	case !a.Completed && a.CompletedTime != nil:
		sl.ReportError(a.CompletedTime, "completed_time", "CompletedTime", "excluded_unless_completed", "")
	}
}

// wireName prefers the query tag, then the json tag.
func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidateStruct returns nil when s passes every rule.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestValidationError{Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		}
	}
	return &RequestValidationError{Fields: out}
}

// messages uses {f} for the field and {p} for the rule parameter.
var messages = map[string]string{
	"required":        "{f} is required",
	"numeric":         "{f} must be numeric",
	"platform":        "{f} must be one of: Steam Xbox Switch",
	"manual_platform": "{f} must be a manually tracked platform (Xbox or Switch)",
	"oneof":           "{f} must be one of: {p}",
	"gte":             "{f} must be greater than or equal to {p}",
	"lte":             "{f} must be less than or equal to {p}",
	"gt":              "{f} must be greater than {p}",
	"lt":              "{f} must be less than {p}",
	"min":             "{f} must be at least {p}",
	"max":             "{f} must be at most {p}",
	"unique":          "{f} entries must have distinct {p} values",

	"required_when_completed":   "{f} is required when completed is true",
	"excluded_unless_completed": "{f} must be empty unless completed is true",
}

func message(fe validator.FieldError) string {
	tmpl, ok := messages[fe.Tag()]
	if !ok {
		tmpl = "{f} failed {t} validation"
	}
	if fe.Kind() == reflect.String && (fe.Tag() == "min" || fe.Tag() == "max") {
		tmpl += " characters"
	}
	return strings.NewReplacer("{f}", fe.Field(), "{p}", fe.Param(), "{t}", fe.Tag()).Replace(tmpl)
}
