// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// MessageProvider lets a validated type override messages. Keys are
// "<json field>.<tag>", for example "genres.min".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Issue is the JSON shape of a single field problem.
type Issue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// fieldError is a single failed field rule.
type fieldError struct {
	field   string
	tag     string
	message string
}

// RequestValidationError collects every failed rule of one request.
type RequestValidationError struct {
	errors []fieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].message)
	}
	return strings.Join(messages, "; ")
}

// Issues converts the errors into their response shape.
func (ve *RequestValidationError) Issues() []Issue {
	issues := make([]Issue, len(ve.errors))
	for i, e := range ve.errors {
		issues[i] = Issue{Field: e.field, Tag: e.tag, Message: e.message}
	}
	return issues
}

// NewBodyError reports a request body that could not be decoded at all.
func NewBodyError(err error) *RequestValidationError {
	return &RequestValidationError{
		errors: []fieldError{{
			field:   "body",
			tag:     "json",
			message: fmt.Sprintf("Request body must be valid JSON: %v", err),
		}},
	}
}

// GetValidator returns the shared validator.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateStruct validates s and returns nil when it passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{
			errors: []fieldError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	var overrides map[string]string
	if mp, ok := s.(MessageProvider); ok {
		overrides = mp.ValidationMessages()
	}

	out := make([]fieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		msg, ok := overrides[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = translateError(fe)
		}
		out[i] = fieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			message: msg,
		}
	}
	return &RequestValidationError{errors: out}
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"url":      "%s must be a valid URL",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
}

func translateError(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if tmpl, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	switch fe.Kind() {
	case reflect.String:
		if tag == "min" {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		if tag == "max" {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		if tag == "min" {
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		if tag == "max" {
			return fmt.Sprintf("%s must contain at most %s items", field, param)
		}
	default:
		if tag == "min" {
			return fmt.Sprintf("%s must be at least %s", field, param)
		}
		if tag == "max" {
			return fmt.Sprintf("%s must be at most %s", field, param)
		}
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
