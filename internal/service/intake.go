// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nyaruka/phonenumbers"

	"github.com/olegiv/eventdesk/internal/model"
)

// Accepted time-of-day layouts. Browsers submit HH:MM, some send seconds.
var timeLayouts = []string{model.TimeLayout, "15:04:05"}

// BookingInput holds the raw booking form fields.
type BookingInput struct {
	Name      string `form:"name" validate:"required,max=100"`
	Email     string `form:"email" validate:"required,max=100,email"`
	Phone     string `form:"phone" validate:"required,max=20"`
	EventType string `form:"event_type" validate:"required,event_type"`
	Date      string `form:"date" validate:"required,datetime=2006-01-02"`
	Time      string `form:"time" validate:"required,time_of_day"`
}

// NewBooking is a validated, normalized booking ready to be stored.
type NewBooking struct {
	Name      string
	Email     string
	Phone     string
	EventType model.EventType
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}

// fieldLabels are the human readable names used in messages.
var fieldLabels = map[string]string{
	"name":       "Name",
	"email":      "Email",
	"phone":      "Phone number",
	"event_type": "Event type",
	"date":       "Event date",
	"time":       "Event time",
}

// BookingValidator checks and normalizes booking submissions.
type BookingValidator struct {
	validate    *validator.Validate
	policy      *bluemonday.Policy
	phoneRegion string
}

// NewBookingValidator creates a validator. phoneRegion is the ISO 3166
// region used to interpret numbers without a country code.
func NewBookingValidator(phoneRegion string) (*BookingValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseEventType(fl.Field().String())
		return ok
	}); err != nil {
		return nil, fmt.Errorf("registering event_type validation: %w", err)
	}

	if err := v.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
		_, ok := parseTimeOfDay(fl.Field().String())
		return ok
	}); err != nil {
		return nil, fmt.Errorf("registering time_of_day validation: %w", err)
	}

	return &BookingValidator{
		validate:    v,
		policy:      bluemonday.StrictPolicy(),
		phoneRegion: strings.ToUpper(strings.TrimSpace(phoneRegion)),
	}, nil
}

// Validate rejects the input with ValidationErrors, one entry per failing
// field, or returns its normalized form.
func (v *BookingValidator) Validate(in BookingInput) (NewBooking, error) {
	in = BookingInput{
		Name:      v.sanitizeName(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		EventType: strings.ToLower(strings.TrimSpace(in.EventType)),
		Date:      strings.TrimSpace(in.Date),
		Time:      strings.TrimSpace(in.Time),
	}

	if err := v.validate.Struct(in); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return NewBooking{}, translateValidationErrors(validationErrs)
		}
		return NewBooking{}, fmt.Errorf("validating booking: %w", err)
	}

	date, _ := time.Parse(model.DateLayout, in.Date)
	tod, _ := parseTimeOfDay(in.Time)
	eventType, _ := model.ParseEventType(in.EventType)

	return NewBooking{
		Name:      in.Name,
		Email:     normalizeEmail(in.Email),
		Phone:     v.normalizePhone(in.Phone),
		EventType: eventType,
		Date:      date.Format(model.DateLayout),
		Time:      tod.Format(model.TimeLayout),
	}, nil
}

// sanitizeName strips any markup; entities produced by the sanitizer are
// decoded again because templates escape on output.
func (v *BookingValidator) sanitizeName(name string) string {
	return strings.TrimSpace(html.UnescapeString(v.policy.Sanitize(strings.TrimSpace(name))))
}

// normalizePhone formats numbers valid for the configured region as E.164
// and keeps anything else as typed.
func (v *BookingValidator) normalizePhone(phone string) string {
	num, err := phonenumbers.Parse(phone, v.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// normalizeEmail lower-cases the domain; the local part is case sensitive.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func parseTimeOfDay(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors

	for _, err := range errs {
		label := fieldLabels[err.Field()]
		if label == "" {
			label = err.Field()
		}

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", label)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", label, err.Param())
		case "email":
			message = "Please enter a valid email address"
		case "event_type":
			message = "Please choose wedding, birthday, corporate or other"
		case "datetime":
			message = "Please enter a valid date (YYYY-MM-DD)"
		case "time_of_day":
			message = "Please enter a valid time (HH:MM)"
		default:
			message = fmt.Sprintf("%s is invalid", label)
		}

		out = append(out, ValidationError{Field: err.Field(), Message: message})
	}

	return out
}
