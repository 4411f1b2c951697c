// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotification wraps a confirmation delivery failure. The booking it
	// belongs to has already been stored.
	ErrNotification = errors.New("sending booking confirmation")
)

// ValidationError describes one rejected form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors is returned by BookingValidator.Validate when one or more
// fields are rejected.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields maps each rejected field to its first message, for templates.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := fields[err.Field]; !ok {
			fields[err.Field] = err.Message
		}
	}
	return fields
}
