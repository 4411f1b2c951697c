// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when a login attempt does not match the
// configured administrator.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	Verify(username, password string) error
}

// StaticVerifier accepts exactly one configured administrator.
type StaticVerifier struct {
	username string
	password string // plain text or argon2id hash
}

// NewStaticVerifier returns a verifier for the given administrator. The
// password is validated up front when it is an argon2id hash.
func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password must not be empty")
	}
	if IsArgon2Hash(password) {
		if _, err := decodeArgon2(password); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
	}
	return &StaticVerifier{username: username, password: password}, nil
}

// Verify compares both fields in constant time and always checks the
// password, so a wrong username costs as much as a wrong password.
func (v *StaticVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passOK bool
	if IsArgon2Hash(v.password) {
		ok, err := CheckPassword(password, v.password)
		if err != nil {
			return fmt.Errorf("checking password: %w", err)
		}
		passOK = ok
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Username returns the configured administrator name.
func (v *StaticVerifier) Username() string {
	return v.username
}
