// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth verifies the administrator's credentials. The configured
// password is either plain text or an argon2id hash in PHC string format.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2 parameters (OWASP recommended second choice: m=19456, t=2, p=1)
const (
	Argon2Time    = 2
	Argon2Memory  = 19 * 1024
	Argon2Threads = 1
	Argon2KeyLen  = 32
	Argon2SaltLen = 16
)

const argon2Prefix = "$argon2id$"

var errMalformedHash = errors.New("malformed argon2id hash")

// argon2Hash is a decoded $argon2id$v=19$m=...,t=...,p=...$salt$key string.
type argon2Hash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// IsArgon2Hash reports whether s looks like an encoded argon2id hash.
func IsArgon2Hash(s string) bool {
	return strings.HasPrefix(s, argon2Prefix)
}

// HashPassword returns the argon2id encoding of password with a random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, Argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, Argon2Memory, Argon2Time, Argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// CheckPassword verifies password against an encoded argon2id hash in
// constant time. A malformed hash is an error, a mismatch is not.
func CheckPassword(password, encoded string) (bool, error) {
	h, err := decodeArgon2(encoded)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(password), h.salt, h.time, h.memory, h.threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(key, h.key) == 1, nil
}

func decodeArgon2(encoded string) (argon2Hash, error) {
	var h argon2Hash

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return h, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return h, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return h, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.time, &h.threads); err != nil {
		return h, fmt.Errorf("parsing parameters: %w", err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return h, fmt.Errorf("decoding salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return h, fmt.Errorf("decoding key: %w", err)
	}
	if len(h.key) == 0 {
		return h, errMalformedHash
	}

	return h, nil
}
