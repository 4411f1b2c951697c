// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/mileusna/useragent"
)

// clientInfo is the browser summary recorded with audit events.
type clientInfo struct {
	Browser    string
	OS         string
	DeviceType string
}

// parseUserAgent extracts browser, OS, and device type from a user agent string.
func parseUserAgent(uaString string) clientInfo {
	ua := useragent.Parse(uaString)

	info := clientInfo{
		Browser: ua.Name,
		OS:      ua.OS,
	}
	if info.Browser == "" {
		info.Browser = "Unknown"
	}
	if info.OS == "" {
		info.OS = "Unknown"
	}

	switch {
	case ua.Mobile:
		info.DeviceType = "mobile"
	case ua.Tablet:
		info.DeviceType = "tablet"
	case ua.Bot:
		info.DeviceType = "bot"
	default:
		info.DeviceType = "desktop"
	}

	return info
}

// metadata returns the info as audit event metadata.
func (c clientInfo) metadata() map[string]any {
	return map[string]any{
		"browser": c.Browser,
		"os":      c.OS,
		"device":  c.DeviceType,
	}
}
