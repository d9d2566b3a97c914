// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and validation helpers for the
// careers page builder entities.
package model

import "regexp"

// Branding field limits mirrored by the dashboard forms.
const (
	MaxCompanyNameLength     = 100
	MaxDescriptionLength     = 2000
	MaxMetaTitleLength       = 60
	MaxMetaDescriptionLength = 160
)

// hexColorRegex matches 3- or 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color value.
func IsValidHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}
