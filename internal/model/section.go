// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Well-known section types. The type tag is free-form; these are the values
// the bundled editors produce. A "hero" section carries a structured data
// blob consumed by its specialized renderer.
const (
	SectionTypeHero    = "hero"
	SectionTypeAbout   = "about_us"
	SectionTypeCulture = "culture"
	SectionTypeBenefit = "benefits"
)

// MaxSectionTitleLength is the title limit enforced by the section forms.
const MaxSectionTitleLength = 200
