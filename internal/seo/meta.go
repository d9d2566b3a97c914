// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds meta tags for public careers pages.
package seo

import (
	"strconv"
	"strings"

	"github.com/olegiv/careerbase/internal/store"
)

// Meta holds the SEO meta tag data for a careers page or job posting.
type Meta struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Canonical     string `json:"canonical,omitempty"`
	OGTitle       string `json:"og_title,omitempty"`
	OGDescription string `json:"og_description,omitempty"`
	OGImage       string `json:"og_image,omitempty"`
	OGType        string `json:"og_type,omitempty"`
	OGSiteName    string `json:"og_site_name,omitempty"`
	OGURL         string `json:"og_url,omitempty"`
}

const maxDescriptionLength = 160

// BuildCompanyMeta assembles meta tags for a company careers page with
// fallbacks: explicit meta fields win, then the company name and
// description fill in.
func BuildCompanyMeta(company store.Company, baseURL string) Meta {
	meta := Meta{
		OGType:     "website",
		OGSiteName: company.Name,
	}

	if company.MetaTitle != "" {
		meta.Title = company.MetaTitle
	} else {
		meta.Title = company.Name + " Careers"
	}
	meta.OGTitle = meta.Title

	if company.MetaDescription != "" {
		meta.Description = company.MetaDescription
	} else if company.Description != "" {
		meta.Description = Truncate(company.Description, maxDescriptionLength)
	} else {
		meta.Description = "Open positions at " + company.Name
	}
	meta.OGDescription = meta.Description

	if company.LogoUrl.Valid {
		meta.OGImage = absoluteURL(baseURL, company.LogoUrl.String)
	}

	pageURL := baseURL + "/" + company.Slug
	meta.Canonical = pageURL
	meta.OGURL = pageURL

	return meta
}

// BuildJobMeta assembles meta tags for a single job posting page.
func BuildJobMeta(company store.Company, job store.Job, baseURL string) Meta {
	meta := BuildCompanyMeta(company, baseURL)

	meta.Title = job.Title + " at " + company.Name
	meta.OGTitle = meta.Title
	if job.Description != "" {
		meta.Description = Truncate(job.Description, maxDescriptionLength)
		meta.OGDescription = meta.Description
	}

	jobURL := meta.Canonical + "/jobs/" + strconv.FormatInt(job.ID, 10)
	meta.Canonical = jobURL
	meta.OGURL = jobURL

	return meta
}

// Truncate shortens text to maxLen, cutting at a word boundary where
// possible and appending an ellipsis.
func Truncate(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > maxLen/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " .,;:") + "..."
}

func absoluteURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}
