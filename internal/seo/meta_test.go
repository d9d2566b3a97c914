// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/olegiv/careerbase/internal/store"
)

func TestBuildCompanyMetaFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		company  store.Company
		wantT    string
		wantDesc string
	}{
		{
			name: "explicit meta fields win",
			company: store.Company{
				Name:            "Acme",
				Slug:            "acme",
				Description:     "A company.",
				MetaTitle:       "Work at Acme",
				MetaDescription: "Join the Acme team.",
			},
			wantT:    "Work at Acme",
			wantDesc: "Join the Acme team.",
		},
		{
			name: "falls back to name and description",
			company: store.Company{
				Name:        "Acme",
				Slug:        "acme",
				Description: "A company building things.",
			},
			wantT:    "Acme Careers",
			wantDesc: "A company building things.",
		},
		{
			name: "falls back to name alone",
			company: store.Company{
				Name: "Acme",
				Slug: "acme",
			},
			wantT:    "Acme Careers",
			wantDesc: "Open positions at Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildCompanyMeta(tt.company, "https://careers.example.com")
			if meta.Title != tt.wantT {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantT)
			}
			if meta.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", meta.Description, tt.wantDesc)
			}
			if meta.Canonical != "https://careers.example.com/acme" {
				t.Errorf("Canonical = %q", meta.Canonical)
			}
		})
	}
}

func TestBuildCompanyMetaTruncatesLongDescription(t *testing.T) {
	company := store.Company{
		Name:        "Acme",
		Slug:        "acme",
		Description: strings.Repeat("lots of words ", 30),
	}
	meta := BuildCompanyMeta(company, "https://careers.example.com")
	if len(meta.Description) > 163 { // 160 plus ellipsis
		t.Errorf("Description length = %d, want truncated", len(meta.Description))
	}
	if !strings.HasSuffix(meta.Description, "...") {
		t.Errorf("Description = %q, want ellipsis suffix", meta.Description)
	}
}

func TestBuildCompanyMetaLogoURL(t *testing.T) {
	company := store.Company{
		Name:    "Acme",
		Slug:    "acme",
		LogoUrl: sql.NullString{String: "/uploads/logo/abc.png", Valid: true},
	}
	meta := BuildCompanyMeta(company, "https://careers.example.com")
	if meta.OGImage != "https://careers.example.com/uploads/logo/abc.png" {
		t.Errorf("OGImage = %q", meta.OGImage)
	}
}

func TestBuildJobMeta(t *testing.T) {
	company := store.Company{Name: "Acme", Slug: "acme"}
	job := store.Job{ID: 7, Title: "Backend Engineer", Description: "Own services."}

	meta := BuildJobMeta(company, job, "https://careers.example.com")
	if meta.Title != "Backend Engineer at Acme" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "Own services." {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Canonical != "https://careers.example.com/acme/jobs/7" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"one two three four", 13, "one two..."},
		{"  padded  ", 20, "padded"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
