// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
	"github.com/olegiv/careerbase/internal/util"
)

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	LogoURL         *string   `json:"logo_url,omitempty"`
	BannerURL       *string   `json:"banner_url,omitempty"`
	PrimaryColor    *string   `json:"primary_color,omitempty"`
	SecondaryColor  *string   `json:"secondary_color,omitempty"`
	BackgroundColor *string   `json:"background_color,omitempty"`
	TextColor       *string   `json:"text_color,omitempty"`
	CultureVideoURL *string   `json:"culture_video_url,omitempty"`
	Published       bool      `json:"published"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateCompanyRequest represents the request body for updating a company.
// The slug is fixed at signup and cannot be changed here.
type UpdateCompanyRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	BannerURL       *string `json:"banner_url,omitempty"`
	PrimaryColor    *string `json:"primary_color,omitempty"`
	SecondaryColor  *string `json:"secondary_color,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
	CultureVideoURL *string `json:"culture_video_url,omitempty"`
	Published       *bool   `json:"published,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
}

func companyResponse(c store.Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		LogoURL:         util.PtrFromNullString(c.LogoUrl),
		BannerURL:       util.PtrFromNullString(c.BannerUrl),
		PrimaryColor:    util.PtrFromNullString(c.PrimaryColor),
		SecondaryColor:  util.PtrFromNullString(c.SecondaryColor),
		BackgroundColor: util.PtrFromNullString(c.BackgroundColor),
		TextColor:       util.PtrFromNullString(c.TextColor),
		CultureVideoURL: util.PtrFromNullString(c.CultureVideoUrl),
		Published:       c.Published,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// requireOwnCompany parses the {id} parameter and checks it matches the
// session owner's company. Every user owns exactly one company, so any
// other id is a 404 rather than a 403, matching the tenant isolation
// behavior elsewhere.
func requireOwnCompany(w http.ResponseWriter, r *http.Request) (*store.Company, bool) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid company ID", nil)
		return nil, false
	}

	company := middleware.GetCompany(r)
	if company == nil || company.ID != id {
		WriteNotFound(w, "Company not found")
		return nil, false
	}
	return company, true
}

// GetCompany handles GET /api/v1/companies/{id}.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, companyResponse(*company), nil)
}

func validateCompanyUpdate(req UpdateCompanyRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			fieldErrors["name"] = "Company name is required"
		} else if len(name) > model.MaxCompanyNameLength {
			fieldErrors["name"] = "Company name is too long"
		}
	}
	if req.Description != nil && len(*req.Description) > model.MaxDescriptionLength {
		fieldErrors["description"] = "Description is too long"
	}
	if req.MetaTitle != nil && len(*req.MetaTitle) > model.MaxMetaTitleLength {
		fieldErrors["meta_title"] = "Meta title must be at most 60 characters"
	}
	if req.MetaDescription != nil && len(*req.MetaDescription) > model.MaxMetaDescriptionLength {
		fieldErrors["meta_description"] = "Meta description must be at most 160 characters"
	}

	colors := map[string]*string{
		"primary_color":    req.PrimaryColor,
		"secondary_color":  req.SecondaryColor,
		"background_color": req.BackgroundColor,
		"text_color":       req.TextColor,
	}
	for field, value := range colors {
		if value != nil && *value != "" && !model.IsValidHexColor(*value) {
			fieldErrors[field] = "Must be a hex color like #E23744"
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// UpdateCompany handles PATCH /api/v1/companies/{id}.
// Absent fields keep their current value; empty strings clear nullable
// branding fields.
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validateCompanyUpdate(req); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	params := store.UpdateCompanyParams{
		Name:            company.Name,
		Description:     company.Description,
		LogoUrl:         company.LogoUrl,
		BannerUrl:       company.BannerUrl,
		PrimaryColor:    company.PrimaryColor,
		SecondaryColor:  company.SecondaryColor,
		BackgroundColor: company.BackgroundColor,
		TextColor:       company.TextColor,
		CultureVideoUrl: company.CultureVideoUrl,
		Published:       company.Published,
		MetaTitle:       company.MetaTitle,
		MetaDescription: company.MetaDescription,
		UpdatedAt:       time.Now(),
		ID:              company.ID,
	}

	if req.Name != nil {
		params.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.LogoURL != nil {
		params.LogoUrl = util.NullStringFromValue(*req.LogoURL)
	}
	if req.BannerURL != nil {
		params.BannerUrl = util.NullStringFromValue(*req.BannerURL)
	}
	if req.PrimaryColor != nil {
		params.PrimaryColor = util.NullStringFromValue(*req.PrimaryColor)
	}
	if req.SecondaryColor != nil {
		params.SecondaryColor = util.NullStringFromValue(*req.SecondaryColor)
	}
	if req.BackgroundColor != nil {
		params.BackgroundColor = util.NullStringFromValue(*req.BackgroundColor)
	}
	if req.TextColor != nil {
		params.TextColor = util.NullStringFromValue(*req.TextColor)
	}
	if req.CultureVideoURL != nil {
		params.CultureVideoUrl = util.NullStringFromValue(*req.CultureVideoURL)
	}
	if req.Published != nil {
		params.Published = *req.Published
	}
	if req.MetaTitle != nil {
		params.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		params.MetaDescription = *req.MetaDescription
	}

	updated, err := h.queries.UpdateCompany(ctx, params)
	if err != nil {
		WriteInternalError(w, "Failed to update company")
		return
	}

	h.invalidatePage(ctx, updated.Slug)

	if req.Published != nil && *req.Published != company.Published {
		h.logger.Info("company publish state changed",
			"category", "company",
			"slug", updated.Slug,
			"published", updated.Published)
	}

	WriteSuccess(w, companyResponse(updated), nil)
}

// DeleteCompany handles DELETE /api/v1/companies/{id}.
// Jobs and sections cascade at the database level.
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	if _, err := h.queries.DeleteCompany(ctx, company.ID); err != nil {
		WriteInternalError(w, "Failed to delete company")
		return
	}

	h.invalidatePage(ctx, company.Slug)
	_ = h.sessions.Destroy(ctx)

	h.logger.Warn("company deleted",
		"category", "company",
		"slug", company.Slug)

	w.WriteHeader(http.StatusNoContent)
}
