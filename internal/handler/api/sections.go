// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/section"
	"github.com/olegiv/careerbase/internal/store"
	"github.com/olegiv/careerbase/internal/util"
)

// SectionResponse represents a content section in API responses.
type SectionResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company_id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	ImageURL  *string         `json:"image_url,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Position  int64           `json:"position"`
	Visible   bool            `json:"visible"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateSectionRequest represents the request body for appending a section.
type CreateSectionRequest struct {
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	Content  string          `json:"content,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Visible  *bool           `json:"visible,omitempty"`
}

// UpdateSectionRequest represents the request body for editing a section.
// Position is deliberately absent; rankings change only through reorder.
type UpdateSectionRequest struct {
	Type     *string          `json:"type,omitempty"`
	Title    *string          `json:"title,omitempty"`
	Content  *string          `json:"content,omitempty"`
	ImageURL *string          `json:"image_url,omitempty"`
	Data     *json.RawMessage `json:"data,omitempty"`
	Visible  *bool            `json:"visible,omitempty"`
}

// ReorderRequest represents the request body for the reorder batch.
type ReorderRequest struct {
	Sections []ReorderEntry `json:"sections"`
}

// ReorderEntry assigns a position to one section.
type ReorderEntry struct {
	ID       int64 `json:"id"`
	Position int64 `json:"position"`
}

func sectionResponse(s store.ContentSection) SectionResponse {
	resp := SectionResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Type:      s.Type,
		Title:     s.Title,
		Content:   s.Content,
		ImageURL:  util.PtrFromNullString(s.ImageUrl),
		Position:  s.Position,
		Visible:   s.Visible,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Data.Valid {
		resp.Data = json.RawMessage(s.Data.String)
	}
	return resp
}

func sectionResponses(sections []store.ContentSection) []SectionResponse {
	out := make([]SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, sectionResponse(s))
	}
	return out
}

func validateSectionFields(sectionType, title string, data json.RawMessage) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(sectionType) == "" {
		fieldErrors["type"] = "Section type is required"
	}
	if strings.TrimSpace(title) == "" {
		fieldErrors["title"] = "Title is required"
	} else if len(title) > model.MaxSectionTitleLength {
		fieldErrors["title"] = "Title is too long"
	}
	if len(data) > 0 && !json.Valid(data) {
		fieldErrors["data"] = "Must be a valid JSON value"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListSections handles GET /api/v1/companies/{id}/sections.
// Sections come back in display order.
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	sections, err := h.sections.List(r.Context(), company.ID)
	if err != nil {
		WriteInternalError(w, "Failed to list sections")
		return
	}

	WriteSuccess(w, sectionResponses(sections), &Meta{Total: int64(len(sections))})
}

// CreateSection handles POST /api/v1/companies/{id}/sections.
// New sections always land at the end of the page.
func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	var req CreateSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validateSectionFields(req.Type, req.Title, req.Data); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	created, err := h.sections.Append(ctx, company.ID, section.AppendInput{
		Type:     req.Type,
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		ImageURL: util.NullStringFromValue(req.ImageURL),
		Data:     util.NullStringFromValue(string(req.Data)),
		Visible:  visible,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create section")
		return
	}

	h.invalidatePage(ctx, company.Slug)

	h.logger.Info("section appended",
		"category", "section",
		"section_id", created.ID,
		"type", created.Type,
		"position", created.Position)

	WriteCreated(w, sectionResponse(created))
}

// GetSection handles GET /api/v1/sections/{id}.
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	company := companyFromContext(r)
	if company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid section ID", nil)
		return
	}

	sec, err := h.sections.Get(r.Context(), company.ID, id)
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			WriteNotFound(w, "Section not found")
		} else {
			WriteInternalError(w, "Failed to retrieve section")
		}
		return
	}

	WriteSuccess(w, sectionResponse(sec), nil)
}

// UpdateSection handles PATCH /api/v1/sections/{id}.
// Editing fields never moves the section; position is untouched.
func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	if company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid section ID", nil)
		return
	}

	current, err := h.sections.Get(ctx, company.ID, id)
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			WriteNotFound(w, "Section not found")
		} else {
			WriteInternalError(w, "Failed to retrieve section")
		}
		return
	}

	var req UpdateSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := section.AppendInput{
		Type:     current.Type,
		Title:    current.Title,
		Content:  current.Content,
		ImageURL: current.ImageUrl,
		Data:     current.Data,
		Visible:  current.Visible,
	}
	if req.Type != nil {
		input.Type = *req.Type
	}
	if req.Title != nil {
		input.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		input.Content = *req.Content
	}
	if req.ImageURL != nil {
		input.ImageURL = util.NullStringFromValue(*req.ImageURL)
	}
	if req.Data != nil {
		input.Data = util.NullStringFromValue(string(*req.Data))
	}
	if req.Visible != nil {
		input.Visible = *req.Visible
	}

	var data json.RawMessage
	if input.Data.Valid {
		data = json.RawMessage(input.Data.String)
	}
	if fieldErrors := validateSectionFields(input.Type, input.Title, data); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	updated, err := h.sections.Update(ctx, company.ID, id, input)
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			WriteNotFound(w, "Section not found")
		} else {
			WriteInternalError(w, "Failed to update section")
		}
		return
	}

	h.invalidatePage(ctx, company.Slug)

	WriteSuccess(w, sectionResponse(updated), nil)
}

// ToggleSectionVisibility handles POST /api/v1/sections/{id}/toggle.
// Hiding a section keeps its slot in the ranking.
func (h *Handler) ToggleSectionVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	if company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid section ID", nil)
		return
	}

	toggled, err := h.sections.ToggleVisibility(ctx, company.ID, id)
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			WriteNotFound(w, "Section not found")
		} else {
			WriteInternalError(w, "Failed to toggle section")
		}
		return
	}

	h.invalidatePage(ctx, company.Slug)

	WriteSuccess(w, sectionResponse(toggled), nil)
}

// DeleteSection handles DELETE /api/v1/sections/{id}.
// Remaining sections keep their positions; gaps are fine.
func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	if company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid section ID", nil)
		return
	}

	if err := h.sections.Remove(ctx, company.ID, id); err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			WriteNotFound(w, "Section not found")
		} else {
			WriteInternalError(w, "Failed to delete section")
		}
		return
	}

	h.invalidatePage(ctx, company.Slug)

	w.WriteHeader(http.StatusNoContent)
}

// ReorderSections handles PATCH /api/v1/sections/reorder.
// The batch is atomic: any invalid or foreign id rejects the whole
// request and no section moves.
func (h *Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	if company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updates := make([]section.PositionUpdate, 0, len(req.Sections))
	for _, entry := range req.Sections {
		updates = append(updates, section.PositionUpdate{
			ID:       entry.ID,
			Position: entry.Position,
		})
	}

	if err := h.sections.Reorder(ctx, company.ID, updates); err != nil {
		switch {
		case errors.Is(err, section.ErrSectionNotFound):
			WriteNotFound(w, "Section not found")
		case errors.Is(err, section.ErrEmptyBatch),
			errors.Is(err, section.ErrDuplicateSection),
			errors.Is(err, section.ErrNegativePosition):
			WriteValidationError(w, map[string]string{"sections": err.Error()})
		default:
			WriteInternalError(w, "Failed to reorder sections")
		}
		return
	}

	sections, err := h.sections.List(ctx, company.ID)
	if err != nil {
		WriteInternalError(w, "Failed to list sections")
		return
	}

	h.invalidatePage(ctx, company.Slug)

	WriteSuccess(w, sectionResponses(sections), &Meta{Total: int64(len(sections))})
}
