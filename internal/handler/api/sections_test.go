// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/careerbase/internal/store"
)

func appendTestSection(t *testing.T, h *Handler, user store.User, company store.Company, title string) SectionResponse {
	t.Helper()

	body := fmt.Sprintf(`{"type": "about_us", "title": %q, "content": "Hello"}`, title)
	r := withIDParam(authedRequest(http.MethodPost, "/sections", body, user, company), company.ID)
	rec := httptest.NewRecorder()
	h.CreateSection(rec, r)
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateSection: status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp SectionResponse
	decodeEnvelope(t, rec, &resp)
	return resp
}

func listTestSections(t *testing.T, h *Handler, user store.User, company store.Company) []SectionResponse {
	t.Helper()

	r := withIDParam(authedRequest(http.MethodGet, "/sections", "", user, company), company.ID)
	rec := httptest.NewRecorder()
	h.ListSections(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("ListSections: status = %d", rec.Code)
	}
	var resp []SectionResponse
	decodeEnvelope(t, rec, &resp)
	return resp
}

func TestCreateSectionAppendsAtEnd(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@sec.test", "sec-co")

	a := appendTestSection(t, h, user, company, "First")
	b := appendTestSection(t, h, user, company, "Second")
	c := appendTestSection(t, h, user, company, "Third")

	for i, s := range []SectionResponse{a, b, c} {
		if s.Position != int64(i) {
			t.Errorf("section %q position = %d, want %d", s.Title, s.Position, i)
		}
	}
}

func TestCreateSectionValidation(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@val.test", "val-co")

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing type", `{"title": "T"}`, "type"},
		{"missing title", `{"type": "hero"}`, "title"},
		{"broken data blob", `{"type": "hero", "title": "T", "data": {"headline": }}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withIDParam(authedRequest(http.MethodPost, "/sections", tt.body, user, company), company.ID)
			rec := httptest.NewRecorder()
			h.CreateSection(rec, r)

			if rec.Code != http.StatusUnprocessableEntity && rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 422 or 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestReorderSections(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@ro.test", "ro-co")
	a := appendTestSection(t, h, user, company, "A")
	b := appendTestSection(t, h, user, company, "B")
	c := appendTestSection(t, h, user, company, "C")

	t.Run("full reorder", func(t *testing.T) {
		body := fmt.Sprintf(`{"sections": [{"id": %d, "position": 0}, {"id": %d, "position": 1}, {"id": %d, "position": 2}]}`,
			c.ID, a.ID, b.ID)
		r := authedRequest(http.MethodPatch, "/api/v1/sections/reorder", body, user, company)
		rec := httptest.NewRecorder()
		h.ReorderSections(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}
		var resp []SectionResponse
		decodeEnvelope(t, rec, &resp)
		if len(resp) != 3 || resp[0].ID != c.ID || resp[1].ID != a.ID || resp[2].ID != b.ID {
			t.Errorf("order after reorder = %v, want [C A B]", resp)
		}
	})

	t.Run("foreign id aborts whole batch", func(t *testing.T) {
		otherUser, otherCompany := seedAccount(t, queries, "other@ro.test", "other-ro")
		foreign := appendTestSection(t, h, otherUser, otherCompany, "Foreign")

		body := fmt.Sprintf(`{"sections": [{"id": %d, "position": 5}, {"id": %d, "position": 6}]}`,
			a.ID, foreign.ID)
		r := authedRequest(http.MethodPatch, "/api/v1/sections/reorder", body, user, company)
		rec := httptest.NewRecorder()
		h.ReorderSections(rec, r)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}

		// Nothing moved, including the first entry of the batch.
		sections := listTestSections(t, h, user, company)
		if sections[1].ID != a.ID || sections[1].Position != 1 {
			t.Errorf("section A moved despite aborted batch: %+v", sections)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		r := authedRequest(http.MethodPatch, "/api/v1/sections/reorder", `{"sections": []}`, user, company)
		rec := httptest.NewRecorder()
		h.ReorderSections(rec, r)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})
}

func TestToggleSectionVisibility(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@tog.test", "tog-co")
	appendTestSection(t, h, user, company, "A")
	b := appendTestSection(t, h, user, company, "B")

	r := withIDParam(authedRequest(http.MethodPost, "/sections/toggle", "", user, company), b.ID)
	rec := httptest.NewRecorder()
	h.ToggleSectionVisibility(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp SectionResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Visible {
		t.Error("visible = true, want false after toggle")
	}
	if resp.Position != b.Position {
		t.Errorf("position changed on toggle: %d -> %d", b.Position, resp.Position)
	}
}

func TestDeleteSectionKeepsGap(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@gap.test", "gap-co")
	appendTestSection(t, h, user, company, "A")
	b := appendTestSection(t, h, user, company, "B")
	c := appendTestSection(t, h, user, company, "C")

	r := withIDParam(authedRequest(http.MethodDelete, "/sections/2", "", user, company), b.ID)
	rec := httptest.NewRecorder()
	h.DeleteSection(rec, r)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	sections := listTestSections(t, h, user, company)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	// C keeps position 2; nothing is renumbered.
	if sections[1].ID != c.ID || sections[1].Position != 2 {
		t.Errorf("section C = %+v, want position 2 kept", sections[1])
	}

	// Deleting again is a 404.
	r = withIDParam(authedRequest(http.MethodDelete, "/sections/2", "", user, company), b.ID)
	rec = httptest.NewRecorder()
	h.DeleteSection(rec, r)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestUpdateSectionKeepsPosition(t *testing.T) {
	h, queries, cleanup := testSetup(t)
	defer cleanup()

	user, company := seedAccount(t, queries, "owner@edit.test", "edit-co")
	appendTestSection(t, h, user, company, "A")
	b := appendTestSection(t, h, user, company, "B")

	body := `{"title": "Renamed", "data": {"headline": "Join us"}}`
	r := withIDParam(authedRequest(http.MethodPatch, "/sections/2", body, user, company), b.ID)
	rec := httptest.NewRecorder()
	h.UpdateSection(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var resp SectionResponse
	decodeEnvelope(t, rec, &resp)
	if resp.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", resp.Title)
	}
	if resp.Position != b.Position {
		t.Errorf("position changed on edit: %d -> %d", b.Position, resp.Position)
	}
	if string(resp.Data) == "" {
		t.Error("data blob missing from response")
	}
}
