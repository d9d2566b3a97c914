// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/olegiv/careerbase/internal/directory"
	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/seo"
	"github.com/olegiv/careerbase/internal/store"
	"github.com/olegiv/careerbase/internal/tenant"
	"github.com/olegiv/careerbase/internal/util"
)

// htmlSanitizer strips unsafe HTML from rendered section content.
// UGCPolicy allows the formatting tags markdown produces while dropping
// scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts section markdown to sanitized HTML.
func renderMarkdown(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// PublicSection is a section in the public page payload. Content arrives
// as rendered HTML; the data blob passes through untouched for
// client-side renderers such as the hero block.
type PublicSection struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	HTML     string          `json:"html,omitempty"`
	ImageURL *string         `json:"image_url,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	Position int64           `json:"position"`
}

// PublicPageResponse is the payload for a public careers page.
type PublicPageResponse struct {
	Company  CompanyResponse `json:"company"`
	Meta     seo.Meta        `json:"meta"`
	Sections []PublicSection `json:"sections"`
	Jobs     []JobResponse   `json:"jobs"`
}

// PublicJobsResponse is the payload for the public job list.
type PublicJobsResponse struct {
	Jobs   []JobResponse    `json:"jobs"`
	Facets PublicJobsFacets `json:"facets"`
}

// PublicJobsFacets lists the distinct filterable values across the
// company's open jobs, for building filter dropdowns.
type PublicJobsFacets struct {
	Locations    []string `json:"locations"`
	JobTypes     []string `json:"job_types"`
	WorkPolicies []string `json:"work_policies"`
	Departments  []string `json:"departments"`
}

// PublicJobResponse is the payload for a single public job.
type PublicJobResponse struct {
	Company CompanyResponse `json:"company"`
	Job     JobResponse     `json:"job"`
	Meta    seo.Meta        `json:"meta"`
}

func (h *Handler) publicSections(sections []store.ContentSection) ([]PublicSection, error) {
	out := make([]PublicSection, 0, len(sections))
	for _, s := range sections {
		html, err := renderMarkdown(s.Content)
		if err != nil {
			return nil, err
		}
		ps := PublicSection{
			ID:       s.ID,
			Type:     s.Type,
			Title:    s.Title,
			HTML:     html,
			ImageURL: util.PtrFromNullString(s.ImageUrl),
			Position: s.Position,
		}
		if s.Data.Valid {
			ps.Data = json.RawMessage(s.Data.String)
		}
		out = append(out, ps)
	}
	return out, nil
}

func (h *Handler) buildPublicPage(page tenant.Page) (PublicPageResponse, error) {
	sections, err := h.publicSections(page.Sections)
	if err != nil {
		return PublicPageResponse{}, err
	}
	return PublicPageResponse{
		Company:  companyResponse(page.Company),
		Meta:     seo.BuildCompanyMeta(page.Company, h.baseURL),
		Sections: sections,
		Jobs:     jobResponses(page.Jobs),
	}, nil
}

// writeCached writes a previously cached JSON envelope verbatim.
func writeCached(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// PublicPage handles GET /api/v1/public/{slug}.
// Unpublished and unknown companies are indistinguishable 404s.
func (h *Handler) PublicPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if h.pages != nil {
		if payload, err := h.pages.GetPage(ctx, slug); err == nil {
			writeCached(w, payload)
			return
		}
	}

	page, err := h.resolver.Resolve(ctx, slug, tenant.ViewLive)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			WriteNotFound(w, "Page not found")
		} else {
			WriteInternalError(w, "Failed to load page")
		}
		return
	}

	resp, err := h.buildPublicPage(page)
	if err != nil {
		WriteInternalError(w, "Failed to render page")
		return
	}

	payload, err := json.Marshal(Response{Data: resp})
	if err != nil {
		WriteInternalError(w, "Failed to render page")
		return
	}

	if h.pages != nil {
		_ = h.pages.SetPage(ctx, slug, payload)
	}

	writeCached(w, payload)
}

// PublicJobs handles GET /api/v1/public/{slug}/jobs.
// Only open jobs exist here. Unfiltered responses are cached; filter
// params always hit the database.
func (h *Handler) PublicJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	filter := filterFromQuery(r)
	unfiltered := len(r.URL.Query()) == 0

	if h.pages != nil && unfiltered {
		if payload, err := h.pages.GetJobs(ctx, slug); err == nil {
			writeCached(w, payload)
			return
		}
	}

	page, err := h.resolver.Resolve(ctx, slug, tenant.ViewLive)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			WriteNotFound(w, "Page not found")
		} else {
			WriteInternalError(w, "Failed to load jobs")
		}
		return
	}

	facets := directoryFacets(page.Jobs)
	jobs := filter.Apply(page.Jobs)

	resp := PublicJobsResponse{
		Jobs:   jobResponses(jobs),
		Facets: facets,
	}

	payload, err := json.Marshal(Response{Data: resp, Meta: &Meta{Total: int64(len(jobs))}})
	if err != nil {
		WriteInternalError(w, "Failed to render jobs")
		return
	}

	if h.pages != nil && unfiltered {
		_ = h.pages.SetJobs(ctx, slug, payload)
	}

	writeCached(w, payload)
}

// PublicJob handles GET /api/v1/public/{slug}/jobs/{id}.
func (h *Handler) PublicJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid job ID", nil)
		return
	}

	company, job, err := h.resolver.ResolveJob(ctx, slug, id, tenant.ViewLive)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			WriteNotFound(w, "Job not found")
		} else {
			WriteInternalError(w, "Failed to load job")
		}
		return
	}

	WriteSuccess(w, PublicJobResponse{
		Company: companyResponse(company),
		Job:     jobResponse(job),
		Meta:    seo.BuildJobMeta(company, job, h.baseURL),
	}, nil)
}

// Preview handles GET /api/v1/preview/{slug}.
// Same shape as the live page but skips the published gate. Only the
// owner may look, and nothing is cached.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	company := middleware.GetCompany(r)
	if company == nil || company.Slug != slug {
		WriteNotFound(w, "Page not found")
		return
	}

	page, err := h.resolver.Resolve(ctx, slug, tenant.ViewPreview)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			WriteNotFound(w, "Page not found")
		} else {
			WriteInternalError(w, "Failed to load page")
		}
		return
	}

	resp, err := h.buildPublicPage(page)
	if err != nil {
		WriteInternalError(w, "Failed to render page")
		return
	}

	WriteSuccess(w, resp, nil)
}

// invalidatePage drops the cached public payloads for a slug. Called
// after every tenant write so the public page never serves stale data
// past the drop.
func (h *Handler) invalidatePage(ctx context.Context, slug string) {
	if h.pages == nil {
		return
	}
	if err := h.pages.Invalidate(ctx, slug); err != nil {
		h.logger.Warn("page cache invalidation failed",
			"category", "system",
			"slug", slug,
			"error", err)
	}
}

func directoryFacets(jobs []store.Job) PublicJobsFacets {
	f := directory.CollectFacets(jobs)
	return PublicJobsFacets{
		Locations:    f.Locations,
		JobTypes:     f.JobTypes,
		WorkPolicies: f.WorkPolicies,
		Departments:  f.Departments,
	}
}
