// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package tenant resolves a careers page by company slug into the data
// a viewer is allowed to see. Three views exist: Live is the public
// page and requires a published company, Preview renders the same page
// for its owner before publishing, and Edit exposes everything for the
// builder UI.
package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
)

// ErrNotFound is returned when no company matches the slug, or the
// company exists but the view does not permit seeing it. The two cases
// are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("company page not found")

// View selects how much of a company page the resolver exposes.
type View int

const (
	// ViewLive is the anonymous public view. Unpublished companies,
	// hidden sections and non-open jobs do not exist here.
	ViewLive View = iota
	// ViewPreview renders the page exactly as Live would, but skips
	// the published gate so owners can check before going live.
	ViewPreview
	// ViewEdit exposes all sections and all jobs for the builder.
	ViewEdit
)

// Page is a resolved careers page.
type Page struct {
	Company  store.Company
	Sections []store.ContentSection
	Jobs     []store.Job
}

// Resolver loads company pages by slug.
type Resolver struct {
	queries *store.Queries
}

func NewResolver(queries *store.Queries) *Resolver {
	return &Resolver{queries: queries}
}

// Resolve loads the page for a slug under a view. Sections come back
// ordered by position with id as tie breaker. Jobs come back newest
// first.
func (r *Resolver) Resolve(ctx context.Context, slug string, view View) (Page, error) {
	company, err := r.queries.GetCompanyBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return Page{}, ErrNotFound
	}
	if err != nil {
		return Page{}, fmt.Errorf("resolving company %q: %w", slug, err)
	}

	if view == ViewLive && !company.Published {
		return Page{}, ErrNotFound
	}

	var sections []store.ContentSection
	if view == ViewEdit {
		sections, err = r.queries.ListSectionsByCompany(ctx, company.ID)
	} else {
		sections, err = r.queries.ListVisibleSectionsByCompany(ctx, company.ID)
	}
	if err != nil {
		return Page{}, fmt.Errorf("loading sections for %q: %w", slug, err)
	}

	var jobs []store.Job
	if view == ViewEdit {
		jobs, err = r.queries.ListJobsByCompany(ctx, company.ID)
	} else {
		jobs, err = r.queries.ListJobsByCompanyAndStatus(ctx, store.ListJobsByCompanyAndStatusParams{
			CompanyID: company.ID,
			Status:    model.JobStatusOpen,
		})
	}
	if err != nil {
		return Page{}, fmt.Errorf("loading jobs for %q: %w", slug, err)
	}

	return Page{Company: company, Sections: sections, Jobs: jobs}, nil
}

// ResolveJob loads a single job on a company page under a view. Live
// and Preview only return open jobs of that company.
func (r *Resolver) ResolveJob(ctx context.Context, slug string, jobID int64, view View) (store.Company, store.Job, error) {
	page, err := r.Resolve(ctx, slug, view)
	if err != nil {
		return store.Company{}, store.Job{}, err
	}
	for _, job := range page.Jobs {
		if job.ID == jobID {
			return page.Company, job, nil
		}
	}
	return store.Company{}, store.Job{}, ErrNotFound
}
