// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package tenant

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
)

func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "careerbase-tenant-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")
	}
}

type fixture struct {
	queries *store.Queries
	company store.Company
}

func setupCompany(t *testing.T, db *sql.DB, slug string, published bool) fixture {
	t.Helper()

	ctx := context.Background()
	queries := store.New(db)
	now := time.Now()

	user, err := queries.CreateUser(ctx, store.CreateUserParams{
		Email:        slug + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	company, err := queries.CreateCompany(ctx, store.CreateCompanyParams{
		UserID:    user.ID,
		Name:      "Test Co",
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	if published {
		company, err = queries.UpdateCompany(ctx, store.UpdateCompanyParams{
			Name:      company.Name,
			Published: true,
			UpdatedAt: now,
			ID:        company.ID,
		})
		if err != nil {
			t.Fatalf("UpdateCompany: %v", err)
		}
	}

	return fixture{queries: queries, company: company}
}

func (f fixture) addSection(t *testing.T, title string, visible bool) store.ContentSection {
	t.Helper()
	now := time.Now()
	sec, err := f.queries.CreateSectionAtEnd(context.Background(), store.CreateSectionAtEndParams{
		CompanyID:   f.company.ID,
		Type:        model.SectionTypeAbout,
		Title:       title,
		Content:     "content",
		CompanyID_2: f.company.ID,
		Visible:     visible,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateSectionAtEnd: %v", err)
	}
	return sec
}

func (f fixture) addJob(t *testing.T, title, status string) store.Job {
	t.Helper()
	now := time.Now()
	job, err := f.queries.CreateJob(context.Background(), store.CreateJobParams{
		CompanyID:      f.company.ID,
		Title:          title,
		Description:    "desc",
		Location:       "Berlin",
		WorkPolicy:     model.WorkPolicyHybrid,
		JobType:        model.JobTypeFullTime,
		ContractType:   model.ContractPermanent,
		SalaryCurrency: model.DefaultSalaryCurrency,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	return job
}

func TestResolveUnknownSlug(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	r := NewResolver(store.New(db))
	_, err := r.Resolve(context.Background(), "no-such-company", ViewLive)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve error = %v, want ErrNotFound", err)
	}
}

func TestLiveViewRequiresPublished(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	f := setupCompany(t, db, "unpublished-co", false)
	r := NewResolver(f.queries)
	ctx := context.Background()

	_, err := r.Resolve(ctx, "unpublished-co", ViewLive)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("live Resolve error = %v, want ErrNotFound for unpublished company", err)
	}

	// Preview skips the published gate
	page, err := r.Resolve(ctx, "unpublished-co", ViewPreview)
	if err != nil {
		t.Fatalf("preview Resolve: %v", err)
	}
	if page.Company.ID != f.company.ID {
		t.Errorf("preview returned company %d, want %d", page.Company.ID, f.company.ID)
	}
}

func TestLiveViewFiltersSectionsAndJobs(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	f := setupCompany(t, db, "acme", true)
	shown := f.addSection(t, "Shown", true)
	f.addSection(t, "Hidden", false)
	open := f.addJob(t, "Open Role", model.JobStatusOpen)
	f.addJob(t, "Closed Role", model.JobStatusClosed)
	f.addJob(t, "Draft Role", model.JobStatusDraft)

	r := NewResolver(f.queries)
	page, err := r.Resolve(context.Background(), "acme", ViewLive)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(page.Sections) != 1 || page.Sections[0].ID != shown.ID {
		t.Errorf("live sections = %d, want only the visible one", len(page.Sections))
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != open.ID {
		t.Errorf("live jobs = %d, want only the open one", len(page.Jobs))
	}
}

func TestEditViewReturnsEverything(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	f := setupCompany(t, db, "acme", false)
	f.addSection(t, "Shown", true)
	f.addSection(t, "Hidden", false)
	f.addJob(t, "Open Role", model.JobStatusOpen)
	f.addJob(t, "Draft Role", model.JobStatusDraft)

	r := NewResolver(f.queries)
	page, err := r.Resolve(context.Background(), "acme", ViewEdit)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(page.Sections) != 2 {
		t.Errorf("edit sections = %d, want 2", len(page.Sections))
	}
	if len(page.Jobs) != 2 {
		t.Errorf("edit jobs = %d, want 2", len(page.Jobs))
	}
}

func TestResolveJob(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	f := setupCompany(t, db, "acme", true)
	open := f.addJob(t, "Open Role", model.JobStatusOpen)
	closed := f.addJob(t, "Closed Role", model.JobStatusClosed)

	other := setupCompany(t, db, "other-co", true)
	foreign := other.addJob(t, "Foreign Role", model.JobStatusOpen)

	r := NewResolver(f.queries)
	ctx := context.Background()

	company, job, err := r.ResolveJob(ctx, "acme", open.ID, ViewLive)
	if err != nil {
		t.Fatalf("ResolveJob: %v", err)
	}
	if company.ID != f.company.ID || job.ID != open.ID {
		t.Errorf("ResolveJob returned company %d job %d", company.ID, job.ID)
	}

	if _, _, err := r.ResolveJob(ctx, "acme", closed.ID, ViewLive); !errors.Is(err, ErrNotFound) {
		t.Errorf("closed job error = %v, want ErrNotFound", err)
	}
	if _, _, err := r.ResolveJob(ctx, "acme", foreign.ID, ViewLive); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign job error = %v, want ErrNotFound", err)
	}
}
