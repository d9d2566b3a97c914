// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/store"
)

const testBaseURL = "https://careers.example.com"

func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "careerbase-api-test-*.db")
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

// testSetup creates a database and a fully wired API handler. The
// session manager uses its default in-memory store.
func testSetup(t *testing.T) (*Handler, *store.Queries, func()) {
	t.Helper()

	db, cleanup := testDB(t)
	sessions := scs.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(db, sessions, logger, testBaseURL)
	return h, store.New(db), cleanup
}

// seedAccount creates a user with a company directly in the store.
func seedAccount(t *testing.T, queries *store.Queries, email, slug string) (store.User, store.Company) {
	t.Helper()

	ctx := context.Background()
	now := time.Now()

	user, err := queries.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
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
	return user, company
}

// publishCompany flips the published flag and returns the updated row.
func publishCompany(t *testing.T, queries *store.Queries, company store.Company) store.Company {
	t.Helper()

	updated, err := queries.UpdateCompany(context.Background(), store.UpdateCompanyParams{
		Name:            company.Name,
		Description:     company.Description,
		LogoUrl:         company.LogoUrl,
		BannerUrl:       company.BannerUrl,
		PrimaryColor:    company.PrimaryColor,
		SecondaryColor:  company.SecondaryColor,
		BackgroundColor: company.BackgroundColor,
		TextColor:       company.TextColor,
		CultureVideoUrl: company.CultureVideoUrl,
		Published:       true,
		MetaTitle:       company.MetaTitle,
		MetaDescription: company.MetaDescription,
		UpdatedAt:       time.Now(),
		ID:              company.ID,
	})
	if err != nil {
		t.Fatalf("UpdateCompany: %v", err)
	}
	return updated
}

// authedRequest builds a request carrying the account in its context,
// the way LoadAccount middleware would after a real login.
func authedRequest(method, target, body string, user store.User, company store.Company) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, user)
	ctx = context.WithValue(ctx, middleware.ContextKeyCompany, company)
	return r.WithContext(ctx)
}

// withURLParams attaches chi URL parameters to a request, keeping any
// parameters already set by an earlier call.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withIDParam attaches the {id} URL parameter.
func withIDParam(r *http.Request, id int64) *http.Request {
	return withURLParams(r, map[string]string{"id": strconv.FormatInt(id, 10)})
}

// decodeEnvelope unmarshals a response envelope's data field into dst.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		t.Fatalf("decoding response data: %v", err)
	}
}

// decodeError unmarshals an error response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	return resp.Error
}

// serveWithSession runs a handler inside the session middleware so
// session writes in Login and Signup have a live session context.
func serveWithSession(h *Handler, handlerFunc http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.sessions.LoadAndSave(handlerFunc).ServeHTTP(rec, r)
	return rec
}
