// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/olegiv/careerbase/internal/auth"
	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
	"github.com/olegiv/careerbase/internal/util"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"company_name"`
	Slug        string `json:"slug"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse represents the authenticated account in API responses.
type AccountResponse struct {
	ID      int64            `json:"id"`
	Email   string           `json:"email"`
	Name    string           `json:"name,omitempty"`
	Company *CompanyResponse `json:"company,omitempty"`
}

func validateSignup(req SignupRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if _, err := mail.ParseAddress(req.Email); err != nil {
		fieldErrors["email"] = "Invalid email address"
	}
	if len(req.Password) < MinPasswordLength {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		fieldErrors["company_name"] = "Company name is required"
	} else if len(req.CompanyName) > model.MaxCompanyNameLength {
		fieldErrors["company_name"] = "Company name is too long"
	}
	if !util.IsValidCompanySlug(req.Slug) {
		fieldErrors["slug"] = "Slug must be 2-50 lowercase letters, digits or hyphens"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// Signup handles POST /api/v1/auth/signup.
// It creates the user and their company in a single transaction and
// logs the new account in.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Slug = strings.TrimSpace(req.Slug)

	if fieldErrors := validateSignup(req); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	emailTaken, err := h.queries.EmailExists(ctx, req.Email)
	if err != nil {
		WriteInternalError(w, "Failed to check email")
		return
	}
	if emailTaken != 0 {
		WriteValidationError(w, map[string]string{"email": "Email is already registered"})
		return
	}

	slugTaken, err := h.queries.SlugExists(ctx, req.Slug)
	if err != nil {
		WriteInternalError(w, "Failed to check slug")
		return
	}
	if slugTaken != 0 {
		WriteValidationError(w, map[string]string{"slug": "Slug is already taken"})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}
	defer func() { _ = tx.Rollback() }()

	qtx := h.queries.WithTx(tx)
	now := time.Now()

	user, err := qtx.CreateUser(ctx, store.CreateUserParams{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         util.NullStringFromValue(strings.TrimSpace(req.Name)),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}

	company, err := qtx.CreateCompany(ctx, store.CreateCompanyParams{
		UserID:    user.ID,
		Name:      strings.TrimSpace(req.CompanyName),
		Slug:      req.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}

	if err := tx.Commit(); err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}

	if err := h.sessions.RenewToken(ctx); err != nil {
		WriteInternalError(w, "Failed to start session")
		return
	}
	h.sessions.Put(ctx, middleware.SessionKeyUserID, user.ID)

	h.logger.Info("account created",
		"category", "auth",
		"email", user.Email,
		"company_slug", company.Slug)

	WriteCreated(w, accountResponse(user, company))
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		WriteValidationError(w, map[string]string{"email": "Email and password are required"})
		return
	}

	if h.logins != nil {
		if locked, remaining := h.logins.IsAccountLocked(req.Email); locked {
			h.logger.Warn("login attempt on locked account",
				"category", "auth",
				"email", req.Email)
			WriteError(w, http.StatusTooManyRequests, "account_locked",
				"Account temporarily locked, try again in "+remaining.Round(time.Second).String(), nil)
			return
		}
	}

	user, err := h.queries.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.failLogin(w, req.Email)
			return
		}
		WriteInternalError(w, "Failed to log in")
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.failLogin(w, req.Email)
		return
	}

	if h.logins != nil {
		h.logins.RecordSuccessfulLogin(req.Email)
	}

	if err := h.sessions.RenewToken(ctx); err != nil {
		WriteInternalError(w, "Failed to start session")
		return
	}
	h.sessions.Put(ctx, middleware.SessionKeyUserID, user.ID)

	company, err := h.queries.GetCompanyByUserID(ctx, user.ID)
	if err != nil {
		WriteInternalError(w, "Failed to load company")
		return
	}

	WriteSuccess(w, accountResponse(user, company), nil)
}

// failLogin records a failed attempt and writes the generic 401. The
// response does not distinguish unknown emails from wrong passwords.
func (h *Handler) failLogin(w http.ResponseWriter, email string) {
	if h.logins != nil {
		if locked, _ := h.logins.RecordFailedAttempt(email); locked {
			h.logger.Warn("account locked after repeated failures",
				"category", "auth",
				"email", email)
		}
	}
	WriteUnauthorized(w, "Invalid email or password")
}

// Logout handles POST /api/v1/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.Destroy(ctx); err != nil {
		WriteInternalError(w, "Failed to log out")
		return
	}

	WriteSuccess(w, map[string]bool{"logged_out": true}, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	company := middleware.GetCompany(r)
	if user == nil || company == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, accountResponse(*user, *company), nil)
}

// SlugAvailability is the response body for check-slug.
type SlugAvailability struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// CheckSlug handles GET /api/v1/auth/check-slug?slug=.
func (h *Handler) CheckSlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.URL.Query().Get("slug"))

	if !util.IsValidCompanySlug(slug) {
		WriteSuccess(w, SlugAvailability{Slug: slug, Available: false}, nil)
		return
	}

	taken, err := h.queries.SlugExists(r.Context(), slug)
	if err != nil {
		WriteInternalError(w, "Failed to check slug")
		return
	}

	WriteSuccess(w, SlugAvailability{Slug: slug, Available: taken == 0}, nil)
}

func accountResponse(user store.User, company store.Company) AccountResponse {
	resp := AccountResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  util.StringFromNull(user.Name),
	}
	cr := companyResponse(company)
	resp.Company = &cr
	return resp
}
