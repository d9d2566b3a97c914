// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/careerbase/internal/middleware"
	"github.com/olegiv/careerbase/internal/store"
)

// companyFromContext returns the session owner's company, or nil when
// the request is not authenticated.
func companyFromContext(r *http.Request) *store.Company {
	return middleware.GetCompany(r)
}

// maxRequestBody bounds JSON request bodies. Uploads have their own limits.
const maxRequestBody = 1 << 20 // 1 MB

// ParseIDParam parses the {id} URL parameter as a positive int64.
func ParseIDParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// decodeJSON reads the request body into dst. It rejects unknown fields
// and trailing data so malformed clients fail loudly.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		WriteBadRequest(w, "Request body must contain a single JSON object", nil)
		return false
	}
	return true
}
