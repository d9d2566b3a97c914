// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/careerbase/internal/directory"
	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
	"github.com/olegiv/careerbase/internal/util"
)

// JobResponse represents a job posting in API responses.
type JobResponse struct {
	ID               int64      `json:"id"`
	CompanyID        int64      `json:"company_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Location         string     `json:"location"`
	WorkPolicy       string     `json:"work_policy"`
	JobType          string     `json:"job_type"`
	ContractType     string     `json:"contract_type"`
	Department       *string    `json:"department,omitempty"`
	ExperienceLevel  *string    `json:"experience_level,omitempty"`
	SalaryMin        *int64     `json:"salary_min,omitempty"`
	SalaryMax        *int64     `json:"salary_max,omitempty"`
	SalaryCurrency   string     `json:"salary_currency"`
	SalaryPeriod     *string    `json:"salary_period,omitempty"`
	Requirements     string     `json:"requirements,omitempty"`
	Responsibilities string     `json:"responsibilities,omitempty"`
	Benefits         string     `json:"benefits,omitempty"`
	Status           string     `json:"status"`
	ClosesAt         *time.Time `json:"closes_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// JobRequest represents the request body for creating or updating a job.
// Update requests use pointers so absent fields keep their value; create
// requests fall back to defaults for the optional fields.
type JobRequest struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Location         *string `json:"location,omitempty"`
	WorkPolicy       *string `json:"work_policy,omitempty"`
	JobType          *string `json:"job_type,omitempty"`
	ContractType     *string `json:"contract_type,omitempty"`
	Department       *string `json:"department,omitempty"`
	ExperienceLevel  *string `json:"experience_level,omitempty"`
	SalaryMin        *int64  `json:"salary_min,omitempty"`
	SalaryMax        *int64  `json:"salary_max,omitempty"`
	SalaryCurrency   *string `json:"salary_currency,omitempty"`
	SalaryPeriod     *string `json:"salary_period,omitempty"`
	Requirements     *string `json:"requirements,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
	Benefits         *string `json:"benefits,omitempty"`
	Status           *string `json:"status,omitempty"`
	ClosesAt         *string `json:"closes_at,omitempty"`
}

func jobResponse(j store.Job) JobResponse {
	resp := JobResponse{
		ID:               j.ID,
		CompanyID:        j.CompanyID,
		Title:            j.Title,
		Description:      j.Description,
		Location:         j.Location,
		WorkPolicy:       j.WorkPolicy,
		JobType:          j.JobType,
		ContractType:     j.ContractType,
		Department:       util.PtrFromNullString(j.Department),
		ExperienceLevel:  util.PtrFromNullString(j.ExperienceLevel),
		SalaryMin:        util.PtrFromNullInt64(j.SalaryMin),
		SalaryMax:        util.PtrFromNullInt64(j.SalaryMax),
		SalaryCurrency:   j.SalaryCurrency,
		SalaryPeriod:     util.PtrFromNullString(j.SalaryPeriod),
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		Status:           j.Status,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	if j.ClosesAt.Valid {
		resp.ClosesAt = &j.ClosesAt.Time
	}
	return resp
}

func jobResponses(jobs []store.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobResponse(j))
	}
	return out
}

// jobFields is a fully resolved job payload after defaults and the
// current row (for updates) have been applied.
type jobFields struct {
	Title            string
	Description      string
	Location         string
	WorkPolicy       string
	JobType          string
	ContractType     string
	Department       sql.NullString
	ExperienceLevel  sql.NullString
	SalaryMin        sql.NullInt64
	SalaryMax        sql.NullInt64
	SalaryCurrency   string
	SalaryPeriod     sql.NullString
	Requirements     string
	Responsibilities string
	Benefits         string
	Status           string
	ClosesAt         sql.NullTime
}

func jobDefaults() jobFields {
	return jobFields{
		WorkPolicy:     model.WorkPolicyOnSite,
		JobType:        model.JobTypeFullTime,
		ContractType:   model.ContractPermanent,
		SalaryCurrency: model.DefaultSalaryCurrency,
		Status:         model.JobStatusOpen,
	}
}

func jobFieldsFromRow(j store.Job) jobFields {
	return jobFields{
		Title:            j.Title,
		Description:      j.Description,
		Location:         j.Location,
		WorkPolicy:       j.WorkPolicy,
		JobType:          j.JobType,
		ContractType:     j.ContractType,
		Department:       j.Department,
		ExperienceLevel:  j.ExperienceLevel,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		SalaryCurrency:   j.SalaryCurrency,
		SalaryPeriod:     j.SalaryPeriod,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Benefits:         j.Benefits,
		Status:           j.Status,
		ClosesAt:         j.ClosesAt,
	}
}

// applyJobRequest overlays the request onto base and validates the
// result. It returns field errors or nil.
func applyJobRequest(base *jobFields, req JobRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if req.Title != nil {
		base.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		base.Description = *req.Description
	}
	if req.Location != nil {
		base.Location = strings.TrimSpace(*req.Location)
	}
	if req.WorkPolicy != nil {
		base.WorkPolicy = *req.WorkPolicy
	}
	if req.JobType != nil {
		base.JobType = *req.JobType
	}
	if req.ContractType != nil {
		base.ContractType = *req.ContractType
	}
	if req.Department != nil {
		base.Department = util.NullStringFromValue(*req.Department)
	}
	if req.ExperienceLevel != nil {
		base.ExperienceLevel = util.NullStringFromValue(*req.ExperienceLevel)
	}
	if req.SalaryMin != nil {
		base.SalaryMin = sql.NullInt64{Int64: *req.SalaryMin, Valid: true}
	}
	if req.SalaryMax != nil {
		base.SalaryMax = sql.NullInt64{Int64: *req.SalaryMax, Valid: true}
	}
	if req.SalaryCurrency != nil {
		base.SalaryCurrency = strings.ToUpper(strings.TrimSpace(*req.SalaryCurrency))
	}
	if req.SalaryPeriod != nil {
		base.SalaryPeriod = util.NullStringFromValue(*req.SalaryPeriod)
	}
	if req.Requirements != nil {
		base.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		base.Responsibilities = *req.Responsibilities
	}
	if req.Benefits != nil {
		base.Benefits = *req.Benefits
	}
	if req.Status != nil {
		base.Status = *req.Status
	}
	if req.ClosesAt != nil {
		if *req.ClosesAt == "" {
			base.ClosesAt = sql.NullTime{}
		} else {
			t, err := time.Parse(time.RFC3339, *req.ClosesAt)
			if err != nil {
				fieldErrors["closes_at"] = "Must be an RFC 3339 timestamp"
			} else {
				base.ClosesAt = sql.NullTime{Time: t, Valid: true}
			}
		}
	}

	if base.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if base.Location == "" {
		fieldErrors["location"] = "Location is required"
	}
	if !model.IsValidWorkPolicy(base.WorkPolicy) {
		fieldErrors["work_policy"] = "Must be one of: " + strings.Join(model.ValidWorkPolicies, ", ")
	}
	if !model.IsValidJobType(base.JobType) {
		fieldErrors["job_type"] = "Must be one of: " + strings.Join(model.ValidJobTypes, ", ")
	}
	if !model.IsValidContractType(base.ContractType) {
		fieldErrors["contract_type"] = "Must be one of: " + strings.Join(model.ValidContractTypes, ", ")
	}
	if base.ExperienceLevel.Valid && !model.IsValidExperienceLevel(base.ExperienceLevel.String) {
		fieldErrors["experience_level"] = "Must be one of: " + strings.Join(model.ValidExperienceLevels, ", ")
	}
	if base.SalaryPeriod.Valid && !model.IsValidSalaryPeriod(base.SalaryPeriod.String) {
		fieldErrors["salary_period"] = "Must be one of: " + strings.Join(model.ValidSalaryPeriods, ", ")
	}
	if !model.IsValidJobStatus(base.Status) {
		fieldErrors["status"] = "Must be one of: " + strings.Join(model.ValidJobStatuses, ", ")
	}
	if base.SalaryMin.Valid && base.SalaryMin.Int64 < 0 {
		fieldErrors["salary_min"] = "Must not be negative"
	}
	if base.SalaryMin.Valid && base.SalaryMax.Valid && base.SalaryMin.Int64 > base.SalaryMax.Int64 {
		fieldErrors["salary_max"] = "Must be greater than or equal to salary_min"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListJobs handles GET /api/v1/companies/{id}/jobs.
// Filter query params narrow the list; status defaults to all.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	jobs, err := h.queries.ListJobsByCompany(ctx, company.ID)
	if err != nil {
		WriteInternalError(w, "Failed to list jobs")
		return
	}

	filter := filterFromQuery(r)
	jobs = filter.Apply(jobs)

	WriteSuccess(w, jobResponses(jobs), &Meta{Total: int64(len(jobs))})
}

// CreateJob handles POST /api/v1/companies/{id}/jobs.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company, ok := requireOwnCompany(w, r)
	if !ok {
		return
	}

	var req JobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fields := jobDefaults()
	if fieldErrors := applyJobRequest(&fields, req); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	now := time.Now()
	job, err := h.queries.CreateJob(ctx, store.CreateJobParams{
		CompanyID:        company.ID,
		Title:            fields.Title,
		Description:      fields.Description,
		Location:         fields.Location,
		WorkPolicy:       fields.WorkPolicy,
		JobType:          fields.JobType,
		ContractType:     fields.ContractType,
		Department:       fields.Department,
		ExperienceLevel:  fields.ExperienceLevel,
		SalaryMin:        fields.SalaryMin,
		SalaryMax:        fields.SalaryMax,
		SalaryCurrency:   fields.SalaryCurrency,
		SalaryPeriod:     fields.SalaryPeriod,
		Requirements:     fields.Requirements,
		Responsibilities: fields.Responsibilities,
		Benefits:         fields.Benefits,
		Status:           fields.Status,
		ClosesAt:         fields.ClosesAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create job")
		return
	}

	h.invalidatePage(ctx, company.Slug)

	h.logger.Info("job created",
		"category", "job",
		"job_id", job.ID,
		"title", job.Title)

	WriteCreated(w, jobResponse(job))
}

// requireOwnJob fetches the {id} job and checks it belongs to the
// session owner's company.
func (h *Handler) requireOwnJob(w http.ResponseWriter, r *http.Request, company *store.Company) (store.Job, bool) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid job ID", nil)
		return store.Job{}, false
	}

	job, err := h.queries.GetJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Job not found")
		} else {
			WriteInternalError(w, "Failed to retrieve job")
		}
		return store.Job{}, false
	}
	if company == nil || job.CompanyID != company.ID {
		WriteNotFound(w, "Job not found")
		return store.Job{}, false
	}
	return job, true
}

// GetJob handles GET /api/v1/jobs/{id}.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.requireOwnJob(w, r, companyFromContext(r))
	if !ok {
		return
	}
	WriteSuccess(w, jobResponse(job), nil)
}

// UpdateJob handles PATCH /api/v1/jobs/{id}.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	job, ok := h.requireOwnJob(w, r, company)
	if !ok {
		return
	}

	var req JobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fields := jobFieldsFromRow(job)
	if fieldErrors := applyJobRequest(&fields, req); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	updated, err := h.queries.UpdateJob(ctx, store.UpdateJobParams{
		Title:            fields.Title,
		Description:      fields.Description,
		Location:         fields.Location,
		WorkPolicy:       fields.WorkPolicy,
		JobType:          fields.JobType,
		ContractType:     fields.ContractType,
		Department:       fields.Department,
		ExperienceLevel:  fields.ExperienceLevel,
		SalaryMin:        fields.SalaryMin,
		SalaryMax:        fields.SalaryMax,
		SalaryCurrency:   fields.SalaryCurrency,
		SalaryPeriod:     fields.SalaryPeriod,
		Requirements:     fields.Requirements,
		Responsibilities: fields.Responsibilities,
		Benefits:         fields.Benefits,
		Status:           fields.Status,
		ClosesAt:         fields.ClosesAt,
		UpdatedAt:        time.Now(),
		ID:               job.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update job")
		return
	}

	h.invalidatePage(ctx, company.Slug)

	WriteSuccess(w, jobResponse(updated), nil)
}

// DeleteJob handles DELETE /api/v1/jobs/{id}.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	company := companyFromContext(r)
	job, ok := h.requireOwnJob(w, r, company)
	if !ok {
		return
	}

	if _, err := h.queries.DeleteJob(ctx, job.ID); err != nil {
		WriteInternalError(w, "Failed to delete job")
		return
	}

	h.invalidatePage(ctx, company.Slug)

	w.WriteHeader(http.StatusNoContent)
}

// filterFromQuery builds a directory filter from request query params.
// Empty params are unconstrained, matching the "all" sentinel.
func filterFromQuery(r *http.Request) directory.Filter {
	q := r.URL.Query()
	return directory.Filter{
		Search:     q.Get("search"),
		Location:   q.Get("location"),
		JobType:    q.Get("job_type"),
		WorkPolicy: q.Get("work_policy"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
	}
}
