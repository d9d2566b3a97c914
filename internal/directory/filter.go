// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package directory filters a company's job listings for the public
// careers page. Filtering runs in memory over the company's jobs,
// which stay small enough per tenant that query-level filtering buys
// nothing.
package directory

import (
	"strings"

	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/store"
)

// Any disables a filter dimension when passed as its value.
const Any = "all"

// Filter narrows a job list. Zero or "all" values leave a dimension
// unconstrained. Search matches the job title case-insensitively as a
// substring; the remaining fields match exactly.
type Filter struct {
	Search     string
	Location   string
	JobType    string
	WorkPolicy string
	Department string
	Status     string
}

// PublicFilter returns the filter baseline for public pages: only open
// jobs are ever shown, whatever else the visitor narrows by.
func PublicFilter() Filter {
	return Filter{Status: model.JobStatusOpen}
}

// Matches reports whether a single job passes every constrained
// dimension of the filter.
func (f Filter) Matches(job store.Job) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(job.Title), strings.ToLower(f.Search)) {
		return false
	}
	if constrained(f.Location) && job.Location != f.Location {
		return false
	}
	if constrained(f.JobType) && job.JobType != f.JobType {
		return false
	}
	if constrained(f.WorkPolicy) && job.WorkPolicy != f.WorkPolicy {
		return false
	}
	if constrained(f.Department) && job.Department.String != f.Department {
		return false
	}
	if constrained(f.Status) && job.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the jobs passing the filter, preserving input order.
func (f Filter) Apply(jobs []store.Job) []store.Job {
	matched := make([]store.Job, 0, len(jobs))
	for _, job := range jobs {
		if f.Matches(job) {
			matched = append(matched, job)
		}
	}
	return matched
}

// Facets collects the distinct values present in a job list so the
// page can render filter dropdowns from real data instead of the full
// enum space.
type Facets struct {
	Locations    []string
	JobTypes     []string
	WorkPolicies []string
	Departments  []string
}

// CollectFacets extracts the distinct filterable values from a job
// list in first-seen order.
func CollectFacets(jobs []store.Job) Facets {
	var f Facets
	seenLoc := make(map[string]struct{})
	seenType := make(map[string]struct{})
	seenPolicy := make(map[string]struct{})
	seenDept := make(map[string]struct{})
	for _, job := range jobs {
		if _, ok := seenLoc[job.Location]; !ok && job.Location != "" {
			seenLoc[job.Location] = struct{}{}
			f.Locations = append(f.Locations, job.Location)
		}
		if _, ok := seenType[job.JobType]; !ok {
			seenType[job.JobType] = struct{}{}
			f.JobTypes = append(f.JobTypes, job.JobType)
		}
		if _, ok := seenPolicy[job.WorkPolicy]; !ok {
			seenPolicy[job.WorkPolicy] = struct{}{}
			f.WorkPolicies = append(f.WorkPolicies, job.WorkPolicy)
		}
		if job.Department.Valid {
			if _, ok := seenDept[job.Department.String]; !ok {
				seenDept[job.Department.String] = struct{}{}
				f.Departments = append(f.Departments, job.Department.String)
			}
		}
	}
	return f
}

func constrained(v string) bool {
	return v != "" && v != Any
}
