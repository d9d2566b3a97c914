// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Job statuses
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Work policies
const (
	WorkPolicyRemote = "Remote"
	WorkPolicyHybrid = "Hybrid"
	WorkPolicyOnSite = "On-site"
)

// Job types
const (
	JobTypeFullTime = "Full time"
	JobTypePartTime = "Part time"
	JobTypeContract = "Contract"
)

// Contract types
const (
	ContractPermanent  = "Permanent"
	ContractTemporary  = "Temporary"
	ContractInternship = "Internship"
)

// Experience levels
const (
	ExperienceJunior = "Junior"
	ExperienceMid    = "Mid-level"
	ExperienceSenior = "Senior"
)

// Salary periods
const (
	SalaryPeriodMonth = "month"
	SalaryPeriodYear  = "year"
)

// DefaultSalaryCurrency is used when a job submits no currency.
const DefaultSalaryCurrency = "USD"

// ValidJobStatuses contains all valid job status values.
var ValidJobStatuses = []string{JobStatusOpen, JobStatusClosed, JobStatusDraft}

// ValidWorkPolicies contains all valid work policy values.
var ValidWorkPolicies = []string{WorkPolicyRemote, WorkPolicyHybrid, WorkPolicyOnSite}

// ValidJobTypes contains all valid job type values.
var ValidJobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract}

// ValidContractTypes contains all valid contract type values.
var ValidContractTypes = []string{ContractPermanent, ContractTemporary, ContractInternship}

// ValidExperienceLevels contains all valid experience level values.
var ValidExperienceLevels = []string{ExperienceJunior, ExperienceMid, ExperienceSenior}

// ValidSalaryPeriods contains all valid salary period values.
var ValidSalaryPeriods = []string{SalaryPeriodMonth, SalaryPeriodYear}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidJobStatus checks if a status value is valid.
func IsValidJobStatus(s string) bool { return contains(ValidJobStatuses, s) }

// IsValidWorkPolicy checks if a work policy value is valid.
func IsValidWorkPolicy(s string) bool { return contains(ValidWorkPolicies, s) }

// IsValidJobType checks if a job type value is valid.
func IsValidJobType(s string) bool { return contains(ValidJobTypes, s) }

// IsValidContractType checks if a contract type value is valid.
func IsValidContractType(s string) bool { return contains(ValidContractTypes, s) }

// IsValidExperienceLevel checks if an experience level value is valid.
func IsValidExperienceLevel(s string) bool { return contains(ValidExperienceLevels, s) }

// IsValidSalaryPeriod checks if a salary period value is valid.
func IsValidSalaryPeriod(s string) bool { return contains(ValidSalaryPeriods, s) }
