package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/careerbase/internal/auth"
	"github.com/olegiv/careerbase/internal/model"
)

// Demo tenant credentials created when seeding is enabled.
const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "changeme"
	DemoUserName     = "Demo Owner"
	DemoCompanyName  = "Acme"
	DemoCompanySlug  = "acme"
)

// Seed creates a demo tenant (user, published company, sample jobs and
// sections) when enabled. Safe to call repeatedly.
func Seed(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)

	// Check if demo user already exists
	_, err := queries.GetUserByEmail(ctx, DemoUserEmail)
	if err == nil {
		slog.Info("demo tenant already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for demo user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DemoUserPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DemoUserEmail,
		PasswordHash: passwordHash,
		Name:         sql.NullString{String: DemoUserName, Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	company, err := queries.CreateCompany(ctx, CreateCompanyParams{
		UserID:      user.ID,
		Name:        DemoCompanyName,
		Slug:        DemoCompanySlug,
		Description: "A leading technology company with offices worldwide.",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("creating demo company: %w", err)
	}

	// Publish with default branding
	company, err = queries.UpdateCompany(ctx, UpdateCompanyParams{
		Name:            company.Name,
		Description:     company.Description,
		PrimaryColor:    sql.NullString{String: "#E23744", Valid: true},
		Published:       true,
		MetaTitle:       company.Name + " Careers",
		MetaDescription: "Open roles at " + company.Name,
		UpdatedAt:       now,
		ID:              company.ID,
	})
	if err != nil {
		return fmt.Errorf("publishing demo company: %w", err)
	}

	sections := []CreateSectionAtEndParams{
		{
			CompanyID:   company.ID,
			Type:        model.SectionTypeHero,
			Title:       "Build the future with us",
			Content:     "We are hiring across engineering, design and operations.",
			Data:        sql.NullString{String: `{"alignment":"center","overlay":true}`, Valid: true},
			CompanyID_2: company.ID,
			Visible:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			CompanyID:   company.ID,
			Type:        model.SectionTypeAbout,
			Title:       "About us",
			Content:     "Founded in 2015, Acme ships software used by millions.",
			CompanyID_2: company.ID,
			Visible:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, s := range sections {
		if _, err := queries.CreateSectionAtEnd(ctx, s); err != nil {
			return fmt.Errorf("creating demo section: %w", err)
		}
	}

	jobs := []CreateJobParams{
		{
			CompanyID:      company.ID,
			Title:          "Backend Engineer",
			Description:    "Own services end to end.",
			Location:       "Berlin",
			WorkPolicy:     model.WorkPolicyHybrid,
			JobType:        model.JobTypeFullTime,
			ContractType:   model.ContractPermanent,
			Department:     sql.NullString{String: "Engineering", Valid: true},
			SalaryMin:      sql.NullInt64{Int64: 70000, Valid: true},
			SalaryMax:      sql.NullInt64{Int64: 95000, Valid: true},
			SalaryCurrency: model.DefaultSalaryCurrency,
			SalaryPeriod:   sql.NullString{String: model.SalaryPeriodYear, Valid: true},
			Status:         model.JobStatusOpen,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			CompanyID:      company.ID,
			Title:          "Product Designer",
			Description:    "Design the careers page builder itself.",
			Location:       "Remote",
			WorkPolicy:     model.WorkPolicyRemote,
			JobType:        model.JobTypeFullTime,
			ContractType:   model.ContractPermanent,
			Department:     sql.NullString{String: "Design", Valid: true},
			SalaryCurrency: model.DefaultSalaryCurrency,
			Status:         model.JobStatusOpen,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	for _, j := range jobs {
		if _, err := queries.CreateJob(ctx, j); err != nil {
			return fmt.Errorf("creating demo job: %w", err)
		}
	}

	slog.Info("created demo tenant",
		"email", DemoUserEmail,
		"password", DemoUserPassword,
		"slug", company.Slug,
	)

	return nil
}
