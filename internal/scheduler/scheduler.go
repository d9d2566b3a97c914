// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/careerbase/internal/cache"
	"github.com/olegiv/careerbase/internal/store"
)

// EventRetention is how long event log entries are kept before the
// nightly prune removes them.
const EventRetention = 90 * 24 * time.Hour

// Scheduler handles background tasks: closing jobs whose deadline has
// passed and pruning old event log entries.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
	pages  *cache.PageCache
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
	}
}

// SetPageCache wires the public page cache so background job closes
// drop the affected companies' cached payloads.
func (s *Scheduler) SetPageCache(pages *cache.PageCache) {
	s.pages = pages
}

// Start registers the scheduled tasks and begins running them. Jobs
// past their closing date are closed every minute; the event log is
// pruned once a day.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		if err := s.CloseDueJobs(context.Background()); err != nil {
			s.logger.Error("failed to close due jobs", "error", err)
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc("30 3 * * *", func() {
		if err := s.PruneEvents(context.Background()); err != nil {
			s.logger.Error("failed to prune events", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// CloseDueJobs closes every open job whose closing date has passed.
func (s *Scheduler) CloseDueJobs(ctx context.Context) error {
	queries := store.New(s.db)

	now := time.Now()
	jobs, err := queries.ListJobsDueToClose(ctx, sql.NullTime{
		Time:  now,
		Valid: true,
	})
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		return nil
	}

	s.logger.Info("closing jobs past their deadline", "count", len(jobs))

	// Closing a job changes the public payload, so the affected
	// companies' cached pages must be dropped too.
	touched := make(map[int64]struct{})

	for _, job := range jobs {
		if err := s.closeJob(ctx, queries, job, now); err != nil {
			s.logger.Error("failed to close job",
				"job_id", job.ID,
				"job_title", job.Title,
				"error", err,
			)
			continue
		}

		touched[job.CompanyID] = struct{}{}

		s.logger.Info("closed job past its deadline",
			"job_id", job.ID,
			"job_title", job.Title,
			"closes_at", job.ClosesAt.Time,
		)
	}

	s.invalidatePages(ctx, queries, touched)

	return nil
}

// invalidatePages drops the cached public payloads of every company
// whose jobs were just closed.
func (s *Scheduler) invalidatePages(ctx context.Context, queries *store.Queries, companyIDs map[int64]struct{}) {
	if s.pages == nil {
		return
	}

	for id := range companyIDs {
		company, err := queries.GetCompanyByID(ctx, id)
		if err != nil {
			s.logger.Warn("failed to load company for cache invalidation",
				"company_id", id,
				"error", err)
			continue
		}
		if err := s.pages.Invalidate(ctx, company.Slug); err != nil {
			s.logger.Warn("page cache invalidation failed",
				"category", "system",
				"slug", company.Slug,
				"error", err)
		}
	}
}

// closeJob closes a single job and logs the event.
func (s *Scheduler) closeJob(ctx context.Context, queries *store.Queries, job store.Job, now time.Time) error {
	err := queries.CloseJob(ctx, store.CloseJobParams{
		UpdatedAt: now,
		ID:        job.ID,
	})
	if err != nil {
		return err
	}

	metadata := map[string]interface{}{
		"job_id":     job.ID,
		"job_title":  job.Title,
		"company_id": job.CompanyID,
		"closes_at":  job.ClosesAt.Time.Format(time.RFC3339),
		"closed_at":  now.Format(time.RFC3339),
	}
	metadataJSON, _ := json.Marshal(metadata)

	_, err = queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     "info",
		Category:  "job",
		Message:   "Job closed automatically by scheduler: " + job.Title,
		UserID:    sql.NullInt64{}, // System action, no user
		Metadata:  string(metadataJSON),
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Warn("failed to log job close event", "error", err)
	}

	return nil
}

// PruneEvents removes event log entries older than the retention window.
func (s *Scheduler) PruneEvents(ctx context.Context) error {
	queries := store.New(s.db)

	cutoff := time.Now().Add(-EventRetention)
	deleted, err := queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		s.logger.Info("pruned old events", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}
