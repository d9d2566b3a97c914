// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package section manages the ordered, per-company list of content
// sections that make up a careers page. New sections are appended at
// the end, reordering is applied as an all-or-nothing batch, and
// removal leaves the remaining positions untouched.
package section

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/careerbase/internal/store"
)

var (
	// ErrSectionNotFound is returned when a section id does not exist
	// or belongs to another company.
	ErrSectionNotFound = errors.New("section not found")

	// ErrEmptyBatch is returned when a reorder request carries no entries.
	ErrEmptyBatch = errors.New("reorder batch is empty")

	// ErrDuplicateSection is returned when a reorder batch lists the
	// same section id twice.
	ErrDuplicateSection = errors.New("duplicate section id in batch")

	// ErrNegativePosition is returned when a reorder batch assigns a
	// position below zero.
	ErrNegativePosition = errors.New("position must not be negative")
)

// PositionUpdate assigns a new position to a single section within a
// reorder batch.
type PositionUpdate struct {
	ID       int64
	Position int64
}

// AppendInput carries the fields of a new section. Position is never
// part of the input: the engine always places new sections at the end.
type AppendInput struct {
	Type     string
	Title    string
	Content  string
	ImageURL sql.NullString
	Data     sql.NullString
	Visible  bool
}

// Engine implements section ordering on top of the store. It needs the
// raw *sql.DB alongside the queries so Reorder can run in a transaction.
type Engine struct {
	db      *sql.DB
	queries *store.Queries
}

func NewEngine(db *sql.DB, queries *store.Queries) *Engine {
	return &Engine{db: db, queries: queries}
}

// Append creates a new section at the end of the company's list. The
// position equals the company's current section count, so positions
// are contiguous as long as no section has been removed.
func (e *Engine) Append(ctx context.Context, companyID int64, input AppendInput) (store.ContentSection, error) {
	now := time.Now()
	sec, err := e.queries.CreateSectionAtEnd(ctx, store.CreateSectionAtEndParams{
		CompanyID:   companyID,
		Type:        input.Type,
		Title:       input.Title,
		Content:     input.Content,
		ImageUrl:    input.ImageURL,
		Data:        input.Data,
		CompanyID_2: companyID,
		Visible:     input.Visible,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return store.ContentSection{}, fmt.Errorf("appending section: %w", err)
	}
	return sec, nil
}

// Reorder applies a batch of position updates atomically. If any entry
// refers to a section that does not exist or belongs to another
// company, no positions change at all. Entries outside the batch keep
// their current positions.
func (e *Engine) Reorder(ctx context.Context, companyID int64, updates []PositionUpdate) error {
	if len(updates) == 0 {
		return ErrEmptyBatch
	}
	seen := make(map[int64]struct{}, len(updates))
	for _, u := range updates {
		if u.Position < 0 {
			return fmt.Errorf("section %d: %w", u.ID, ErrNegativePosition)
		}
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("section %d: %w", u.ID, ErrDuplicateSection)
		}
		seen[u.ID] = struct{}{}
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning reorder transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := e.queries.WithTx(tx)
	now := time.Now()
	for _, u := range updates {
		affected, err := qtx.SetSectionPosition(ctx, store.SetSectionPositionParams{
			Position:  u.Position,
			UpdatedAt: now,
			ID:        u.ID,
			CompanyID: companyID,
		})
		if err != nil {
			return fmt.Errorf("moving section %d: %w", u.ID, err)
		}
		if affected == 0 {
			return fmt.Errorf("section %d: %w", u.ID, ErrSectionNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	return nil
}

// ToggleVisibility flips the visible flag of a section owned by the
// company and returns the updated row. Position is untouched, so a
// hidden section keeps its slot in the ordering.
func (e *Engine) ToggleVisibility(ctx context.Context, companyID, sectionID int64) (store.ContentSection, error) {
	sec, err := e.owned(ctx, companyID, sectionID)
	if err != nil {
		return store.ContentSection{}, err
	}

	affected, err := e.queries.SetSectionVisibility(ctx, store.SetSectionVisibilityParams{
		Visible:   !sec.Visible,
		UpdatedAt: time.Now(),
		ID:        sec.ID,
	})
	if err != nil {
		return store.ContentSection{}, fmt.Errorf("toggling section %d: %w", sectionID, err)
	}
	if affected == 0 {
		return store.ContentSection{}, ErrSectionNotFound
	}
	return e.queries.GetSectionByID(ctx, sec.ID)
}

// Update replaces the editable fields of a section owned by the
// company. Position is not editable here; use Reorder.
func (e *Engine) Update(ctx context.Context, companyID, sectionID int64, input AppendInput) (store.ContentSection, error) {
	if _, err := e.owned(ctx, companyID, sectionID); err != nil {
		return store.ContentSection{}, err
	}
	sec, err := e.queries.UpdateSection(ctx, store.UpdateSectionParams{
		Type:      input.Type,
		Title:     input.Title,
		Content:   input.Content,
		ImageUrl:  input.ImageURL,
		Data:      input.Data,
		Visible:   input.Visible,
		UpdatedAt: time.Now(),
		ID:        sectionID,
	})
	if err != nil {
		return store.ContentSection{}, fmt.Errorf("updating section %d: %w", sectionID, err)
	}
	return sec, nil
}

// Remove deletes a section owned by the company. Positions of the
// remaining sections are not renumbered, leaving a gap in the sequence.
// Removing the same id twice reports ErrSectionNotFound on the second
// call.
func (e *Engine) Remove(ctx context.Context, companyID, sectionID int64) error {
	if _, err := e.owned(ctx, companyID, sectionID); err != nil {
		return err
	}
	affected, err := e.queries.DeleteSection(ctx, sectionID)
	if err != nil {
		return fmt.Errorf("removing section %d: %w", sectionID, err)
	}
	if affected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// Get returns a single section owned by the company.
func (e *Engine) Get(ctx context.Context, companyID, sectionID int64) (store.ContentSection, error) {
	return e.owned(ctx, companyID, sectionID)
}

// List returns all sections of a company ordered by position, with id
// as a tie breaker so equal positions still read back deterministically.
func (e *Engine) List(ctx context.Context, companyID int64) ([]store.ContentSection, error) {
	return e.queries.ListSectionsByCompany(ctx, companyID)
}

// ListVisible returns only the sections shown on the public page, in
// the same deterministic order as List.
func (e *Engine) ListVisible(ctx context.Context, companyID int64) ([]store.ContentSection, error) {
	return e.queries.ListVisibleSectionsByCompany(ctx, companyID)
}

func (e *Engine) owned(ctx context.Context, companyID, sectionID int64) (store.ContentSection, error) {
	sec, err := e.queries.GetSectionByID(ctx, sectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ContentSection{}, ErrSectionNotFound
	}
	if err != nil {
		return store.ContentSection{}, fmt.Errorf("loading section %d: %w", sectionID, err)
	}
	if sec.CompanyID != companyID {
		return store.ContentSection{}, ErrSectionNotFound
	}
	return sec, nil
}
