// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package section

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

	// Create temp file for test database
	f, err := os.CreateTemp("", "careerbase-section-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	// Open database
	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	// Run core migrations
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	// Return cleanup function
	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")
	}
}

func createTestCompany(t *testing.T, queries *store.Queries, email, slug string) store.Company {
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
	return company
}

func appendSection(t *testing.T, e *Engine, companyID int64, title string) store.ContentSection {
	t.Helper()
	sec, err := e.Append(context.Background(), companyID, AppendInput{
		Type:    model.SectionTypeAbout,
		Title:   title,
		Content: "content for " + title,
		Visible: true,
	})
	if err != nil {
		t.Fatalf("Append(%q): %v", title, err)
	}
	return sec
}

func TestAppendAssignsSequentialPositions(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")

	for i := range 3 {
		sec := appendSection(t, engine, company.ID, "Section")
		if sec.Position != int64(i) {
			t.Errorf("section %d: position = %d, want %d", i, sec.Position, i)
		}
	}
}

func TestAppendPositionsAreIndependentPerCompany(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	first := createTestCompany(t, queries, "a@example.com", "first-co")
	second := createTestCompany(t, queries, "b@example.com", "second-co")

	appendSection(t, engine, first.ID, "A")
	appendSection(t, engine, first.ID, "B")

	sec := appendSection(t, engine, second.ID, "Other")
	if sec.Position != 0 {
		t.Errorf("position = %d, want 0 for first section of another company", sec.Position)
	}
}

func TestReorderSwapsPositions(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	a := appendSection(t, engine, company.ID, "A")
	b := appendSection(t, engine, company.ID, "B")
	c := appendSection(t, engine, company.ID, "C")

	err := engine.Reorder(ctx, company.ID, []PositionUpdate{
		{ID: c.ID, Position: 0},
		{ID: a.ID, Position: 1},
		{ID: b.ID, Position: 2},
	})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	list, err := engine.List(ctx, company.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	wantOrder := []int64{c.ID, a.ID, b.ID}
	if len(list) != len(wantOrder) {
		t.Fatalf("got %d sections, want %d", len(list), len(wantOrder))
	}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %d, want %d", i, list[i].ID, want)
		}
	}
}

func TestReorderPartialBatchLeavesOthersUntouched(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	a := appendSection(t, engine, company.ID, "A")
	b := appendSection(t, engine, company.ID, "B")

	err := engine.Reorder(ctx, company.ID, []PositionUpdate{
		{ID: b.ID, Position: 5},
	})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	got, err := queries.GetSectionByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetSectionByID: %v", err)
	}
	if got.Position != 0 {
		t.Errorf("untouched section position = %d, want 0", got.Position)
	}
}

func TestReorderAbortsWholeBatchOnUnknownSection(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	a := appendSection(t, engine, company.ID, "A")
	b := appendSection(t, engine, company.ID, "B")

	err := engine.Reorder(ctx, company.ID, []PositionUpdate{
		{ID: a.ID, Position: 1},
		{ID: 99999, Position: 0},
	})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("Reorder error = %v, want ErrSectionNotFound", err)
	}

	// The valid entry before the failure must not have been applied.
	got, err := queries.GetSectionByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetSectionByID: %v", err)
	}
	if got.Position != 0 {
		t.Errorf("position = %d after aborted batch, want 0", got.Position)
	}
	gotB, err := queries.GetSectionByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetSectionByID: %v", err)
	}
	if gotB.Position != 1 {
		t.Errorf("position = %d after aborted batch, want 1", gotB.Position)
	}
}

func TestReorderRejectsForeignSections(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	mine := createTestCompany(t, queries, "a@example.com", "mine")
	theirs := createTestCompany(t, queries, "b@example.com", "theirs")
	ctx := context.Background()

	own := appendSection(t, engine, mine.ID, "Own")
	foreign := appendSection(t, engine, theirs.ID, "Foreign")

	err := engine.Reorder(ctx, mine.ID, []PositionUpdate{
		{ID: own.ID, Position: 1},
		{ID: foreign.ID, Position: 0},
	})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("Reorder error = %v, want ErrSectionNotFound", err)
	}

	got, err := queries.GetSectionByID(ctx, foreign.ID)
	if err != nil {
		t.Fatalf("GetSectionByID: %v", err)
	}
	if got.Position != 0 {
		t.Errorf("foreign section position = %d, want 0", got.Position)
	}
}

func TestReorderValidatesBatch(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	sec := appendSection(t, engine, company.ID, "A")

	tests := []struct {
		name    string
		updates []PositionUpdate
		wantErr error
	}{
		{
			name:    "empty batch",
			updates: nil,
			wantErr: ErrEmptyBatch,
		},
		{
			name: "duplicate id",
			updates: []PositionUpdate{
				{ID: sec.ID, Position: 0},
				{ID: sec.ID, Position: 1},
			},
			wantErr: ErrDuplicateSection,
		},
		{
			name: "negative position",
			updates: []PositionUpdate{
				{ID: sec.ID, Position: -1},
			},
			wantErr: ErrNegativePosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Reorder(ctx, company.ID, tt.updates)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Reorder error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToggleVisibilityFlipsWithoutMoving(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	appendSection(t, engine, company.ID, "A")
	sec := appendSection(t, engine, company.ID, "B")

	hidden, err := engine.ToggleVisibility(ctx, company.ID, sec.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}
	if hidden.Visible {
		t.Error("visible = true after first toggle, want false")
	}
	if hidden.Position != sec.Position {
		t.Errorf("position changed from %d to %d on toggle", sec.Position, hidden.Position)
	}

	shown, err := engine.ToggleVisibility(ctx, company.ID, sec.ID)
	if err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}
	if !shown.Visible {
		t.Error("visible = false after second toggle, want true")
	}
}

func TestToggleVisibilityRejectsForeignSection(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	mine := createTestCompany(t, queries, "a@example.com", "mine")
	theirs := createTestCompany(t, queries, "b@example.com", "theirs")

	foreign := appendSection(t, engine, theirs.ID, "Foreign")

	_, err := engine.ToggleVisibility(context.Background(), mine.ID, foreign.ID)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("ToggleVisibility error = %v, want ErrSectionNotFound", err)
	}
}

func TestHiddenSectionKeepsSlotInList(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	a := appendSection(t, engine, company.ID, "A")
	b := appendSection(t, engine, company.ID, "B")
	c := appendSection(t, engine, company.ID, "C")

	if _, err := engine.ToggleVisibility(ctx, company.ID, b.ID); err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}

	all, err := engine.List(ctx, company.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d sections, want 3", len(all))
	}
	if all[1].ID != b.ID {
		t.Errorf("hidden section moved: list[1].ID = %d, want %d", all[1].ID, b.ID)
	}

	visible, err := engine.ListVisible(ctx, company.ID)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("ListVisible returned %d sections, want 2", len(visible))
	}
	if visible[0].ID != a.ID || visible[1].ID != c.ID {
		t.Errorf("ListVisible order = [%d %d], want [%d %d]",
			visible[0].ID, visible[1].ID, a.ID, c.ID)
	}
}

func TestRemoveLeavesGapAndAppendsAtCount(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	a := appendSection(t, engine, company.ID, "A") // position 0
	b := appendSection(t, engine, company.ID, "B") // position 1
	c := appendSection(t, engine, company.ID, "C") // position 2

	if err := engine.Remove(ctx, company.ID, b.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// Remaining sections keep their positions
	gotA, _ := queries.GetSectionByID(ctx, a.ID)
	gotC, _ := queries.GetSectionByID(ctx, c.ID)
	if gotA.Position != 0 || gotC.Position != 2 {
		t.Errorf("positions after remove = %d, %d; want 0, 2", gotA.Position, gotC.Position)
	}

	// Count is 2 now, so the next append lands at position 2 even
	// though C already occupies it. Reads stay deterministic via the
	// id tie breaker.
	d := appendSection(t, engine, company.ID, "D")
	if d.Position != 2 {
		t.Errorf("appended position = %d, want 2", d.Position)
	}

	list, err := engine.List(ctx, company.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	wantOrder := []int64{a.ID, c.ID, d.ID}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Errorf("list[%d].ID = %d, want %d", i, list[i].ID, want)
		}
	}
}

func TestRemoveTwiceReportsNotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	sec := appendSection(t, engine, company.ID, "A")

	if err := engine.Remove(ctx, company.ID, sec.ID); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	err := engine.Remove(ctx, company.ID, sec.ID)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("second Remove error = %v, want ErrSectionNotFound", err)
	}
}

func TestUpdateDoesNotChangePosition(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	queries := store.New(db)
	engine := NewEngine(db, queries)
	company := createTestCompany(t, queries, "a@example.com", "test-co")
	ctx := context.Background()

	appendSection(t, engine, company.ID, "A")
	sec := appendSection(t, engine, company.ID, "B")

	updated, err := engine.Update(ctx, company.ID, sec.ID, AppendInput{
		Type:    model.SectionTypeCulture,
		Title:   "New title",
		Content: "New content",
		Visible: false,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q, want %q", updated.Title, "New title")
	}
	if updated.Position != sec.Position {
		t.Errorf("position changed from %d to %d on update", sec.Position, updated.Position)
	}
}
