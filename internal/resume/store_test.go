package resume

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "resumes.db"))
	if err != nil {
		t.Fatalf("open store: %s", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreSaveCreatesAndIncrementsVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := &Document{StudentID: "s-1", Data: Data{Summary: "First draft."}}

	saved, err := store.Save(ctx, doc)
	if err != nil {
		t.Fatalf("first save: %s", err)
	}
	if saved.Version != 1 {
		t.Fatalf("expected version 1, got %d", saved.Version)
	}
	if saved.Data.Summary != "First draft." {
		t.Fatalf("data did not round-trip: %+v", saved.Data)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set: %+v", saved)
	}

	doc.Data.Summary = "Second draft."
	saved, err = store.Save(ctx, doc)
	if err != nil {
		t.Fatalf("second save: %s", err)
	}
	if saved.Version != 2 {
		t.Fatalf("expected version 2, got %d", saved.Version)
	}
	if saved.Data.Summary != "Second draft." {
		t.Fatalf("expected updated data, got %+v", saved.Data)
	}

	if saved, err = store.Save(ctx, doc); err != nil || saved.Version != 3 {
		t.Fatalf("expected version 3, got %d (err %v)", saved.Version, err)
	}
}

func TestStoreFindByStudentNotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.FindByStudent(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveRequiresStudentID(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save(context.Background(), &Document{}); err == nil {
		t.Fatalf("expected an error for a document without a student id")
	}
}

func TestStoreMarkSubmitted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.MarkSubmitted(ctx, "s-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any save, got %v", err)
	}

	doc := &Document{StudentID: "s-1", Data: Data{Summary: "Draft."}}
	if _, err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %s", err)
	}

	submitted, err := store.MarkSubmitted(ctx, "s-1")
	if err != nil {
		t.Fatalf("mark submitted: %s", err)
	}
	if !submitted.IsSubmitted || submitted.SubmittedAt == nil {
		t.Fatalf("expected a submitted document with a timestamp, got %+v", submitted)
	}
	first := *submitted.SubmittedAt

	// A later save keeps the submission state untouched.
	saved, err := store.Save(ctx, doc)
	if err != nil {
		t.Fatalf("save after submit: %s", err)
	}
	if !saved.IsSubmitted || saved.SubmittedAt == nil || !saved.SubmittedAt.Equal(first) {
		t.Fatalf("expected submission state to survive a save, got %+v", saved)
	}

	// A repeated submit keeps the original timestamp.
	resubmitted, err := store.MarkSubmitted(ctx, "s-1")
	if err != nil {
		t.Fatalf("second submit: %s", err)
	}
	if !resubmitted.SubmittedAt.Equal(first) {
		t.Fatalf("expected the first submission timestamp to stick, got %v", resubmitted.SubmittedAt)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatalf("expected an error for a blank database path")
	}
}
