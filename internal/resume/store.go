package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is an SQLite-backed Repository.
type Store struct {
	db *sql.DB
}

var _ Repository = (*Store)(nil)

// Open opens (or creates) the resume database at the given path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open resume db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init resume schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS resumes (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id    TEXT NOT NULL UNIQUE,
		data          TEXT NOT NULL,
		template_used TEXT NOT NULL DEFAULT '',
		is_submitted  INTEGER NOT NULL DEFAULT 0,
		submitted_at  TEXT,
		version       INTEGER NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`)
	return err
}

// FindByStudent returns the student's document or ErrNotFound.
func (s *Store) FindByStudent(ctx context.Context, studentID string) (*Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, student_id, data, template_used, is_submitted, submitted_at, version, created_at, updated_at
		 FROM resumes WHERE student_id = ?`, studentID)

	return scanDocument(row)
}

// Save creates the student's document at version 1, or updates it in place
// with a version increment. Submission state is never touched by a save.
func (s *Store) Save(ctx context.Context, doc *Document) (*Document, error) {
	if doc == nil || strings.TrimSpace(doc.StudentID) == "" {
		return nil, errors.New("student id is required")
	}

	payload, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal resume data: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.ExecContext(ctx,
		`UPDATE resumes SET data = ?, template_used = ?, version = version + 1, updated_at = ?
		 WHERE student_id = ?`,
		string(payload), doc.TemplateUsed, now, doc.StudentID)
	if err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO resumes (student_id, data, template_used, version, created_at, updated_at)
			 VALUES (?, ?, ?, 1, ?, ?)`,
			doc.StudentID, string(payload), doc.TemplateUsed, now, now)
		if err != nil {
			return nil, fmt.Errorf("insert resume: %w", err)
		}
	}

	return s.FindByStudent(ctx, doc.StudentID)
}

// MarkSubmitted flags the document as submitted. The submission timestamp is
// set on the first submit only and survives later saves and submits.
func (s *Store) MarkSubmitted(ctx context.Context, studentID string) (*Document, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.ExecContext(ctx,
		`UPDATE resumes SET is_submitted = 1, submitted_at = COALESCE(submitted_at, ?), updated_at = ?
		 WHERE student_id = ?`, now, now, studentID)
	if err != nil {
		return nil, fmt.Errorf("mark submitted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.FindByStudent(ctx, studentID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc         Document
		data        string
		submitted   int
		submittedAt sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(&doc.ID, &doc.StudentID, &data, &doc.TemplateUsed, &submitted, &submittedAt, &doc.Version, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan resume: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &doc.Data); err != nil {
		return nil, fmt.Errorf("unmarshal resume data: %w", err)
	}

	doc.IsSubmitted = submitted != 0
	if submittedAt.Valid {
		if t, err := time.Parse(time.RFC3339, submittedAt.String); err == nil {
			doc.SubmittedAt = &t
		}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		doc.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		doc.UpdatedAt = t
	}

	return &doc, nil
}
