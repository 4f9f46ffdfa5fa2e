// Package resume models the structured resume document, its persistence, and
// the projection into the canonical plain text consumed by the analyzer.
package resume

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no document exists for the requested student.
var ErrNotFound = errors.New("resume not found")

// Repository is the persistence contract for resume documents. Save has
// create-or-update semantics: the first save of a student's document stores
// version 1 and every subsequent save increments the version.
type Repository interface {
	FindByStudent(ctx context.Context, studentID string) (*Document, error)
	Save(ctx context.Context, doc *Document) (*Document, error)
	MarkSubmitted(ctx context.Context, studentID string) (*Document, error)
}

// Document is a versioned resume owned by exactly one student. The scoring
// engine only ever reads it.
type Document struct {
	ID           int64      `json:"id"`
	StudentID    string     `json:"studentId"`
	Data         Data       `json:"resumeData"`
	TemplateUsed string     `json:"templateUsed,omitempty"`
	IsSubmitted  bool       `json:"isSubmitted"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	Version      int        `json:"version"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Data holds the structured resume sections. Every field is optional; the
// projector skips what is absent. Validation happens at the repository
// boundary, not here.
type Data struct {
	PersonalInfo     *PersonalInfo   `json:"personalInfo,omitempty"`
	Summary          string          `json:"summary,omitempty"`
	Education        []Education     `json:"education,omitempty"`
	Experience       []Experience    `json:"experience,omitempty"`
	Projects         []Project       `json:"projects,omitempty"`
	Skills           []Skill         `json:"skills,omitempty"`
	Certifications   []Certification `json:"certifications,omitempty"`
	Awards           []Award         `json:"awards,omitempty"`
	Extracurriculars []string        `json:"extracurriculars,omitempty"`
}

type PersonalInfo struct {
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

type Experience struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Description []string `json:"description,omitempty"`
}

type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

type Award struct {
	Title  string `json:"title,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}
