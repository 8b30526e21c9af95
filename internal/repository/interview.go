package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateInterview persists a new active record and returns it. The id is a
// fresh random uuid and doubles as the public link token, so collisions must
// stay cryptographically negligible. Creation is a single INSERT; readers
// never observe a partially written record.
func (r *Repository) CreateInterview(ctx context.Context, iv *model.Interview) (*model.Interview, error) {
	if len(iv.Questions) == 0 {
		return nil, ErrEmptyQuestions
	}

	iv.ID = uuid.NewString()
	iv.Status = model.InterviewStatusActive
	iv.CreatedAt = time.Now().UTC()
	if iv.CreatedBy == "" {
		iv.CreatedBy = "anonymous"
	}

	questionsJSON, err := json.Marshal(iv.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}

	const q = `
INSERT INTO interviews (
	id, job_position, job_description, duration, interview_type,
	questions, created_by, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err = r.db.Exec(ctx, q,
		iv.ID, iv.JobPosition, iv.JobDescription, iv.Duration, iv.InterviewType,
		questionsJSON, iv.CreatedBy, iv.Status, iv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}
	return iv, nil
}

// GetActiveInterview reads a record by id, gated on status. Absent ids and
// expired/completed records both come back as ErrInterviewNotFound.
func (r *Repository) GetActiveInterview(ctx context.Context, id string) (*model.Interview, error) {
	const q = `
SELECT id, job_position, job_description, duration, interview_type,
	questions, created_by, status, created_at
FROM interviews WHERE id = $1 AND status = 'active'
`
	var iv model.Interview
	var questionsJSON []byte
	row := r.db.QueryRow(ctx, q, id)
	err := row.Scan(
		&iv.ID, &iv.JobPosition, &iv.JobDescription, &iv.Duration, &iv.InterviewType,
		&questionsJSON, &iv.CreatedBy, &iv.Status, &iv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("get interview: %w", err)
	}
	if err := json.Unmarshal(questionsJSON, &iv.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &iv, nil
}

// RecentInterviews lists a recruiter's latest records, newest first. No status
// gating here; recruiters see their expired and completed records too.
func (r *Repository) RecentInterviews(ctx context.Context, createdBy string, limit int) ([]model.RecentInterview, error) {
	if limit <= 0 {
		limit = 5
	}

	const q = `
SELECT id, job_position, duration, interview_type, status, created_at
FROM interviews WHERE created_by = $1
ORDER BY created_at DESC LIMIT $2
`
	rows, err := r.db.Query(ctx, q, createdBy, limit)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.RecentInterview, 0, limit)
	for rows.Next() {
		var iv model.RecentInterview
		if err := rows.Scan(&iv.ID, &iv.JobPosition, &iv.Duration, &iv.InterviewType, &iv.Status, &iv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// UpdateInterviewStatus moves an active record to expired or completed. The
// WHERE clause keeps the transition one-way; re-marking a closed record is a
// not-found, same as a bogus id.
func (r *Repository) UpdateInterviewStatus(ctx context.Context, id string, status model.InterviewStatus) error {
	if !model.ValidStatusTarget(status) {
		return fmt.Errorf("invalid target status %q", status)
	}

	const q = `UPDATE interviews SET status = $2 WHERE id = $1 AND status = 'active'`
	tag, err := r.db.Exec(ctx, q, id, status)
	if err != nil {
		return fmt.Errorf("update interview status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
