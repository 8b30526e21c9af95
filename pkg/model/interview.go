package model

import (
	"time"
)

type InterviewStatus string

const (
	InterviewStatusActive    InterviewStatus = "active"
	InterviewStatusExpired   InterviewStatus = "expired"
	InterviewStatusCompleted InterviewStatus = "completed"
)

// ValidStatusTarget reports whether a recruiter may move a record to the given
// status. Records only ever leave "active"; there is no way back.
func ValidStatusTarget(to InterviewStatus) bool {
	return to == InterviewStatusExpired || to == InterviewStatusCompleted
}

// QuestionItem is one generated question. Display order is generation order.
type QuestionItem struct {
	Question string `json:"question"`
	Type     string `json:"type"`
}

// Interview is the persisted unit of work. Questions are immutable after
// creation; status is the only field that ever changes.
type Interview struct {
	ID             string          `json:"id" db:"id"`
	JobPosition    string          `json:"job_position" db:"job_position"`
	JobDescription string          `json:"job_description" db:"job_description"`
	Duration       int             `json:"duration" db:"duration"`
	InterviewType  string          `json:"interview_type" db:"interview_type"`
	Questions      []QuestionItem  `json:"questions" db:"questions"`
	CreatedBy      string          `json:"created_by" db:"created_by"`
	Status         InterviewStatus `json:"status" db:"status"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// JobSpec is the recruiter input question generation works from.
type JobSpec struct {
	JobPosition    string `json:"jobPosition" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
	Duration       int    `json:"duration" binding:"required,min=1"`
	InterviewType  string `json:"interviewType" binding:"required"`
}

type CreateInterviewReq struct {
	JobPosition    string         `json:"jobPosition" binding:"required"`
	JobDescription string         `json:"jobDescription" binding:"required"`
	Duration       int            `json:"duration" binding:"required,min=1"`
	InterviewType  string         `json:"interviewType" binding:"required"`
	Questions      []QuestionItem `json:"questions" binding:"required"`
	CreatedBy      string         `json:"createdBy"`
}

type CreateInterviewRes struct {
	Success       bool       `json:"success"`
	Interview     *Interview `json:"interview"`
	InterviewLink string     `json:"interviewLink"`
	InterviewID   string     `json:"interviewId"`
}

type GenerateQuestionsRes struct {
	Questions []QuestionItem `json:"questions"`
	Raw       string         `json:"raw"`
}

type UpdateStatusReq struct {
	Status InterviewStatus `json:"status" binding:"required"`
}

// RecentInterview is the dashboard list projection. Recruiters see their own
// records regardless of status.
type RecentInterview struct {
	ID            string          `json:"id"`
	JobPosition   string          `json:"job_position"`
	Duration      int             `json:"duration"`
	InterviewType string          `json:"interview_type"`
	Status        InterviewStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InterviewSummary is what a candidate sees after loading a shareable link,
// before providing their info. Questions are only revealed once the session
// starts.
type InterviewSummary struct {
	ID            string `json:"id"`
	JobPosition   string `json:"job_position"`
	Duration      int    `json:"duration"`
	InterviewType string `json:"interview_type"`
}

func (i *Interview) Summary() *InterviewSummary {
	return &InterviewSummary{
		ID:            i.ID,
		JobPosition:   i.JobPosition,
		Duration:      i.Duration,
		InterviewType: i.InterviewType,
	}
}
