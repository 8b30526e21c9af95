package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bhagatankit05/NextHire/pkg/model"
)

func TestCreateInterviewRejectsEmptyQuestions(t *testing.T) {
	// nil pool: the guard must fire before any persistence is attempted
	r := NewRepository(nil)

	for _, questions := range [][]model.QuestionItem{nil, {}} {
		_, err := r.CreateInterview(context.Background(), &model.Interview{
			JobPosition:    "Backend Engineer",
			JobDescription: "Go services",
			Duration:       30,
			InterviewType:  "Technical",
			Questions:      questions,
		})
		if !errors.Is(err, ErrEmptyQuestions) {
			t.Errorf("questions=%v: expected ErrEmptyQuestions, got %v", questions, err)
		}
	}
}

func TestUpdateInterviewStatusRejectsInvalidTarget(t *testing.T) {
	r := NewRepository(nil)

	for _, status := range []model.InterviewStatus{model.InterviewStatusActive, "archived", ""} {
		if err := r.UpdateInterviewStatus(context.Background(), "some-id", status); err == nil {
			t.Errorf("status %q: expected error", status)
		}
	}
}
