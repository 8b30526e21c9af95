package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/pkg/model"
)

// fakeStore mimics the record store's status gate: only active records are
// servable, and non-active looks exactly like missing.
type fakeStore struct {
	records map[string]*model.Interview
}

func (f *fakeStore) GetActiveInterview(ctx context.Context, id string) (*model.Interview, error) {
	iv, ok := f.records[id]
	if !ok || iv.Status != model.InterviewStatusActive {
		return nil, repository.ErrInterviewNotFound
	}
	return iv, nil
}

type recordingSubmitter struct {
	interviewID string
	candidate   model.CandidateInfo
	answers     []model.Answer
	err         error
}

func (r *recordingSubmitter) SubmitAnswers(ctx context.Context, interviewID string, candidate model.CandidateInfo, answers []model.Answer) error {
	if r.err != nil {
		return r.err
	}
	r.interviewID = interviewID
	r.candidate = candidate
	r.answers = answers
	return nil
}

func activeInterview(id string) *model.Interview {
	return &model.Interview{
		ID:            id,
		JobPosition:   "Backend Engineer",
		Duration:      30,
		InterviewType: "Technical",
		Questions: []model.QuestionItem{
			{Question: "Explain REST", Type: "Technical"},
			{Question: "Describe a production incident", Type: "Experience"},
		},
		Status:    model.InterviewStatusActive,
		CreatedAt: time.Now(),
	}
}

func TestSessionHappyPath(t *testing.T) {
	store := &fakeStore{records: map[string]*model.Interview{"iv1": activeInterview("iv1")}}
	sub := &recordingSubmitter{}
	s := New()

	if s.State() != StateLoading {
		t.Fatalf("new session state = %s, want %s", s.State(), StateLoading)
	}

	iv, err := s.Load(context.Background(), store, "iv1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if iv.JobPosition != "Backend Engineer" {
		t.Errorf("loaded wrong record: %+v", iv)
	}
	if s.State() != StateAwaitingCandidateInfo {
		t.Fatalf("state after Load = %s, want %s", s.State(), StateAwaitingCandidateInfo)
	}

	questions, err := s.Start(model.CandidateInfo{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if s.State() != StateInProgress {
		t.Fatalf("state after Start = %s, want %s", s.State(), StateInProgress)
	}

	if err := s.Submit(context.Background(), sub, []string{"REST is...", "We had an outage..."}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if s.State() != StateSubmitted {
		t.Fatalf("state after Submit = %s, want %s", s.State(), StateSubmitted)
	}

	if sub.interviewID != "iv1" {
		t.Errorf("submitter got interview id %q", sub.interviewID)
	}
	if sub.candidate.Name != "Ada" || sub.candidate.Email != "ada@example.com" {
		t.Errorf("submitter got candidate %+v", sub.candidate)
	}
	if len(sub.answers) != 2 || sub.answers[0].QuestionIndex != 0 || sub.answers[1].Text != "We had an outage..." {
		t.Errorf("answers not aligned with questions: %+v", sub.answers)
	}
}

func TestSessionNotFoundIsTerminal(t *testing.T) {
	store := &fakeStore{records: map[string]*model.Interview{}}
	s := New()

	_, err := s.Load(context.Background(), store, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.State() != StateNotFound {
		t.Fatalf("state = %s, want %s", s.State(), StateNotFound)
	}

	// no retry from the terminal state
	if _, err := s.Load(context.Background(), store, "nope"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on reload, got %v", err)
	}
	if _, err := s.Start(model.CandidateInfo{Name: "Ada", Email: "a@b.c"}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on Start, got %v", err)
	}
}

func TestSessionStatusGate(t *testing.T) {
	// expired and completed records must be indistinguishable from missing
	for _, status := range []model.InterviewStatus{model.InterviewStatusExpired, model.InterviewStatusCompleted} {
		iv := activeInterview("iv1")
		iv.Status = status
		store := &fakeStore{records: map[string]*model.Interview{"iv1": iv}}

		s := New()
		_, err := s.Load(context.Background(), store, "iv1")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("status %s: expected ErrNotFound, got %v", status, err)
		}
		if s.State() != StateNotFound {
			t.Errorf("status %s: state = %s, want %s", status, s.State(), StateNotFound)
		}
	}
}

func TestSessionStartValidation(t *testing.T) {
	store := &fakeStore{records: map[string]*model.Interview{"iv1": activeInterview("iv1")}}

	cases := []struct {
		name string
		info model.CandidateInfo
		want error
	}{
		{"missing name", model.CandidateInfo{Email: "a@b.c"}, ErrMissingName},
		{"missing email", model.CandidateInfo{Name: "Ada"}, ErrMissingEmail},
		{"blank name", model.CandidateInfo{Name: "   ", Email: "a@b.c"}, ErrMissingName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			if _, err := s.Load(context.Background(), store, "iv1"); err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if _, err := s.Start(tc.info); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			// refused transition leaves the state unchanged
			if s.State() != StateAwaitingCandidateInfo {
				t.Errorf("state = %s, want %s", s.State(), StateAwaitingCandidateInfo)
			}

			// phone stays optional
			if _, err := s.Start(model.CandidateInfo{Name: "Ada", Email: "a@b.c"}); err != nil {
				t.Errorf("Start with valid info failed: %v", err)
			}
		})
	}
}

func TestSessionSubmitAlignment(t *testing.T) {
	store := &fakeStore{records: map[string]*model.Interview{"iv1": activeInterview("iv1")}}
	sub := &recordingSubmitter{}

	s := New()
	if _, err := s.Load(context.Background(), store, "iv1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Start(model.CandidateInfo{Name: "Ada", Email: "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	// fewer answers than questions: trailing questions stay unanswered
	if err := s.Submit(context.Background(), sub, []string{"only the first"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(sub.answers) != 2 {
		t.Fatalf("expected 2 aligned answers, got %d", len(sub.answers))
	}
	if sub.answers[0].Text != "only the first" || sub.answers[1].Text != "" {
		t.Errorf("answers misaligned: %+v", sub.answers)
	}
}

func TestSessionSubmitFailureKeepsStateInProgress(t *testing.T) {
	store := &fakeStore{records: map[string]*model.Interview{"iv1": activeInterview("iv1")}}
	sub := &recordingSubmitter{err: errors.New("downstream unavailable")}

	s := New()
	if _, err := s.Load(context.Background(), store, "iv1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Start(model.CandidateInfo{Name: "Ada", Email: "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Submit(context.Background(), sub, nil); err == nil {
		t.Fatal("expected submit error")
	}
	if s.State() != StateInProgress {
		t.Errorf("state = %s, want %s", s.State(), StateInProgress)
	}
}

func TestRegistryPrune(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{records: map[string]*model.Interview{}}

	live := New()
	reg.Put(live)

	dead := New()
	reg.Put(dead)
	if _, err := dead.Load(context.Background(), store, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatal("expected load failure")
	}

	removed := reg.Prune(time.Hour)
	if removed != 1 {
		t.Fatalf("expected 1 pruned session, got %d", removed)
	}
	if _, ok := reg.Get(live.Token); !ok {
		t.Error("live session should survive pruning")
	}
	if _, ok := reg.Get(dead.Token); ok {
		t.Error("terminal session should be pruned")
	}
}
