// Package session drives the candidate-facing flow from link load to
// submission. One Session instance exists per candidate visit; its state and
// candidate info live in memory only and vanish when the session is pruned.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/google/uuid"
)

type State string

const (
	StateLoading               State = "loading"
	StateNotFound              State = "not_found"
	StateAwaitingCandidateInfo State = "awaiting_candidate_info"
	StateInProgress            State = "in_progress"
	StateSubmitted             State = "submitted"
)

var (
	// ErrNotFound is terminal; the candidate sees a static not-found message
	// whether the id is bogus, expired, or completed.
	ErrNotFound          = errors.New("session: interview not found")
	ErrInvalidTransition = errors.New("session: invalid state transition")
	ErrMissingName       = errors.New("session: name is required")
	ErrMissingEmail      = errors.New("session: email is required")
)

// InterviewLoader is the status-gated read path. *repository.Repository
// satisfies it; handlers wrap it with the cache.
type InterviewLoader interface {
	GetActiveInterview(ctx context.Context, id string) (*model.Interview, error)
}

// AnswerSubmitter receives the candidate's submission. Storage is out of
// scope here; the wired implementation only records that it happened.
type AnswerSubmitter interface {
	SubmitAnswers(ctx context.Context, interviewID string, candidate model.CandidateInfo, answers []model.Answer) error
}

// Session is one candidate's walk through an interview.
type Session struct {
	Token string

	mu        sync.Mutex
	state     State
	interview *model.Interview
	candidate model.CandidateInfo
	touched   time.Time
}

func New() *Session {
	return &Session{
		Token:   uuid.NewString(),
		state:   StateLoading,
		touched: time.Now(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load fetches the interview behind a shareable link id. A gated or missing
// record parks the session in NotFound for good; on success the session moves
// straight through Loaded into AwaitingCandidateInfo.
func (s *Session) Load(ctx context.Context, loader InterviewLoader, id string) (*model.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return nil, ErrInvalidTransition
	}
	s.touched = time.Now()

	iv, err := loader.GetActiveInterview(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			s.state = StateNotFound
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.interview = iv
	s.state = StateAwaitingCandidateInfo
	return iv, nil
}

// Start captures candidate info and opens the question sequence. Refused with
// the session unchanged unless both name and email are present.
func (s *Session) Start(info model.CandidateInfo) ([]model.QuestionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingCandidateInfo {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(info.Name) == "" {
		return nil, ErrMissingName
	}
	if strings.TrimSpace(info.Email) == "" {
		return nil, ErrMissingEmail
	}

	s.touched = time.Now()
	s.candidate = info
	s.state = StateInProgress
	return s.interview.Questions, nil
}

// Submit aligns the answer texts with the question order and hands them off.
// Short submissions leave trailing questions unanswered rather than failing.
func (s *Session) Submit(ctx context.Context, submitter AnswerSubmitter, answers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return ErrInvalidTransition
	}
	s.touched = time.Now()

	ordered := make([]model.Answer, len(s.interview.Questions))
	for i := range s.interview.Questions {
		ordered[i] = model.Answer{QuestionIndex: i}
		if i < len(answers) {
			ordered[i].Text = answers[i]
		}
	}

	if err := submitter.SubmitAnswers(ctx, s.interview.ID, s.candidate, ordered); err != nil {
		return err
	}

	s.state = StateSubmitted
	return nil
}

// Interview returns the loaded record, or nil before Load succeeds.
func (s *Session) Interview() *model.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interview
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched)
}
