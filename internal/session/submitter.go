package session

import (
	"context"

	"github.com/bhagatankit05/NextHire/pkg/model"
	"go.uber.org/zap"
)

// LogSubmitter is the wired AnswerSubmitter. Answer persistence has no
// backend contract yet, so submissions are logged and acknowledged.
type LogSubmitter struct {
	Logger *zap.Logger
}

func (s *LogSubmitter) SubmitAnswers(ctx context.Context, interviewID string, candidate model.CandidateInfo, answers []model.Answer) error {
	answered := 0
	for _, a := range answers {
		if a.Text != "" {
			answered++
		}
	}
	s.Logger.Info("interview submitted",
		zap.String("interview_id", interviewID),
		zap.String("candidate_email", candidate.Email),
		zap.Int("questions", len(answers)),
		zap.Int("answered", answered),
	)
	return nil
}
