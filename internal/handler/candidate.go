package handler

import (
	"context"
	"errors"

	"github.com/bhagatankit05/NextHire/internal/session"
	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/bhagatankit05/NextHire/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// activeLoader is the candidate read path: cache first, then the status-gated
// database read, warming the cache on the way out.
type activeLoader struct {
	h *Handler
}

func (l activeLoader) GetActiveInterview(ctx context.Context, id string) (*model.Interview, error) {
	if iv, ok := l.h.Cache.Get(ctx, id); ok {
		return iv, nil
	}
	iv, err := l.h.Repo.GetActiveInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.h.Cache.Set(ctx, iv); err != nil {
		l.h.Logger.Warn("failed to cache interview", zap.String("id", id), zap.Error(err))
	}
	return iv, nil
}

// GetInterview is the public link-load read. Expired, completed and
// nonexistent ids are indistinguishable here.
func (h *Handler) GetInterview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "missing id")
		return
	}

	iv, err := activeLoader{h}.GetActiveInterview(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "interview not found or has expired")
		return
	}

	response.OK(c, iv.Summary())
}

// JoinInterview opens a candidate session against a shareable link.
func (h *Handler) JoinInterview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "missing id")
		return
	}

	s := session.New()
	iv, err := s.Load(c.Request.Context(), activeLoader{h}, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(c, "interview not found or has expired")
			return
		}
		h.Logger.Error("failed to load interview", zap.String("id", id), zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Sessions.Put(s)

	response.OK(c, gin.H{
		"session_token": s.Token,
		"interview":     iv.Summary(),
	})
}

// StartSession captures candidate info and reveals the question sequence.
func (h *Handler) StartSession(c *gin.Context) {
	s, ok := h.Sessions.Get(c.Param("token"))
	if !ok {
		response.NotFound(c, "session not found")
		return
	}

	var req model.StartSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	questions, err := s.Start(model.CandidateInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMissingName), errors.Is(err, session.ErrMissingEmail):
			response.ValidationError(c, "please fill in your name and email")
		case errors.Is(err, session.ErrInvalidTransition):
			response.Conflict(c, "session is not awaiting candidate info")
		default:
			response.InternalError(c, "")
		}
		return
	}

	response.OK(c, gin.H{"questions": questions})
}

// SubmitSession collects the candidate's answers and closes the session.
func (h *Handler) SubmitSession(c *gin.Context) {
	token := c.Param("token")
	s, ok := h.Sessions.Get(token)
	if !ok {
		response.NotFound(c, "session not found")
		return
	}

	var req model.SubmitSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := s.Submit(c.Request.Context(), h.Submitter, req.Answers); err != nil {
		if errors.Is(err, session.ErrInvalidTransition) {
			response.Conflict(c, "session is not in progress")
			return
		}
		h.Logger.Error("failed to submit session", zap.String("token", token), zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Sessions.Delete(token)
	response.Message(c, "interview submitted successfully")
}
