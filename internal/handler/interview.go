package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhagatankit05/NextHire/internal/fetcher"
	"github.com/bhagatankit05/NextHire/internal/groq"
	"github.com/bhagatankit05/NextHire/internal/parser"
	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/bhagatankit05/NextHire/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateQuestions runs the full generation pipeline: prompt from the job
// spec, completion from the gateway, validated questions from the parser.
// Nothing is persisted here; failures leave no trace.
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var spec model.JobSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	prompt := groq.BuildQuestionsPrompt(spec)

	raw, err := h.Gateway.Complete(c.Request.Context(), prompt)
	if err != nil {
		h.Logger.Error("question generation failed",
			zap.String("job_position", spec.JobPosition),
			zap.Error(err),
		)
		response.BadGateway(c, "generation failed, try again")
		return
	}

	res, err := parser.ParseQuestions(raw)
	if err != nil {
		h.Logger.Error("question parsing failed",
			zap.String("job_position", spec.JobPosition),
			zap.Error(err),
		)
		response.ValidationError(c, "could not parse generated questions")
		return
	}

	if res.Dropped > 0 {
		h.Logger.Warn("dropped malformed question items",
			zap.String("job_position", spec.JobPosition),
			zap.Int("dropped", res.Dropped),
			zap.Int("kept", len(res.Questions)),
		)
	}

	response.OK(c, model.GenerateQuestionsRes{Questions: res.Questions, Raw: raw})
}

// CreateInterview persists a pre-generated question set and hands back the
// shareable link. Response shape is fixed for the dashboard client.
func (h *Handler) CreateInterview(c *gin.Context) {
	var req model.CreateInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req.Questions) == 0 {
		response.BadRequest(c, "interview must have at least one question")
		return
	}

	createdBy := req.CreatedBy
	if claims := h.GetClaimsFromContext(c); claims != nil {
		createdBy = claims.Email
	}

	iv, err := h.Repo.CreateInterview(c.Request.Context(), &model.Interview{
		JobPosition:    req.JobPosition,
		JobDescription: req.JobDescription,
		Duration:       req.Duration,
		InterviewType:  req.InterviewType,
		Questions:      req.Questions,
		CreatedBy:      createdBy,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmptyQuestions) {
			response.BadRequest(c, err.Error())
			return
		}
		h.Logger.Error("failed to save interview", zap.Error(err))
		response.InternalError(c, "failed to save interview")
		return
	}

	c.JSON(http.StatusCreated, model.CreateInterviewRes{
		Success:       true,
		Interview:     iv,
		InterviewLink: h.Config.InterviewLink(iv.ID),
		InterviewID:   iv.ID,
	})
}

// RecentInterviews lists the caller's latest records for the dashboard.
func (h *Handler) RecentInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			response.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	interviews, err := h.Repo.RecentInterviews(c.Request.Context(), claims.Email, limit)
	if err != nil {
		h.Logger.Error("failed to list interviews", zap.String("created_by", claims.Email), zap.Error(err))
		response.InternalError(c, "")
		return
	}

	response.OK(c, interviews)
}

// UpdateInterviewStatus expires or completes a record. The cache entry is
// dropped so the candidate gate takes effect immediately.
func (h *Handler) UpdateInterviewStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "missing id")
		return
	}

	var req model.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !model.ValidStatusTarget(req.Status) {
		response.BadRequest(c, "status must be expired or completed")
		return
	}

	if err := h.Repo.UpdateInterviewStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			response.NotFound(c, "interview not found")
			return
		}
		h.Logger.Error("failed to update interview status", zap.String("id", id), zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if err := h.Cache.Invalidate(c.Request.Context(), id); err != nil {
		h.Logger.Warn("failed to invalidate interview cache", zap.String("id", id), zap.Error(err))
	}

	response.Message(c, "interview status updated")
}

type importJobReq struct {
	URL string `json:"url" binding:"required,url"`
}

// ImportJobPost fetches a posting URL and returns extracted text the
// recruiter can use as the job description.
func (h *Handler) ImportJobPost(c *gin.Context) {
	var req importJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := fetcher.FetchJobPost(req.URL, c.Request.UserAgent())
	if err != nil {
		h.Logger.Warn("job post import failed", zap.String("url", req.URL), zap.Error(err))
		response.BadRequest(c, "could not fetch job posting")
		return
	}

	response.OK(c, post)
}
