package handler

import (
	"github.com/bhagatankit05/NextHire/internal/auth"
	"github.com/bhagatankit05/NextHire/internal/cache"
	"github.com/bhagatankit05/NextHire/internal/config"
	"github.com/bhagatankit05/NextHire/internal/groq"
	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Logger    *zap.Logger
	Config    *config.Config
	Repo      *repository.Repository
	Gateway   groq.Gateway
	Cache     *cache.InterviewCache
	Sessions  *session.Registry
	Submitter session.AnswerSubmitter
}

// GetClaimsFromContext retrieves the verified JWT claims set by the auth
// middleware, or nil on unauthenticated routes.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
