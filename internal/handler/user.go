package handler

import (
	"errors"

	"github.com/bhagatankit05/NextHire/internal/auth"
	"github.com/bhagatankit05/NextHire/internal/repository"
	"github.com/bhagatankit05/NextHire/pkg"
	"github.com/bhagatankit05/NextHire/pkg/model"
	"github.com/bhagatankit05/NextHire/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignUp creates a new recruiter account
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("failed to hash password", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
	}

	if err := h.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "email already registered")
			return
		}
		h.Logger.Error("user create failed", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "could not create user")
		return
	}

	response.Created(c, gin.H{"message": "user created successfully"})
}

// Login verifies credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Warn("login user not found", zap.String("email", req.Email))
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Warn("login password mismatch", zap.String("email", req.Email))
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := auth.GenerateToken(h.Config.JWT.Secret, user.UserID, user.Email, h.Config.JWT.AccessTokenTTL)
	if err != nil {
		h.Logger.Error("error creating token", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.TokenRes{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
		User:        model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email},
	})
}

// Me returns the current recruiter profile
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Repo.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email})
}
