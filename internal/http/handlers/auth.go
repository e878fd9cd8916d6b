package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/auth"
	"github.com/medixpro/medixpro/internal/config"
	"github.com/medixpro/medixpro/internal/domain/user"
	"github.com/medixpro/medixpro/internal/http/middlewares"
	"github.com/medixpro/medixpro/internal/repo/postgres"
	"github.com/medixpro/medixpro/internal/security"
	"github.com/google/uuid"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
}

type UserWriter interface {
	Create(ctx context.Context, u user.User) error
	UpdateProfile(ctx context.Context, id, name, avatar string) (user.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type AuthHandler struct {
	users      UserReader
	userWriter UserWriter
	jwt        *auth.Manager
}

func NewAuthHandler(users UserReader, userWriter UserWriter, jwtManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		users:      users,
		userWriter: userWriter,
		jwt:        jwtManager,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=120"`
	Avatar string `json:"avatar" binding:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}
	// short timeout for DB lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Email)
	if err != nil {
		// same failure for unknown email and wrong password
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	err = security.CheckPassword(foundUser.PasswordHash, req.Password)

	if err != nil {
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	token, err := h.jwt.GenerateToken(foundUser.ID, foundUser.Email, foundUser.Role)

	if err != nil {
		RespondInternal(ctx, "Could not generate token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  foundUser,
	})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	now := time.Now().UTC()

	u := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		// default role for new users
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = h.userWriter.Create(cctx, u)

	if err != nil {
		if errors.Is(err, postgres.ErrEmailAlreadyUsed) {
			RespondBadRequest(ctx, "Email is already in use", nil)
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	token, err := h.jwt.GenerateToken(u.ID, u.Email, u.Role)

	if err != nil {
		RespondInternal(ctx, "Could not generate token")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  u,
	})
}

func (h *AuthHandler) Profile(ctx *gin.Context) {
	userID := ctx.GetString(middlewares.CtxUserID)

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	u, err := h.users.GetByID(cctx, userID)

	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not load profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest

	if !BindJSON(ctx, &req) {
		return
	}

	userID := ctx.GetString(middlewares.CtxUserID)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, err := h.userWriter.UpdateProfile(cctx, userID, req.Name, req.Avatar)

	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not update profile")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest

	if !BindJSON(ctx, &req) {
		return
	}

	userID := ctx.GetString(middlewares.CtxUserID)

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, err := h.users.GetByID(cctx, userID)

	if err != nil {
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	if err := security.CheckPassword(u.PasswordHash, req.OldPassword); err != nil {
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	hash, err := security.HashPassword(req.NewPassword)

	if err != nil {
		RespondInternal(ctx, "Could not change password")
		return
	}

	if err := h.userWriter.UpdatePassword(cctx, userID, hash); err != nil {
		RespondInternal(ctx, "Could not change password")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
