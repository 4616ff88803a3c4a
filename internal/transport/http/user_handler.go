package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"learnplatform/internal/apierr"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
	"learnplatform/internal/security"
)

type UserHandler struct {
	store  store.Store
	hasher *security.PasswordHasher
	log    *logger.Logger
}

func NewUserHandler(s store.Store, hasher *security.PasswordHasher, log *logger.Logger) *UserHandler {
	return &UserHandler{store: s, hasher: hasher, log: log}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if _, err := h.store.GetUserByEmail(c, req.Email); err == nil {
		writeError(c, apierr.Conflict("Email already registered"), "Failed to create user")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(c, err, "Failed to create user")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		writeError(c, apierr.Internal(err), "Failed to create user")
		return
	}

	user := &domain.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		XP:              0,
		Level:           1,
		Streak:          domain.Streak{StreakHistory: []string{}},
		Badges:          []domain.Badge{},
		EnrolledCourses: []string{},
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.store.CreateUser(c, user); err != nil {
		writeError(c, err, "Failed to create user")
		return
	}

	h.log.Info("user provisioned", "userId", user.ID)
	c.JSON(http.StatusCreated, summarize(user))
}
