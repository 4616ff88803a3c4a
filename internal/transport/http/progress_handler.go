package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
)

type ProgressHandler struct {
	store  store.Store
	engine *gamification.Engine
	log    *logger.Logger
}

func NewProgressHandler(s store.Store, e *gamification.Engine, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{store: s, engine: e, log: log}
}

type progressReq struct {
	UserID           string `json:"userId" binding:"required"`
	CourseID         string `json:"courseId" binding:"required"`
	TimeSpentSeconds *int   `json:"timeSpentSeconds"`
	Completed        *bool  `json:"completed"`
}

// PATCH /api/v1/progress/:moduleId
func (h *ProgressHandler) Update(c *gin.Context) {
	moduleID := c.Param("moduleId")

	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId or courseId"})
		return
	}

	course, err := h.store.GetCourse(c, req.CourseID)
	if err != nil {
		writeError(c, err, "Course not found")
		return
	}
	module := course.FindModule(moduleID)
	if module == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}

	// Strict sequential gating: a module only accepts progress once its
	// predecessor is completed.
	unlocked, err := store.ModuleUnlocked(c, h.store, req.UserID, req.CourseID, moduleID)
	if err != nil {
		writeError(c, err, "Failed to update progress")
		return
	}
	if !unlocked {
		c.JSON(http.StatusConflict, gin.H{"error": "Module is locked"})
		return
	}

	wasCompleted := false
	if prev, err := h.store.GetProgress(c, req.UserID, moduleID); err == nil {
		wasCompleted = prev.Completed
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(c, err, "Failed to update progress")
		return
	}

	patch := store.ProgressPatch{
		TimeSpentSeconds: req.TimeSpentSeconds,
		Completed:        req.Completed,
	}
	if req.Completed != nil && *req.Completed {
		now := time.Now().UTC()
		patch.CompletedAt = &now
	}

	progress, err := h.store.UpsertProgress(c, req.UserID, req.CourseID, moduleID, patch)
	if err != nil {
		writeError(c, err, "Failed to update progress")
		return
	}

	var result *gamification.Result
	if req.Completed != nil && *req.Completed && !wasCompleted {
		activity := gamification.ActivityForModule(module.Type)
		result, err = h.engine.AwardXP(c, req.UserID, activity, 0)
		if err != nil {
			h.log.Error("module reward failed", "userId", req.UserID, "moduleId", moduleID, "err", err)
		}
		streak, err := h.engine.UpdateStreak(c, req.UserID)
		if err != nil {
			h.log.Error("streak update failed", "userId", req.UserID, "err", err)
		}
		result = mergeStreak(result, streak)
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":     progress,
		"gamification": result,
	})
}

// GET /api/v1/user/progress?userId=
func (h *ProgressHandler) UserProgress(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId"})
		return
	}

	user, err := h.store.GetUser(c, userID)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}

	progress, err := h.store.ListProgress(c, userID)
	if err != nil {
		writeError(c, err, "Failed to fetch user progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     summarize(user),
		"progress": progress,
	})
}
