package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/domain"
	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
)

type RoadmapHandler struct {
	store  store.Store
	engine *gamification.Engine
	log    *logger.Logger
}

func NewRoadmapHandler(s store.Store, e *gamification.Engine, log *logger.Logger) *RoadmapHandler {
	return &RoadmapHandler{store: s, engine: e, log: log}
}

type followReq struct {
	UserID    string `json:"userId" binding:"required"`
	RoadmapID string `json:"roadmapId" binding:"required"`
}

type milestoneReq struct {
	UserID    string `json:"userId" binding:"required"`
	RoadmapID string `json:"roadmapId" binding:"required"`
	StepID    string `json:"stepId" binding:"required"`
}

type roadmapView struct {
	domain.Roadmap
	IsFollowed     bool       `json:"isFollowed"`
	CompletedSteps []string   `json:"completedSteps"`
	FollowedAt     *time.Time `json:"followedAt,omitempty"`
}

// GET /api/v1/roadmaps?userId=
func (h *RoadmapHandler) List(c *gin.Context) {
	roadmaps, err := h.store.ListRoadmaps(c)
	if err != nil {
		writeError(c, err, "Failed to fetch roadmaps")
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusOK, roadmaps)
		return
	}

	userRoadmaps, err := h.store.ListUserRoadmaps(c, userID)
	if err != nil {
		writeError(c, err, "Failed to fetch roadmaps")
		return
	}

	views := make([]roadmapView, 0, len(roadmaps))
	for _, r := range roadmaps {
		view := roadmapView{Roadmap: r, CompletedSteps: []string{}}
		for i := range userRoadmaps {
			if userRoadmaps[i].RoadmapID == r.ID {
				view.IsFollowed = true
				view.CompletedSteps = userRoadmaps[i].CompletedSteps
				view.FollowedAt = &userRoadmaps[i].FollowedAt
				break
			}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// POST /api/v1/roadmaps/follow
func (h *RoadmapHandler) Follow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId or roadmapId"})
		return
	}

	userRoadmap, err := h.store.FollowRoadmap(c, req.UserID, req.RoadmapID)
	if err != nil {
		writeError(c, err, "Failed to follow roadmap")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"userRoadmap": userRoadmap,
	})
}

// PATCH /api/v1/roadmaps/complete-milestone
func (h *RoadmapHandler) CompleteMilestone(c *gin.Context) {
	var req milestoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	userRoadmap, err := h.store.CompleteRoadmapStep(c, req.UserID, req.RoadmapID, req.StepID)
	if err != nil {
		writeError(c, err, "User roadmap not found")
		return
	}

	xpReward := 50
	if roadmap, err := h.store.GetRoadmap(c, req.RoadmapID); err == nil {
		if step := roadmap.FindStep(req.StepID); step != nil {
			xpReward = step.XPReward
		}
	}

	result, err := h.engine.AwardXP(c, req.UserID, gamification.ActivityRoadmapStep, xpReward)
	if err != nil {
		h.log.Error("milestone reward failed", "userId", req.UserID, "err", err)
	}
	streak, err := h.engine.UpdateStreak(c, req.UserID)
	if err != nil {
		h.log.Error("streak update failed", "userId", req.UserID, "err", err)
	}
	result = mergeStreak(result, streak)

	c.JSON(http.StatusOK, gin.H{
		"userRoadmap":  userRoadmap,
		"xpEarned":     xpReward,
		"gamification": result,
	})
}
