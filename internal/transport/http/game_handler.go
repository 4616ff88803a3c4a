package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
)

const (
	defaultGameMaxScore = 100
	defaultGameXPReward = 25
)

type GameHandler struct {
	store  store.Store
	engine *gamification.Engine
	log    *logger.Logger
}

func NewGameHandler(s store.Store, e *gamification.Engine, log *logger.Logger) *GameHandler {
	return &GameHandler{store: s, engine: e, log: log}
}

// gameXP scales the base reward by the achieved fraction of maxScore.
// Scores above the maximum are capped, never amplified; a game with no
// positive maximum pays nothing rather than dividing by zero.
func gameXP(score, maxScore, baseXPReward int) (int, float64) {
	if maxScore <= 0 {
		return 0, 0
	}
	fraction := math.Min(float64(score)/float64(maxScore), 1)
	return int(math.Round(float64(baseXPReward) * fraction)), fraction
}

type gameScoreReq struct {
	UserID   string `json:"userId" binding:"required"`
	GameID   string `json:"gameId" binding:"required"`
	Score    *int   `json:"score" binding:"required"`
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId"`
}

// POST /api/v1/games/score
func (h *GameHandler) SubmitScore(c *gin.Context) {
	var req gameScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	maxScore := defaultGameMaxScore
	baseXPReward := defaultGameXPReward
	if req.CourseID != "" && req.ModuleID != "" {
		if course, err := h.store.GetCourse(c, req.CourseID); err == nil {
			if module := course.FindModule(req.ModuleID); module != nil && module.Game != nil {
				maxScore = module.Game.MaxScore
				baseXPReward = module.Game.XPReward
			}
		}
	}

	xpEarned, scoreFraction := gameXP(*req.Score, maxScore, baseXPReward)

	gameScore, err := h.store.RecordGameScore(c, req.UserID, req.GameID, *req.Score, xpEarned)
	if err != nil {
		writeError(c, err, "Failed to submit game score")
		return
	}

	result, err := h.engine.AwardXP(c, req.UserID, gamification.ActivityGameCompleted, xpEarned)
	if err != nil {
		h.log.Error("game reward failed", "userId", req.UserID, "gameId", req.GameID, "err", err)
	}
	streak, err := h.engine.UpdateStreak(c, req.UserID)
	if err != nil {
		h.log.Error("streak update failed", "userId", req.UserID, "err", err)
	}
	result = mergeStreak(result, streak)

	c.JSON(http.StatusOK, gin.H{
		"gameScore":       gameScore,
		"xpEarned":        xpEarned,
		"scorePercentage": int(math.Round(scoreFraction * 100)),
		"gamification":    result,
	})
}

// GET /api/v1/user/games?userId=
func (h *GameHandler) UserScores(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId"})
		return
	}

	scores, err := h.store.ListGameScores(c, userID)
	if err != nil {
		writeError(c, err, "Failed to fetch game scores")
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}
