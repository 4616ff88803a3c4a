package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
)

type QuizHandler struct {
	store  store.Store
	engine *gamification.Engine
	log    *logger.Logger
}

func NewQuizHandler(s store.Store, e *gamification.Engine, log *logger.Logger) *QuizHandler {
	return &QuizHandler{store: s, engine: e, log: log}
}

type quizSubmitReq struct {
	UserID    string `json:"userId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
	ModuleID  string `json:"moduleId" binding:"required"`
	Answers   []int  `json:"answers" binding:"required"`
	TimeSpent int    `json:"timeSpent"`
}

type questionResult struct {
	QuestionID    string   `json:"questionId"`
	Question      string   `json:"question"`
	UserAnswer    int      `json:"userAnswer"`
	CorrectAnswer int      `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
	Options       []string `json:"options"`
}

// POST /api/v1/quiz/submit
func (h *QuizHandler) Submit(c *gin.Context) {
	var req quizSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	course, err := h.store.GetCourse(c, req.CourseID)
	if err != nil {
		writeError(c, err, "Quiz not found")
		return
	}
	module := course.FindModule(req.ModuleID)
	if module == nil || module.Quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	quiz := module.Quiz

	// Quiz submission is just another way to complete a module, so it goes
	// through the same sequential gate as the progress endpoint.
	unlocked, err := store.ModuleUnlocked(c, h.store, req.UserID, req.CourseID, req.ModuleID)
	if err != nil {
		writeError(c, err, "Failed to submit quiz")
		return
	}
	if !unlocked {
		c.JSON(http.StatusConflict, gin.H{"error": "Module is locked"})
		return
	}

	correct := 0
	results := make([]questionResult, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answer := -1
		if i < len(req.Answers) {
			answer = req.Answers[i]
		}
		isCorrect := answer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		results = append(results, questionResult{
			QuestionID:    q.ID,
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Options:       q.Options,
		})
	}

	// A quiz with no questions scores zero rather than dividing by zero.
	score := 0
	if len(quiz.Questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
	}
	passed := score >= quiz.PassingScore

	patch := store.ProgressPatch{
		Score:            &score,
		TimeSpentSeconds: &req.TimeSpent,
	}
	if passed {
		// A failed retake never downgrades an earlier pass.
		completed := true
		now := time.Now().UTC()
		patch.Completed = &completed
		patch.CompletedAt = &now
	}

	progress, err := h.store.UpsertProgress(c, req.UserID, req.CourseID, req.ModuleID, patch)
	if err != nil {
		writeError(c, err, "Failed to submit quiz")
		return
	}

	activity := gamification.ActivityQuizFailed
	xp := quiz.XPReward / 6
	if passed {
		activity = gamification.ActivityQuizPassed
		xp = quiz.XPReward
	}
	result, err := h.engine.AwardXP(c, req.UserID, activity, xp)
	if err != nil {
		h.log.Error("quiz reward failed", "userId", req.UserID, "err", err)
	}

	if passed {
		streak, err := h.engine.UpdateStreak(c, req.UserID)
		if err != nil {
			h.log.Error("streak update failed", "userId", req.UserID, "err", err)
		}
		result = mergeStreak(result, streak)
	}

	c.JSON(http.StatusOK, gin.H{
		"score":        score,
		"passed":       passed,
		"correct":      correct,
		"total":        len(quiz.Questions),
		"passingScore": quiz.PassingScore,
		"results":      results,
		"progress":     progress,
		"gamification": result,
	})
}
