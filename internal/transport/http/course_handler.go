package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
)

type CourseHandler struct {
	store  store.Store
	engine *gamification.Engine
	log    *logger.Logger
}

func NewCourseHandler(s store.Store, e *gamification.Engine, log *logger.Logger) *CourseHandler {
	return &CourseHandler{store: s, engine: e, log: log}
}

type enrollReq struct {
	UserID   string `json:"userId" binding:"required"`
	CourseID string `json:"courseId" binding:"required"`
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.store.ListCourses(c)
	if err != nil {
		writeError(c, err, "Failed to fetch courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	course, err := h.store.GetCourse(c, c.Param("id"))
	if err != nil {
		writeError(c, err, "Course not found")
		return
	}
	c.JSON(http.StatusOK, course)
}

// POST /api/v1/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	var req enrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId or courseId"})
		return
	}

	enrolled, err := h.store.EnrollUser(c, req.UserID, req.CourseID)
	if err != nil {
		writeError(c, err, "Failed to enroll in course")
		return
	}
	if !enrolled {
		// Unknown user or duplicate enrollment; either way nothing changed.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to enroll or already enrolled"})
		return
	}

	result, err := h.engine.AwardXP(c, req.UserID, gamification.ActivityDailyLogin, 0)
	if err != nil {
		h.log.Error("enroll reward failed", "userId", req.UserID, "err", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"gamification": result,
	})
}
