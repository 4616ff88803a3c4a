package handlers

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"learnplatform/internal/middleware"
)

func NewRouter(
	userHandler *UserHandler,
	courseHandler *CourseHandler,
	progressHandler *ProgressHandler,
	quizHandler *QuizHandler,
	gameHandler *GameHandler,
	roadmapHandler *RoadmapHandler,
	limiter *middleware.RateLimiter,
	allowedOrigins string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if allowedOrigins != "" {
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.POST("/users", limiter.Limit("register", 5, 1*time.Minute), userHandler.Register)

		api.GET("/courses", courseHandler.List)
		api.GET("/courses/:id", courseHandler.GetOne)
		api.POST("/enroll", limiter.Limit("enroll", 10, 1*time.Minute), courseHandler.Enroll)

		api.PATCH("/progress/:moduleId", progressHandler.Update)
		api.GET("/user/progress", progressHandler.UserProgress)
		api.GET("/user/games", gameHandler.UserScores)

		api.POST("/quiz/submit", quizHandler.Submit)
		api.POST("/games/score", gameHandler.SubmitScore)

		roadmaps := api.Group("/roadmaps")
		{
			roadmaps.GET("", roadmapHandler.List)
			roadmaps.POST("/follow", roadmapHandler.Follow)
			roadmaps.PATCH("/complete-milestone", roadmapHandler.CompleteMilestone)
		}
	}

	return r
}
