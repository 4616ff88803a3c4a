package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnplatform/internal/apierr"
	"learnplatform/internal/domain"
	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
)

// userSummary is what the API exposes about an account; the password hash
// never leaves the store layer.
type userSummary struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	XP              int            `json:"xp"`
	Level           int            `json:"level"`
	Streak          domain.Streak  `json:"streak"`
	Badges          []domain.Badge `json:"badges"`
	EnrolledCourses []string       `json:"enrolledCourses"`
}

func summarize(u *domain.User) userSummary {
	return userSummary{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		XP:              u.XP,
		Level:           u.Level,
		Streak:          u.Streak,
		Badges:          u.Badges,
		EnrolledCourses: u.EnrolledCourses,
	}
}

// writeError maps store and apierr errors onto HTTP responses. Anything
// unrecognized is reported generically so internals never leak.
func writeError(c *gin.Context, err error, fallback string) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Code})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fallback})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// mergeStreak folds a streak result into the XP-award result the way the
// client expects one combined gamification payload.
func mergeStreak(award, streak *gamification.Result) *gamification.Result {
	if award != nil && streak != nil {
		award.StreakUpdate = streak.StreakUpdate
	}
	return award
}
