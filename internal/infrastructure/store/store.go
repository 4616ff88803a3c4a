// Package store holds the authoritative mutable runtime state: users,
// progress, followed roadmaps and game scores. Course and roadmap catalogs
// are read-only fixtures exposed through the same interface so callers
// never reach around the store.
package store

import (
	"context"
	"errors"
	"time"

	"learnplatform/internal/domain"
)

// ErrNotFound is returned for every lookup against an unknown id. Stores
// never invent any other error for absence; callers translate it into a
// user-facing response.
var ErrNotFound = errors.New("record not found")

// UserPatch is a shallow merge: nil leaves the field alone, non-nil
// overwrites the whole top-level field. Streak in particular is replaced
// wholesale, never field-merged.
type UserPatch struct {
	Name            *string
	XP              *int
	Level           *int
	Streak          *domain.Streak
	Badges          *[]domain.Badge
	EnrolledCourses *[]string
}

// ProgressPatch carries the fields a caller wants to overlay onto a
// progress record. A patch with only TimeSpentSeconds set must not touch
// an existing Completed flag.
type ProgressPatch struct {
	Completed        *bool
	TimeSpentSeconds *int
	Score            *int
	CompletedAt      *time.Time
}

type Store interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*domain.User, error)

	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)

	GetProgress(ctx context.Context, userID, moduleID string) (*domain.Progress, error)
	ListProgress(ctx context.Context, userID string) ([]domain.Progress, error)
	UpsertProgress(ctx context.Context, userID, courseID, moduleID string, patch ProgressPatch) (*domain.Progress, error)

	EnrollUser(ctx context.Context, userID, courseID string) (bool, error)

	ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error)
	GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error)
	ListUserRoadmaps(ctx context.Context, userID string) ([]domain.UserRoadmap, error)
	FollowRoadmap(ctx context.Context, userID, roadmapID string) (*domain.UserRoadmap, error)
	CompleteRoadmapStep(ctx context.Context, userID, roadmapID, stepID string) (*domain.UserRoadmap, error)

	RecordGameScore(ctx context.Context, userID, gameID string, score, xpEarned int) (*domain.GameScore, error)
	ListGameScores(ctx context.Context, userID string) ([]domain.GameScore, error)
}

// ModuleUnlocked reports whether the module is reachable for the user:
// either it is the first module of the course or its immediate predecessor
// is completed. No skipping.
func ModuleUnlocked(ctx context.Context, s Store, userID, courseID, moduleID string) (bool, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return false, err
	}
	for i := range course.Modules {
		if course.Modules[i].ID != moduleID {
			continue
		}
		if i == 0 {
			return true, nil
		}
		prev, err := s.GetProgress(ctx, userID, course.Modules[i-1].ID)
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return prev.Completed, nil
	}
	return false, ErrNotFound
}
