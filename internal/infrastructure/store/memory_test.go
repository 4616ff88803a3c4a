package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnplatform/internal/domain"
)

func newUser(id string) *domain.User {
	return &domain.User{
		ID:              id,
		Name:            "User " + id,
		Email:           "user-" + id + "@example.com",
		Level:           1,
		Streak:          domain.Streak{StreakHistory: []string{}},
		Badges:          []domain.Badge{},
		EnrolledCourses: []string{},
		CreatedAt:       time.Now().UTC(),
	}
}

func TestMemoryGetUserNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateUserShallowMerge(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, newUser("u1")))

	xp := 42
	updated, err := s.UpdateUser(ctx, "u1", UserPatch{XP: &xp})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.XP)
	assert.Equal(t, "User u1", updated.Name, "unpatched fields stay put")

	// The streak is replaced wholesale, never field-merged.
	streak := domain.Streak{CurrentStreak: 2, LastActiveDate: "2026-08-29", StreakHistory: []string{"2026-08-28", "2026-08-29"}}
	updated, err = s.UpdateUser(ctx, "u1", UserPatch{Streak: &streak})
	require.NoError(t, err)
	assert.Equal(t, streak, updated.Streak)
	assert.Equal(t, 42, updated.XP)

	empty := domain.Streak{}
	updated, err = s.UpdateUser(ctx, "u1", UserPatch{Streak: &empty})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Streak.CurrentStreak)
	assert.Empty(t, updated.Streak.StreakHistory)

	_, err = s.UpdateUser(ctx, "missing", UserPatch{XP: &xp})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpsertProgressMerge(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	completed := true
	p, err := s.UpsertProgress(ctx, "u1", "1", "1-1", ProgressPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Equal(t, 0, p.TimeSpentSeconds)
	assert.Equal(t, "1", p.CourseID)

	// A later partial update must not reset the completed flag.
	seconds := 30
	p, err = s.UpsertProgress(ctx, "u1", "1", "1-1", ProgressPatch{TimeSpentSeconds: &seconds})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Equal(t, 30, p.TimeSpentSeconds)

	all, err := s.ListProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert merges in place instead of appending")
}

func TestMemoryUpsertProgressDefaults(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seconds := 45
	p, err := s.UpsertProgress(ctx, "u1", "1", "1-2", ProgressPatch{TimeSpentSeconds: &seconds})
	require.NoError(t, err)
	assert.False(t, p.Completed)
	assert.Equal(t, 45, p.TimeSpentSeconds)
	assert.Nil(t, p.Score)
	assert.Nil(t, p.CompletedAt)
}

func TestMemoryEnrollIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, newUser("u1")))

	ok, err := s.EnrollUser(ctx, "u1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.EnrollUser(ctx, "u1", "2")
	require.NoError(t, err)
	assert.False(t, ok, "second enrollment is rejected")

	user, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, user.EnrolledCourses)

	ok, err = s.EnrollUser(ctx, "missing", "2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryFollowRoadmapIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.FollowRoadmap(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Empty(t, first.CompletedSteps)

	_, err = s.CompleteRoadmapStep(ctx, "u1", "1", "step-1")
	require.NoError(t, err)

	again, err := s.FollowRoadmap(ctx, "u1", "1")
	require.NoError(t, err)
	assert.Equal(t, first.FollowedAt, again.FollowedAt)
	assert.Equal(t, []string{"step-1"}, again.CompletedSteps, "re-follow returns the existing record")
}

func TestMemoryCompleteRoadmapStep(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.CompleteRoadmapStep(ctx, "u1", "1", "step-1")
	assert.ErrorIs(t, err, ErrNotFound, "completing before following")

	_, err = s.FollowRoadmap(ctx, "u1", "1")
	require.NoError(t, err)

	ur, err := s.CompleteRoadmapStep(ctx, "u1", "1", "step-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"step-1"}, ur.CompletedSteps)

	// Re-completing is a no-op, not an error.
	ur, err = s.CompleteRoadmapStep(ctx, "u1", "1", "step-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"step-1"}, ur.CompletedSteps)
}

func TestMemoryGameScores(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	gs, err := s.RecordGameScore(ctx, "u1", "game-1-4", 80, 20)
	require.NoError(t, err)
	assert.NotEmpty(t, gs.ID)
	assert.Equal(t, 80, gs.Score)
	assert.Equal(t, 20, gs.XPEarned)

	_, err = s.RecordGameScore(ctx, "u1", "game-1-4", 90, 23)
	require.NoError(t, err)
	_, err = s.RecordGameScore(ctx, "u2", "game-1-4", 10, 3)
	require.NoError(t, err)

	scores, err := s.ListGameScores(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestModuleUnlockedSequentialGating(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// First module of the course is always open.
	ok, err := ModuleUnlocked(ctx, s, "u1", "1", "1-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// Third module stays locked until the second is completed.
	ok, err = ModuleUnlocked(ctx, s, "u1", "1", "1-2-game")
	require.NoError(t, err)
	assert.False(t, ok)

	completed := true
	_, err = s.UpsertProgress(ctx, "u1", "1", "1-2", ProgressPatch{Completed: &completed})
	require.NoError(t, err)

	ok, err = ModuleUnlocked(ctx, s, "u1", "1", "1-2-game")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = ModuleUnlocked(ctx, s, "u1", "1", "missing-module")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeededMemoryStore(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	user, err := s.GetUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, 150, user.XP)
	assert.Equal(t, 2, user.Level)
	assert.True(t, user.HasBadge("first-course"))

	progress, err := s.ListProgress(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, progress, 2)
}
