package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
)

// MemoryStore keeps all mutable state in process. One mutex guards every
// call; write volume in this domain does not warrant anything finer.
type MemoryStore struct {
	mu           sync.Mutex
	users        []domain.User
	progress     []domain.Progress
	userRoadmaps []domain.UserRoadmap
	gameScores   []domain.GameScore
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore returns a store preloaded with the demo users and
// their progress.
func NewSeededMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        SeedUsers(),
		progress:     SeedProgress(),
		userRoadmaps: SeedUserRoadmaps(),
	}
}

func (s *MemoryStore) findUser(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(id)
	if i == -1 {
		return nil, ErrNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(id)
	if i == -1 {
		return nil, ErrNotFound
	}

	u := &s.users[i]
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.XP != nil {
		u.XP = *patch.XP
	}
	if patch.Level != nil {
		u.Level = *patch.Level
	}
	if patch.Streak != nil {
		u.Streak = *patch.Streak
	}
	if patch.Badges != nil {
		u.Badges = *patch.Badges
	}
	if patch.EnrolledCourses != nil {
		u.EnrolledCourses = *patch.EnrolledCourses
	}

	out := *u
	return &out, nil
}

func (s *MemoryStore) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return catalog.Courses(), nil
}

func (s *MemoryStore) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	c := catalog.CourseByID(id)
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) GetProgress(ctx context.Context, userID, moduleID string) (*domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.progress {
		if s.progress[i].UserID == userID && s.progress[i].ModuleID == moduleID {
			p := s.progress[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListProgress(ctx context.Context, userID string) ([]domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Progress{}
	for _, p := range s.progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpsertProgress(ctx context.Context, userID, courseID, moduleID string, patch ProgressPatch) (*domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec *domain.Progress
	for i := range s.progress {
		if s.progress[i].UserID == userID && s.progress[i].ModuleID == moduleID {
			rec = &s.progress[i]
			break
		}
	}
	if rec == nil {
		s.progress = append(s.progress, domain.Progress{
			UserID:   userID,
			CourseID: courseID,
			ModuleID: moduleID,
		})
		rec = &s.progress[len(s.progress)-1]
	}

	applyProgressPatch(rec, patch)

	out := *rec
	return &out, nil
}

func applyProgressPatch(rec *domain.Progress, patch ProgressPatch) {
	if patch.Completed != nil {
		rec.Completed = *patch.Completed
	}
	if patch.TimeSpentSeconds != nil {
		rec.TimeSpentSeconds = *patch.TimeSpentSeconds
	}
	if patch.Score != nil {
		rec.Score = patch.Score
	}
	if patch.CompletedAt != nil {
		rec.CompletedAt = patch.CompletedAt
	}
}

func (s *MemoryStore) EnrollUser(ctx context.Context, userID, courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUser(userID)
	if i == -1 {
		return false, nil
	}
	u := &s.users[i]
	if u.IsEnrolled(courseID) {
		return false, nil
	}
	u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	return true, nil
}

func (s *MemoryStore) ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	return catalog.Roadmaps(), nil
}

func (s *MemoryStore) GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error) {
	r := catalog.RoadmapByID(id)
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) ListUserRoadmaps(ctx context.Context, userID string) ([]domain.UserRoadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.UserRoadmap{}
	for _, ur := range s.userRoadmaps {
		if ur.UserID == userID {
			out = append(out, ur)
		}
	}
	return out, nil
}

func (s *MemoryStore) FollowRoadmap(ctx context.Context, userID, roadmapID string) (*domain.UserRoadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Following twice returns the existing record untouched.
	for i := range s.userRoadmaps {
		if s.userRoadmaps[i].UserID == userID && s.userRoadmaps[i].RoadmapID == roadmapID {
			ur := s.userRoadmaps[i]
			return &ur, nil
		}
	}

	s.userRoadmaps = append(s.userRoadmaps, domain.UserRoadmap{
		UserID:         userID,
		RoadmapID:      roadmapID,
		CompletedSteps: []string{},
		FollowedAt:     time.Now().UTC(),
	})
	ur := s.userRoadmaps[len(s.userRoadmaps)-1]
	return &ur, nil
}

func (s *MemoryStore) CompleteRoadmapStep(ctx context.Context, userID, roadmapID, stepID string) (*domain.UserRoadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.userRoadmaps {
		if s.userRoadmaps[i].UserID == userID && s.userRoadmaps[i].RoadmapID == roadmapID {
			ur := &s.userRoadmaps[i]
			if !ur.HasStep(stepID) {
				ur.CompletedSteps = append(ur.CompletedSteps, stepID)
			}
			out := *ur
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) RecordGameScore(ctx context.Context, userID, gameID string, score, xpEarned int) (*domain.GameScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs := domain.GameScore{
		ID:       uuid.NewString(),
		UserID:   userID,
		GameID:   gameID,
		Score:    score,
		XPEarned: xpEarned,
		PlayedAt: time.Now().UTC(),
	}
	s.gameScores = append(s.gameScores, gs)
	return &gs, nil
}

func (s *MemoryStore) ListGameScores(ctx context.Context, userID string) ([]domain.GameScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.GameScore{}
	for _, gs := range s.gameScores {
		if gs.UserID == userID {
			out = append(out, gs)
		}
	}
	return out, nil
}
