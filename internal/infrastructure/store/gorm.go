package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnplatform/internal/catalog"
	"learnplatform/internal/domain"
)

// GormStore persists mutable state in a relational database. The course
// and roadmap catalogs stay fixture-backed; only user, progress, roadmap
// follow and game score records hit the database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the tables for the mutable record types.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&domain.User{},
		&domain.Progress{},
		&domain.UserRoadmap{},
		&domain.GameScore{},
	)
}

// SeedIfEmpty loads the demo accounts on a fresh database.
func (s *GormStore) SeedIfEmpty() error {
	var count int64
	if err := s.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	users := SeedUsers()
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}
	progress := SeedProgress()
	if err := s.db.Create(&progress).Error; err != nil {
		return err
	}
	userRoadmaps := SeedUserRoadmaps()
	return s.db.Create(&userRoadmaps).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) UpdateUser(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	// Read-modify-save keeps the shallow merge identical to the memory
	// store: a patched Streak replaces the stored one wholesale.
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.XP != nil {
		user.XP = *patch.XP
	}
	if patch.Level != nil {
		user.Level = *patch.Level
	}
	if patch.Streak != nil {
		user.Streak = *patch.Streak
	}
	if patch.Badges != nil {
		user.Badges = *patch.Badges
	}
	if patch.EnrolledCourses != nil {
		user.EnrolledCourses = *patch.EnrolledCourses
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return catalog.Courses(), nil
}

func (s *GormStore) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	c := catalog.CourseByID(id)
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *GormStore) GetProgress(ctx context.Context, userID, moduleID string) (*domain.Progress, error) {
	var p domain.Progress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) ListProgress(ctx context.Context, userID string) ([]domain.Progress, error) {
	progress := []domain.Progress{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&progress).Error
	return progress, err
}

func (s *GormStore) UpsertProgress(ctx context.Context, userID, courseID, moduleID string, patch ProgressPatch) (*domain.Progress, error) {
	var p domain.Progress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = domain.Progress{UserID: userID, CourseID: courseID, ModuleID: moduleID}
		err = nil
	}
	if err != nil {
		return nil, err
	}

	applyProgressPatch(&p, patch)

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) EnrollUser(ctx context.Context, userID, courseID string) (bool, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if user.IsEnrolled(courseID) {
		return false, nil
	}
	user.EnrolledCourses = append(user.EnrolledCourses, courseID)
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	return catalog.Roadmaps(), nil
}

func (s *GormStore) GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error) {
	r := catalog.RoadmapByID(id)
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *GormStore) ListUserRoadmaps(ctx context.Context, userID string) ([]domain.UserRoadmap, error) {
	userRoadmaps := []domain.UserRoadmap{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&userRoadmaps).Error
	return userRoadmaps, err
}

func (s *GormStore) FollowRoadmap(ctx context.Context, userID, roadmapID string) (*domain.UserRoadmap, error) {
	// FirstOrCreate keeps the double-follow idempotent.
	ur := domain.UserRoadmap{UserID: userID, RoadmapID: roadmapID}
	err := s.db.WithContext(ctx).
		Where(domain.UserRoadmap{UserID: userID, RoadmapID: roadmapID}).
		Attrs(domain.UserRoadmap{
			CompletedSteps: []string{},
			FollowedAt:     time.Now().UTC(),
		}).
		FirstOrCreate(&ur).Error
	if err != nil {
		return nil, err
	}
	return &ur, nil
}

func (s *GormStore) CompleteRoadmapStep(ctx context.Context, userID, roadmapID, stepID string) (*domain.UserRoadmap, error) {
	var ur domain.UserRoadmap
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).
		First(&ur).Error
	if err != nil {
		return nil, translate(err)
	}

	if !ur.HasStep(stepID) {
		ur.CompletedSteps = append(ur.CompletedSteps, stepID)
		if err := s.db.WithContext(ctx).Save(&ur).Error; err != nil {
			return nil, err
		}
	}
	return &ur, nil
}

func (s *GormStore) RecordGameScore(ctx context.Context, userID, gameID string, score, xpEarned int) (*domain.GameScore, error) {
	gs := domain.GameScore{
		ID:       uuid.NewString(),
		UserID:   userID,
		GameID:   gameID,
		Score:    score,
		XPEarned: xpEarned,
		PlayedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&gs).Error; err != nil {
		return nil, err
	}
	return &gs, nil
}

func (s *GormStore) ListGameScores(ctx context.Context, userID string) ([]domain.GameScore, error) {
	scores := []domain.GameScore{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("played_at desc").
		Find(&scores).Error
	return scores, err
}
