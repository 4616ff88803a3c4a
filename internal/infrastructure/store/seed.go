package store

import (
	"time"

	"learnplatform/internal/domain"
)

// Demo password is "password".
const seedPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func dayString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SeedUsers returns the demo accounts.
func SeedUsers() []domain.User {
	now := time.Now().UTC()
	return []domain.User{
		{
			ID:           "1",
			Name:         "John Doe",
			Email:        "user1@example.com",
			PasswordHash: seedPasswordHash,
			XP:           150,
			Level:        2,
			Streak: domain.Streak{
				CurrentStreak:  3,
				LastActiveDate: dayString(now),
				StreakHistory: []string{
					dayString(now.AddDate(0, 0, -2)),
					dayString(now.AddDate(0, 0, -1)),
					dayString(now),
				},
			},
			Badges: []domain.Badge{
				{
					ID:          "first-course",
					Name:        "First Steps",
					Description: "Enrolled in your first course",
					Icon:        "🎓",
					UnlockedAt:  now,
				},
			},
			EnrolledCourses: []string{"1"},
			CreatedAt:       now,
		},
		{
			ID:              "2",
			Name:            "Jane Smith",
			Email:           "user2@example.com",
			PasswordHash:    seedPasswordHash,
			XP:              0,
			Level:           1,
			Streak:          domain.Streak{StreakHistory: []string{}},
			Badges:          []domain.Badge{},
			EnrolledCourses: []string{},
			CreatedAt:       now,
		},
	}
}

// SeedProgress returns John's partial run through course 1.
func SeedProgress() []domain.Progress {
	now := time.Now().UTC()
	return []domain.Progress{
		{
			UserID:           "1",
			CourseID:         "1",
			ModuleID:         "1-1",
			Completed:        true,
			TimeSpentSeconds: 600,
			CompletedAt:      &now,
		},
		{
			UserID:           "1",
			CourseID:         "1",
			ModuleID:         "1-2",
			Completed:        false,
			TimeSpentSeconds: 300,
		},
	}
}

// SeedUserRoadmaps returns John's followed roadmap.
func SeedUserRoadmaps() []domain.UserRoadmap {
	return []domain.UserRoadmap{
		{
			UserID:         "1",
			RoadmapID:      "1",
			CompletedSteps: []string{"step-1"},
			FollowedAt:     time.Now().UTC(),
		},
	}
}
