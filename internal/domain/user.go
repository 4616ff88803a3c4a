package domain

import "time"

// Streak is replaced wholesale on update, never field-merged.
type Streak struct {
	CurrentStreak  int      `json:"currentStreak"`
	LastActiveDate string   `json:"lastActiveDate"` // "YYYY-MM-DD" (UTC), empty until first activity
	StreakHistory  []string `json:"streakHistory"`
}

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`

	XP    int `gorm:"default:0" json:"xp"`
	Level int `gorm:"default:1" json:"level"`

	Streak          Streak   `gorm:"serializer:json" json:"streak"`
	Badges          []Badge  `gorm:"serializer:json" json:"badges"`
	EnrolledCourses []string `gorm:"serializer:json" json:"enrolledCourses"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasBadge reports whether the badge id is already unlocked.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// IsEnrolled reports whether the user is enrolled in the course.
func (u *User) IsEnrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
