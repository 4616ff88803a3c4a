package domain

import "time"

// Progress is keyed by (UserID, ModuleID). Records are created on first
// update and merged in place afterwards, never replaced.
type Progress struct {
	UserID           string     `gorm:"primaryKey" json:"userId"`
	ModuleID         string     `gorm:"primaryKey" json:"moduleId"`
	CourseID         string     `gorm:"index" json:"courseId"`
	Completed        bool       `json:"completed"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	Score            *int       `json:"score,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// GameScore is an append-only log entry.
type GameScore struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	UserID   string    `gorm:"index" json:"userId"`
	GameID   string    `json:"gameId"`
	Score    int       `json:"score"`
	XPEarned int       `json:"xpEarned"`
	PlayedAt time.Time `json:"playedAt"`
}
