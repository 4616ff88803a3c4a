package gamification

import "learnplatform/internal/domain"

// BadgeDefinition pairs a badge with the predicate that unlocks it.
// Predicates read only the user snapshot so they stay independently
// testable. Evaluation order is the order of this list; several badges
// may unlock in a single event.
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Condition   func(*domain.User) bool
}

var badgeDefinitions = []BadgeDefinition{
	{
		ID:          "first-course",
		Name:        "First Steps",
		Description: "Enrolled in your first course",
		Icon:        "🎓",
		Condition: func(u *domain.User) bool {
			return len(u.EnrolledCourses) >= 1
		},
	},
	{
		ID:          "7-day-streak",
		Name:        "Week Warrior",
		Description: "Maintained a 7-day learning streak",
		Icon:        "🔥",
		Condition: func(u *domain.User) bool {
			return u.Streak.CurrentStreak >= 7
		},
	},
	{
		ID:          "500-xp",
		Name:        "Rising Star",
		Description: "Earned 500 XP points",
		Icon:        "⭐",
		Condition: func(u *domain.User) bool {
			return u.XP >= 500
		},
	},
	{
		ID:          "quiz-master",
		Name:        "Quiz Master",
		Description: "Passed 10 quizzes",
		// TODO: unlock off a real quiz-pass count once progress records
		// are aggregated; the XP threshold is a stand-in.
		Icon: "🧠",
		Condition: func(u *domain.User) bool {
			return u.XP >= 300
		},
	},
	{
		ID:          "game-player",
		Name:        "Game Player",
		Description: "Played your first game",
		Icon:        "🎮",
		Condition: func(u *domain.User) bool {
			return u.XP >= 50
		},
	},
	{
		ID:          "roadmap-explorer",
		Name:        "Roadmap Explorer",
		Description: "Completed a roadmap milestone",
		Icon:        "🗺️",
		Condition: func(u *domain.User) bool {
			return u.XP >= 100
		},
	},
}

// BadgeDefinitions returns the fixed definition list.
func BadgeDefinitions() []BadgeDefinition {
	return badgeDefinitions
}
