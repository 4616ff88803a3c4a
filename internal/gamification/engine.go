// Package gamification computes experience, levels, streaks and badge
// unlocks on top of the store's user-mutation primitive.
package gamification

import (
	"context"
	"errors"
	"time"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/store"
)

const XPPerLevel = 100

type Activity string

const (
	ActivityDocRead         Activity = "DOC_READ"
	ActivityVideoWatched    Activity = "VIDEO_WATCHED"
	ActivityQuizPassed      Activity = "QUIZ_PASSED"
	ActivityQuizFailed      Activity = "QUIZ_FAILED"
	ActivityGameCompleted   Activity = "GAME_COMPLETED"
	ActivityModuleCompleted Activity = "MODULE_COMPLETED"
	ActivityCourseCompleted Activity = "COURSE_COMPLETED"
	ActivityRoadmapStep     Activity = "ROADMAP_STEP_COMPLETED"
	ActivityDailyLogin      Activity = "DAILY_LOGIN"
)

var xpRewards = map[Activity]int{
	ActivityDocRead:         10,
	ActivityVideoWatched:    20,
	ActivityQuizPassed:      30,
	ActivityQuizFailed:      5,
	ActivityGameCompleted:   25,
	ActivityModuleCompleted: 15,
	ActivityCourseCompleted: 100,
	ActivityRoadmapStep:     50,
	ActivityDailyLogin:      5,
}

var activityReasons = map[Activity]string{
	ActivityDocRead:         "Reading documentation",
	ActivityVideoWatched:    "Watching video",
	ActivityQuizPassed:      "Passing quiz",
	ActivityQuizFailed:      "Attempting quiz",
	ActivityGameCompleted:   "Completing game",
	ActivityModuleCompleted: "Completing module",
	ActivityCourseCompleted: "Completing course",
	ActivityRoadmapStep:     "Roadmap milestone",
	ActivityDailyLogin:      "Daily activity",
}

// ActivityForModule maps a module kind to the activity credited when the
// module is completed.
func ActivityForModule(t domain.ModuleType) Activity {
	switch t {
	case domain.ModuleDoc:
		return ActivityDocRead
	case domain.ModuleVideo:
		return ActivityVideoWatched
	case domain.ModuleQuiz:
		return ActivityQuizPassed
	case domain.ModuleGame:
		return ActivityGameCompleted
	default:
		return ActivityModuleCompleted
	}
}

type XPGain struct {
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type LevelUp struct {
	OldLevel int `json:"oldLevel"`
	NewLevel int `json:"newLevel"`
}

type StreakUpdate struct {
	OldStreak int `json:"oldStreak"`
	NewStreak int `json:"newStreak"`
}

type BadgeReward struct {
	Badge domain.Badge `json:"badge"`
	IsNew bool         `json:"isNew"`
}

type Result struct {
	XPGain       XPGain        `json:"xpGain"`
	LevelUp      *LevelUp      `json:"levelUp,omitempty"`
	StreakUpdate *StreakUpdate `json:"streakUpdate,omitempty"`
	Badges       []BadgeReward `json:"badges"`
}

// LevelForXP maps total experience to a level, starting at 1.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much experience is missing until the next
// level. At an exact level boundary it returns a full level band.
func XPToNextLevel(xp int) int {
	return LevelForXP(xp)*XPPerLevel - xp
}

// ProgressToNextLevel returns the percentage of the current level band
// already earned.
func ProgressToNextLevel(xp int) int {
	return (xp - (LevelForXP(xp)-1)*XPPerLevel) * 100 / XPPerLevel
}

type Engine struct {
	store store.Store
	now   func() time.Time
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// AwardXP credits the user for an activity, recomputes the level, and
// evaluates badge unlocks against the updated record. customAmount <= 0
// selects the fixed per-activity reward. A nil result (with nil error)
// means the user is unknown; callers treat that as "no reward".
//
// Not safe to blindly retry: every call adds experience.
func (e *Engine) AwardXP(ctx context.Context, userID string, activity Activity, customAmount int) (*Result, error) {
	user, err := e.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	amount := customAmount
	if amount <= 0 {
		amount = xpRewards[activity]
	}

	oldLevel := LevelForXP(user.XP)
	newXP := user.XP + amount
	newLevel := LevelForXP(newXP)

	updated, err := e.store.UpdateUser(ctx, userID, store.UserPatch{
		XP:    &newXP,
		Level: &newLevel,
	})
	if err != nil {
		return nil, err
	}

	badges, err := e.checkAndAwardBadges(ctx, updated)
	if err != nil {
		return nil, err
	}

	result := &Result{
		XPGain: XPGain{
			Amount:    amount,
			Reason:    activityReasons[activity],
			Timestamp: e.now().UTC(),
		},
		Badges: badges,
	}
	if newLevel > oldLevel {
		result.LevelUp = &LevelUp{OldLevel: oldLevel, NewLevel: newLevel}
	}
	return result, nil
}

// UpdateStreak advances the daily streak state machine and credits the
// daily-login experience. Calling it twice on the same calendar day is a
// no-op: the second call returns nil without touching the record.
func (e *Engine) UpdateStreak(ctx context.Context, userID string) (*Result, error) {
	user, err := e.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := e.now().UTC()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	if user.Streak.LastActiveDate == today {
		return nil, nil
	}

	oldStreak := user.Streak.CurrentStreak
	var newStreak int
	var history []string
	if user.Streak.LastActiveDate == yesterday {
		newStreak = oldStreak + 1
		history = append(append([]string{}, user.Streak.StreakHistory...), today)
	} else {
		// First activity ever, or a gap of at least one full missed
		// day: the streak restarts and the history is reseeded.
		newStreak = 1
		history = []string{today}
	}

	streak := domain.Streak{
		CurrentStreak:  newStreak,
		LastActiveDate: today,
		StreakHistory:  history,
	}
	if _, err := e.store.UpdateUser(ctx, userID, store.UserPatch{Streak: &streak}); err != nil {
		return nil, err
	}

	result, err := e.AwardXP(ctx, userID, ActivityDailyLogin, 0)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	result.XPGain.Reason = "Daily login streak"
	result.StreakUpdate = &StreakUpdate{OldStreak: oldStreak, NewStreak: newStreak}
	return result, nil
}

func (e *Engine) checkAndAwardBadges(ctx context.Context, user *domain.User) ([]BadgeReward, error) {
	rewards := []BadgeReward{}
	for _, def := range badgeDefinitions {
		if user.HasBadge(def.ID) || !def.Condition(user) {
			continue
		}
		badge := domain.Badge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			UnlockedAt:  e.now().UTC(),
		}
		user.Badges = append(user.Badges, badge)
		rewards = append(rewards, BadgeReward{Badge: badge, IsNew: true})
	}

	if len(rewards) > 0 {
		if _, err := e.store.UpdateUser(ctx, user.ID, store.UserPatch{Badges: &user.Badges}); err != nil {
			return nil, err
		}
	}
	return rewards, nil
}
