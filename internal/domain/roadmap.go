package domain

import "time"

type Roadmap struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []RoadmapStep `json:"steps"`
}

type RoadmapStep struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	RecommendedCourseID string `json:"recommendedCourseId,omitempty"`
	XPReward            int    `json:"xpReward"`
}

type UserRoadmap struct {
	UserID         string    `gorm:"primaryKey" json:"userId"`
	RoadmapID      string    `gorm:"primaryKey" json:"roadmapId"`
	CompletedSteps []string  `gorm:"serializer:json" json:"completedSteps"`
	FollowedAt     time.Time `json:"followedAt"`
}

// HasStep reports whether the step is already in the completed set.
func (ur *UserRoadmap) HasStep(stepID string) bool {
	for _, id := range ur.CompletedSteps {
		if id == stepID {
			return true
		}
	}
	return false
}

// FindStep returns the step with the given id, or nil.
func (r *Roadmap) FindStep(stepID string) *RoadmapStep {
	for i := range r.Steps {
		if r.Steps[i].ID == stepID {
			return &r.Steps[i]
		}
	}
	return nil
}
