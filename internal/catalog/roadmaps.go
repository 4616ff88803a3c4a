package catalog

import "learnplatform/internal/domain"

var roadmaps = []domain.Roadmap{
	{
		ID:          "1",
		Title:       "Frontend Developer",
		Description: "Complete path to becoming a frontend developer",
		Steps: []domain.RoadmapStep{
			{
				ID:                  "step-1",
				Title:               "Learn HTML & CSS",
				Description:         "Master the building blocks of web development",
				RecommendedCourseID: "3",
				XPReward:            50,
			},
			{
				ID:                  "step-2",
				Title:               "JavaScript Fundamentals",
				Description:         "Learn JavaScript programming basics",
				RecommendedCourseID: "2",
				XPReward:            75,
			},
			{
				ID:                  "step-3",
				Title:               "React Development",
				Description:         "Build modern web applications with React",
				RecommendedCourseID: "1",
				XPReward:            100,
			},
			{
				ID:          "step-4",
				Title:       "Build Portfolio Project",
				Description: "Create a full-stack web application",
				XPReward:    150,
			},
		},
	},
	{
		ID:          "2",
		Title:       "DevOps Engineer",
		Description: "Path to DevOps mastery",
		Steps: []domain.RoadmapStep{
			{
				ID:          "step-1",
				Title:       "Linux Fundamentals",
				Description: "Master Linux command line and system administration",
				XPReward:    75,
			},
			{
				ID:          "step-2",
				Title:       "Docker & Containers",
				Description: "Learn containerization technologies",
				XPReward:    100,
			},
			{
				ID:          "step-3",
				Title:       "CI/CD Pipelines",
				Description: "Implement automated deployment workflows",
				XPReward:    125,
			},
			{
				ID:          "step-4",
				Title:       "Cloud Platforms",
				Description: "Deploy and manage cloud infrastructure",
				XPReward:    150,
			},
		},
	},
	{
		ID:          "3",
		Title:       "Data Scientist",
		Description: "Journey into data science and machine learning",
		Steps: []domain.RoadmapStep{
			{
				ID:          "step-1",
				Title:       "Python Programming",
				Description: "Learn Python for data analysis",
				XPReward:    75,
			},
			{
				ID:          "step-2",
				Title:       "Statistics & Mathematics",
				Description: "Build strong statistical foundation",
				XPReward:    100,
			},
			{
				ID:          "step-3",
				Title:       "Machine Learning",
				Description: "Implement ML algorithms and models",
				XPReward:    150,
			},
			{
				ID:          "step-4",
				Title:       "Data Visualization",
				Description: "Create compelling data visualizations",
				XPReward:    125,
			},
		},
	},
}

// Roadmaps returns the full roadmap catalog.
func Roadmaps() []domain.Roadmap {
	return roadmaps
}

// RoadmapByID returns the roadmap with the given id, or nil.
func RoadmapByID(id string) *domain.Roadmap {
	for i := range roadmaps {
		if roadmaps[i].ID == id {
			return &roadmaps[i]
		}
	}
	return nil
}
