// Package catalog holds the read-only course and roadmap fixtures. The
// content is static: nothing here is created or mutated at runtime.
package catalog

import "learnplatform/internal/domain"

var courses = []domain.Course{
	{
		ID:          "1",
		Title:       "React Fundamentals",
		Description: "Learn the basics of React development",
		Price:       0,
		Modules: []domain.Module{
			{
				ID:    "1-1",
				Type:  domain.ModuleDoc,
				Title: "Introduction to React",
				Markdown: `# Introduction to React

React is a JavaScript library for building user interfaces. It lets you compose complex UIs from small and isolated pieces of code called "components".

## Key Concepts:
- **Components**: Building blocks of React applications
- **JSX**: Syntax extension for JavaScript
- **Props**: Data passed to components
- **State**: Component's internal data

## Why React?
- Declarative
- Component-Based
- Learn Once, Write Anywhere`,
				TimeEstimateMinutes: 15,
			},
			{
				ID:                  "1-2",
				Type:                domain.ModuleVideo,
				Title:               "React Components",
				ContentURL:          "https://www.youtube.com/embed/w7ejDZ8SWv8",
				TimeEstimateMinutes: 20,
			},
			{
				ID:                  "1-2-game",
				Type:                domain.ModuleGame,
				Title:               "Component Building Game",
				TimeEstimateMinutes: 8,
				Game: &domain.Game{
					ID:   "game-1-2-component",
					Type: domain.GameMatching,
					Data: domain.GameData{
						Pairs: []domain.MatchingPair{
							{ID: "p1", Left: "function MyComponent()", Right: "Functional component syntax"},
							{ID: "p2", Left: "props.name", Right: "Accessing component properties"},
							{ID: "p3", Left: "useState()", Right: "Hook for managing state"},
							{ID: "p4", Left: "<div>Hello</div>", Right: "JSX element syntax"},
						},
					},
					MaxScore: 100,
					XPReward: 20,
				},
			},
			{
				ID:                  "1-3",
				Type:                domain.ModuleQuiz,
				Title:               "React Basics Quiz",
				TimeEstimateMinutes: 10,
				Quiz: &domain.Quiz{
					ID: "quiz-1-3",
					Questions: []domain.QuizQuestion{
						{
							ID:            "q1",
							Question:      "What is React?",
							Options:       []string{"A database", "A JavaScript library", "A CSS framework", "A web server"},
							CorrectAnswer: 1,
							TimeLimit:     30,
						},
						{
							ID:            "q2",
							Question:      "What does JSX stand for?",
							Options:       []string{"JavaScript XML", "Java Syntax Extension", "JSON Extension", "JavaScript Extension"},
							CorrectAnswer: 0,
							TimeLimit:     30,
						},
					},
					PassingScore: 70,
					XPReward:     30,
				},
			},
			{
				ID:                  "1-4",
				Type:                domain.ModuleGame,
				Title:               "React Terms Flashcards",
				TimeEstimateMinutes: 10,
				Game: &domain.Game{
					ID:   "game-1-4",
					Type: domain.GameFlashcards,
					Data: domain.GameData{
						Cards: []domain.Flashcard{
							{Front: "Component", Back: "A reusable piece of UI"},
							{Front: "Props", Back: "Data passed to components"},
							{Front: "State", Back: "Internal component data"},
							{Front: "JSX", Back: "JavaScript XML syntax"},
						},
					},
					MaxScore: 100,
					XPReward: 25,
				},
			},
		},
	},
	{
		ID:          "2",
		Title:       "JavaScript Essentials",
		Description: "Master JavaScript fundamentals",
		Price:       0,
		Modules: []domain.Module{
			{
				ID:    "2-1",
				Type:  domain.ModuleDoc,
				Title: "Variables and Data Types",
				Markdown: `# JavaScript Variables and Data Types

JavaScript is a dynamically typed language with several data types.

## Variable Declaration:
` + "```javascript\nlet name = \"John\";\nconst age = 30;\nvar city = \"New York\";\n```" + `

## Data Types:
- **String**: Text data
- **Number**: Numeric values
- **Boolean**: true/false
- **Array**: Ordered lists
- **Object**: Key-value pairs
- **null**: Intentionally empty
- **undefined**: Not defined`,
				TimeEstimateMinutes: 20,
			},
			{
				ID:                  "2-1-game",
				Type:                domain.ModuleGame,
				Title:               "JavaScript Syntax Practice",
				TimeEstimateMinutes: 7,
				Game: &domain.Game{
					ID:   "game-2-1-syntax",
					Type: domain.GameFlashcards,
					Data: domain.GameData{
						Cards: []domain.Flashcard{
							{Front: "let x = 5;", Back: "Declares a variable x with value 5"},
							{Front: "const PI = 3.14;", Back: "Declares a constant PI"},
							{Front: "typeof \"hello\"", Back: "Returns \"string\""},
							{Front: "null vs undefined", Back: "null is intentional, undefined is not set"},
						},
					},
					MaxScore: 100,
					XPReward: 15,
				},
			},
			{
				ID:                  "2-2",
				Type:                domain.ModuleQuiz,
				Title:               "JavaScript Basics Quiz",
				TimeEstimateMinutes: 15,
				Quiz: &domain.Quiz{
					ID: "quiz-2-2",
					Questions: []domain.QuizQuestion{
						{
							ID:            "q1",
							Question:      "Which keyword creates a constant variable?",
							Options:       []string{"var", "let", "const", "static"},
							CorrectAnswer: 2,
							TimeLimit:     25,
						},
						{
							ID:            "q2",
							Question:      "What type is \"Hello World\"?",
							Options:       []string{"Number", "String", "Boolean", "Object"},
							CorrectAnswer: 1,
							TimeLimit:     20,
						},
					},
					PassingScore: 70,
					XPReward:     30,
				},
			},
			{
				ID:                  "2-3",
				Type:                domain.ModuleGame,
				Title:               "JavaScript Code Challenge",
				TimeEstimateMinutes: 12,
				Game: &domain.Game{
					ID:   "game-2-3-challenge",
					Type: domain.GameMatching,
					Data: domain.GameData{
						Pairs: []domain.MatchingPair{
							{ID: "p1", Left: "array.push(item)", Right: "Adds item to end of array"},
							{ID: "p2", Left: "string.length", Right: "Gets number of characters"},
							{ID: "p3", Left: "if (condition) {}", Right: "Conditional statement"},
							{ID: "p4", Left: "for (let i = 0; i < 5; i++)", Right: "Loop structure"},
							{ID: "p5", Left: "function name() {}", Right: "Function declaration"},
						},
					},
					MaxScore: 100,
					XPReward: 25,
				},
			},
		},
	},
	{
		ID:          "3",
		Title:       "CSS Styling",
		Description: "Learn modern CSS techniques",
		Price:       0,
		Modules: []domain.Module{
			{
				ID:    "3-1",
				Type:  domain.ModuleDoc,
				Title: "CSS Grid and Flexbox",
				Markdown: `# CSS Grid and Flexbox

Modern CSS layout techniques for creating responsive designs.

## Flexbox:
Perfect for one-dimensional layouts (rows or columns).

` + "```css\n.container {\n  display: flex;\n  justify-content: space-between;\n  align-items: center;\n}\n```" + `

## CSS Grid:
Ideal for two-dimensional layouts.

` + "```css\n.grid {\n  display: grid;\n  grid-template-columns: repeat(3, 1fr);\n  gap: 20px;\n}\n```",
				TimeEstimateMinutes: 25,
			},
			{
				ID:                  "3-1-game",
				Type:                domain.ModuleGame,
				Title:               "CSS Layout Flashcards",
				TimeEstimateMinutes: 6,
				Game: &domain.Game{
					ID:   "game-3-1-layout",
					Type: domain.GameFlashcards,
					Data: domain.GameData{
						Cards: []domain.Flashcard{
							{Front: "display: flex", Back: "Creates flexible container"},
							{Front: "display: grid", Back: "Creates grid container"},
							{Front: "justify-content: center", Back: "Centers items horizontally"},
							{Front: "align-items: center", Back: "Centers items vertically"},
						},
					},
					MaxScore: 100,
					XPReward: 15,
				},
			},
			{
				ID:                  "3-2",
				Type:                domain.ModuleGame,
				Title:               "CSS Property Matching",
				TimeEstimateMinutes: 10,
				Game: &domain.Game{
					ID:   "game-3-2",
					Type: domain.GameMatching,
					Data: domain.GameData{
						Pairs: []domain.MatchingPair{
							{ID: "p1", Left: "display: flex", Right: "Creates flexible container"},
							{ID: "p2", Left: "grid-gap", Right: "Space between grid items"},
							{ID: "p3", Left: "justify-content", Right: "Align items horizontally"},
							{ID: "p4", Left: "align-items", Right: "Align items vertically"},
						},
					},
					MaxScore: 100,
					XPReward: 20,
				},
			},
		},
	},
}

// Courses returns the full course catalog.
func Courses() []domain.Course {
	return courses
}

// CourseByID returns the course with the given id, or nil.
func CourseByID(id string) *domain.Course {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}
