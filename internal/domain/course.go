package domain

type ModuleType string

const (
	ModuleDoc   ModuleType = "doc"
	ModuleVideo ModuleType = "video"
	ModuleQuiz  ModuleType = "quiz"
	ModuleGame  ModuleType = "game"
)

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Modules     []Module `json:"modules"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// Modules are ordered; a module is unlocked only when its predecessor
// is completed.
type Module struct {
	ID                  string     `json:"id"`
	Type                ModuleType `json:"type"`
	Title               string     `json:"title"`
	ContentURL          string     `json:"contentUrl,omitempty"`
	Markdown            string     `json:"markdown,omitempty"`
	TimeEstimateMinutes int        `json:"timeEstimateMinutes"`
	Quiz                *Quiz      `json:"quiz,omitempty"`
	Game                *Game      `json:"game,omitempty"`
}

type Quiz struct {
	ID           string         `json:"id"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passingScore"` // percentage
	XPReward     int            `json:"xpReward"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"` // seconds
}

type GameType string

const (
	GameFlashcards GameType = "flashcards"
	GameMatching   GameType = "matching"
)

type Game struct {
	ID       string   `json:"id"`
	Type     GameType `json:"type"`
	Data     GameData `json:"data"`
	MaxScore int      `json:"maxScore"`
	XPReward int      `json:"xpReward"`
}

// GameData holds the payload for whichever game type is set.
type GameData struct {
	Cards []Flashcard    `json:"cards,omitempty"`
	Pairs []MatchingPair `json:"pairs,omitempty"`
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type MatchingPair struct {
	ID    string `json:"id"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// FindModule returns the module with the given id, or nil.
func (c *Course) FindModule(moduleID string) *Module {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i]
		}
	}
	return nil
}
