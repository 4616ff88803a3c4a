package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnplatform/internal/gamification"
	"learnplatform/internal/infrastructure/store"
	"learnplatform/internal/logger"
	"learnplatform/internal/security"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewSeededMemoryStore()
	engine := gamification.NewEngine(s)
	log, err := logger.New("dev")
	require.NoError(t, err)
	hasher := security.NewPasswordHasher()

	return NewRouter(
		NewUserHandler(s, hasher, log),
		NewCourseHandler(s, engine, log),
		NewProgressHandler(s, engine, log),
		NewQuizHandler(s, engine, log),
		NewGameHandler(s, engine, log),
		NewRoadmapHandler(s, engine, log),
		nil, // no redis in tests, limiting disabled
		"",
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// completeModules walks the given modules in order through the progress
// endpoint so later modules unlock.
func completeModules(t *testing.T, r *gin.Engine, userID, courseID string, moduleIDs ...string) {
	t.Helper()
	for _, id := range moduleIDs {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/progress/"+id, gin.H{
			"userId":    userID,
			"courseId":  courseID,
			"completed": true,
		})
		require.Equal(t, http.StatusOK, w.Code, "completing module %s", id)
	}
}

func TestListCourses(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/courses", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var courses []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	assert.Len(t, courses, 3)
}

func TestGetCourse(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/courses/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "React Fundamentals", decode(t, w)["title"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/courses/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnroll(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/enroll", gin.H{"userId": "2", "courseId": "2"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["gamification"])

	// Duplicate enrollment is rejected without erroring the state.
	w = doJSON(t, r, http.MethodPost, "/api/v1/enroll", gin.H{"userId": "2", "courseId": "2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/enroll", gin.H{"userId": "2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/enroll", gin.H{"userId": "ghost", "courseId": "2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizSubmitFail(t *testing.T) {
	r := newTestRouter(t)
	completeModules(t, r, "2", "1", "1-1", "1-2", "1-2-game")

	// Correct answers for quiz 1-3 are [1, 0]; one of two right is 50%,
	// below the passing score of 70.
	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId":    "2",
		"courseId":  "1",
		"moduleId":  "1-3",
		"answers":   []int{1, 1},
		"timeSpent": 55,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(50), body["score"])
	assert.Equal(t, false, body["passed"])
	assert.Equal(t, float64(1), body["correct"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(70), body["passingScore"])

	results := body["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, true, first["isCorrect"])

	progress := body["progress"].(map[string]any)
	assert.Equal(t, false, progress["completed"])
	assert.Equal(t, float64(50), progress["score"])

	gam := body["gamification"].(map[string]any)
	xpGain := gam["xpGain"].(map[string]any)
	assert.Equal(t, float64(5), xpGain["amount"], "failed quiz earns reward/6")
}

func TestQuizSubmitPass(t *testing.T) {
	r := newTestRouter(t)
	completeModules(t, r, "2", "1", "1-1", "1-2", "1-2-game")

	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId":    "2",
		"courseId":  "1",
		"moduleId":  "1-3",
		"answers":   []int{1, 0},
		"timeSpent": 40,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(100), body["score"])
	assert.Equal(t, true, body["passed"])

	progress := body["progress"].(map[string]any)
	assert.Equal(t, true, progress["completed"])
	assert.NotNil(t, progress["completedAt"])

	gam := body["gamification"].(map[string]any)
	xpGain := gam["xpGain"].(map[string]any)
	assert.Equal(t, float64(30), xpGain["amount"])
}

func TestQuizSubmitLockedModule(t *testing.T) {
	r := newTestRouter(t)

	// Module 1-3 needs 1-2-game completed first; submitting its quiz
	// directly must hit the same gate as the progress endpoint.
	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId":   "2",
		"courseId": "1",
		"moduleId": "1-3",
		"answers":  []int{1, 0},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The rejected attempt must leave no progress record behind.
	w = doJSON(t, r, http.MethodGet, "/api/v1/user/progress?userId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records, _ := decode(t, w)["progress"].([]any)
	for _, p := range records {
		assert.NotEqual(t, "1-3", p.(map[string]any)["moduleId"])
	}
}

func TestQuizNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId":   "2",
		"courseId": "1",
		"moduleId": "1-1",
		"answers":  []int{0},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameScoreScaling(t *testing.T) {
	r := newTestRouter(t)

	// Module 1-4: maxScore 100, xpReward 25. Half score rounds to 13.
	w := doJSON(t, r, http.MethodPost, "/api/v1/games/score", gin.H{
		"userId":   "2",
		"gameId":   "game-1-4",
		"score":    50,
		"courseId": "1",
		"moduleId": "1-4",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(13), body["xpEarned"])
	assert.Equal(t, float64(50), body["scorePercentage"])

	// Scores above max are capped, never amplified.
	w = doJSON(t, r, http.MethodPost, "/api/v1/games/score", gin.H{
		"userId":   "2",
		"gameId":   "game-1-4",
		"score":    150,
		"courseId": "1",
		"moduleId": "1-4",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(25), body["xpEarned"])
	assert.Equal(t, float64(100), body["scorePercentage"])

	gameScore := body["gameScore"].(map[string]any)
	assert.Equal(t, float64(150), gameScore["score"])
}

func TestGameScoreDefaults(t *testing.T) {
	r := newTestRouter(t)

	// Without a module reference the defaults (max 100, base 25) apply.
	w := doJSON(t, r, http.MethodPost, "/api/v1/games/score", gin.H{
		"userId": "2",
		"gameId": "standalone-game",
		"score":  100,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(25), decode(t, w)["xpEarned"])
}

func TestGameXP(t *testing.T) {
	xp, frac := gameXP(50, 100, 25)
	assert.Equal(t, 13, xp)
	assert.InDelta(t, 0.5, frac, 1e-9)

	xp, frac = gameXP(150, 100, 25)
	assert.Equal(t, 25, xp)
	assert.InDelta(t, 1.0, frac, 1e-9)

	// A zero or negative maximum pays nothing instead of dividing by zero.
	xp, frac = gameXP(50, 0, 25)
	assert.Equal(t, 0, xp)
	assert.Equal(t, 0.0, frac)

	xp, _ = gameXP(50, -10, 25)
	assert.Equal(t, 0, xp)
}

func TestGameScoreMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/games/score", gin.H{
		"userId": "2",
		"gameId": "game-1-4",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgressUpdate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/progress/1-1", gin.H{
		"userId":           "2",
		"courseId":         "1",
		"timeSpentSeconds": 120,
		"completed":        true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	progress := body["progress"].(map[string]any)
	assert.Equal(t, true, progress["completed"])
	assert.Equal(t, float64(120), progress["timeSpentSeconds"])

	gam := body["gamification"].(map[string]any)
	xpGain := gam["xpGain"].(map[string]any)
	assert.Equal(t, float64(10), xpGain["amount"], "doc module pays the doc-read reward")

	// Completing the same module again earns nothing more.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/progress/1-1", gin.H{
		"userId":    "2",
		"courseId":  "1",
		"completed": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["gamification"])
}

func TestProgressLockedModule(t *testing.T) {
	r := newTestRouter(t)

	// Module 1-3 needs 1-2-game completed first; user 2 has nothing.
	w := doJSON(t, r, http.MethodPatch, "/api/v1/progress/1-3", gin.H{
		"userId":    "2",
		"courseId":  "1",
		"completed": true,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProgressInvalidInput(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/progress/1-1", gin.H{"userId": "2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/progress/1-1", gin.H{
		"userId":   "2",
		"courseId": "999",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserProgressSummary(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/user/progress?userId=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, float64(150), user["xp"])
	assert.Equal(t, float64(2), user["level"])
	_, leaked := user["passwordHash"]
	assert.False(t, leaked, "password hash must never be exposed")

	progress := body["progress"].([]any)
	assert.Len(t, progress, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/user/progress?userId=ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/user/progress", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoadmapList(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/roadmaps?userId=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 3)

	assert.Equal(t, true, views[0]["isFollowed"])
	assert.Equal(t, []any{"step-1"}, views[0]["completedSteps"])
	assert.Equal(t, false, views[1]["isFollowed"])
}

func TestRoadmapFollowAndMilestone(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/roadmaps/follow", gin.H{
		"userId":    "2",
		"roadmapId": "2",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = doJSON(t, r, http.MethodPatch, "/api/v1/roadmaps/complete-milestone", gin.H{
		"userId":    "2",
		"roadmapId": "2",
		"stepId":    "step-1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(75), body["xpEarned"], "step XP comes from the roadmap definition")
	ur := body["userRoadmap"].(map[string]any)
	assert.Equal(t, []any{"step-1"}, ur["completedSteps"])

	// Milestones on a roadmap the user never followed are not found.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/roadmaps/complete-milestone", gin.H{
		"userId":    "2",
		"roadmapId": "3",
		"stepId":    "step-1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegister(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"name":     "New Learner",
		"email":    "new@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, float64(1), body["level"])
	assert.Equal(t, float64(0), body["xp"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Dup",
		"email":    "user1@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
