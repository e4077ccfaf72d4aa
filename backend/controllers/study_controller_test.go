package controllers_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStudySessionCountersAndCompletion(t *testing.T) {
	app, _ := setupApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	resp, started := doJSON(t, app, "POST", "/api/study/start", cookie, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	studyID := pathID(started, "session_id")

	doJSON(t, app, "POST", "/api/study/"+studyID+"/pomodoro", cookie, nil)
	doJSON(t, app, "POST", "/api/study/"+studyID+"/pomodoro", cookie, nil)
	resp, result := doJSON(t, app, "POST", "/api/study/"+studyID+"/distraction", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, result["distraction_count"])

	resp, completed := doJSON(t, app, "POST", "/api/study/"+studyID+"/complete", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, completed["pomodoro_count"])
	assert.EqualValues(t, 1, completed["distraction_count"])
}

func TestCompletingStudyStartsStreak(t *testing.T) {
	app, _ := setupApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	// No streak row yet.
	resp, streak := doJSON(t, app, "GET", "/api/study/streak", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, streak["current_streak"])
	assert.EqualValues(t, 0, streak["longest_streak"])
	assert.Nil(t, streak["last_study_date"])

	_, started := doJSON(t, app, "POST", "/api/study/start", cookie, nil)
	doJSON(t, app, "POST", "/api/study/"+pathID(started, "session_id")+"/complete", cookie, nil)

	resp, streak = doJSON(t, app, "GET", "/api/study/streak", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, streak["current_streak"])
	assert.EqualValues(t, 1, streak["longest_streak"])
	assert.NotNil(t, streak["last_study_date"])

	// A second completion the same day does not double-count.
	_, started = doJSON(t, app, "POST", "/api/study/start", cookie, nil)
	doJSON(t, app, "POST", "/api/study/"+pathID(started, "session_id")+"/complete", cookie, nil)

	_, streak = doJSON(t, app, "GET", "/api/study/streak", cookie, nil)
	assert.EqualValues(t, 1, streak["current_streak"])
	assert.EqualValues(t, 1, streak["longest_streak"])
}

func TestStudyTaskLifecycle(t *testing.T) {
	app, _ := setupApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	resp, created := doJSON(t, app, "POST", "/api/study/task", cookie, map[string]interface{}{
		"task_name":      "Read chapter 4",
		"estimated_time": 45,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	task := created["task"].(map[string]interface{})
	taskID := pathID(task, "id")
	assert.Equal(t, false, task["completed"])

	resp, updated := doJSON(t, app, "PUT", "/api/study/task/"+taskID, cookie, map[string]interface{}{
		"completed":   true,
		"actual_time": 50,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	task = updated["task"].(map[string]interface{})
	assert.Equal(t, true, task["completed"])
	assert.NotNil(t, task["completed_at"])
	assert.EqualValues(t, 50, task["actual_time"])

	resp, listed := doJSON(t, app, "GET", "/api/study/tasks", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, listed["completed"].([]interface{}), 1)
	assert.Len(t, listed["pending"].([]interface{}), 0)

	// Unchecking clears the completion timestamp.
	_, updated = doJSON(t, app, "PUT", "/api/study/task/"+taskID, cookie, map[string]interface{}{
		"completed": false,
	})
	task = updated["task"].(map[string]interface{})
	assert.Nil(t, task["completed_at"])

	resp, _ = doJSON(t, app, "DELETE", "/api/study/task/"+taskID, cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/study/task/"+taskID, cookie, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudyTaskValidation(t *testing.T) {
	app, _ := setupApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	resp, _ := doJSON(t, app, "POST", "/api/study/task", cookie, map[string]interface{}{
		"task_name": "missing estimate",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, result := doJSON(t, app, "POST", "/api/study/task", cookie, map[string]interface{}{
		"task_name":      strings.Repeat("x", 201),
		"estimated_time": 10,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Task name must be 200 characters or less", result["error"])

	// The cap counts characters, not bytes: 200 two-byte runes are fine.
	resp, _ = doJSON(t, app, "POST", "/api/study/task", cookie, map[string]interface{}{
		"task_name":      strings.Repeat("é", 200),
		"estimated_time": 10,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/study/task", cookie, map[string]interface{}{
		"task_name":      strings.Repeat("é", 201),
		"estimated_time": 10,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStudyTaskOwnership(t *testing.T) {
	app, _ := setupApp(t)
	alice := registerUser(t, app, "alice@example.com")
	bob := registerUser(t, app, "bob@example.com")

	_, created := doJSON(t, app, "POST", "/api/study/task", alice, map[string]interface{}{
		"task_name":      "Alice's task",
		"estimated_time": 30,
	})
	taskID := pathID(created["task"].(map[string]interface{}), "id")

	resp, _ := doJSON(t, app, "PUT", "/api/study/task/"+taskID, bob, map[string]interface{}{
		"completed": true,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/study/task/"+taskID, bob, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStudyHistory(t *testing.T) {
	app, _ := setupApp(t)
	cookie := registerUser(t, app, "alice@example.com")

	for i := 0; i < 3; i++ {
		_, started := doJSON(t, app, "POST", "/api/study/start", cookie, nil)
		doJSON(t, app, "POST", "/api/study/"+pathID(started, "session_id")+"/complete", cookie, nil)
	}

	resp, result := doJSON(t, app, "GET", "/api/study/history", cookie, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, result["sessions"].([]interface{}), 3)
}
