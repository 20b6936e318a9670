package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/database"
	"github.com/fieldtrack/fieldtrack-api/internal/dto"
	"github.com/fieldtrack/fieldtrack-api/internal/location"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskTestEnv struct {
	db      *gorm.DB
	handler *TaskHandler
	service *services.TaskService
	router  *gin.Engine
}

func setupTaskTestEnv(t *testing.T) taskTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Milestone{},
		&models.Task{},
	)
	require.NoError(t, err)
	require.NoError(t, database.SeedMilestones(db))

	database.SetDB(db)

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	service := services.NewTaskService(taskRepo, userRepo, location.NewStaticDirectory())
	handler := NewTaskHandler(service)

	r := gin.New()
	r.GET("/api/tasks", handler.ListTasks)
	r.POST("/api/tasks", handler.CreateTask)
	r.GET("/api/tasks/by-location", handler.ListTasksByLocation)
	r.GET("/api/tasks/assigned/:user_id", handler.ListAssignedTasks)
	r.GET("/api/tasks/:id", handler.GetTask)
	r.PATCH("/api/tasks/:id", handler.UpdateTask)
	r.PATCH("/api/tasks/:id/status", handler.UpdateTaskStatus)
	r.DELETE("/api/tasks/:id", handler.DeleteTask)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return taskTestEnv{
		db:      db,
		handler: handler,
		service: service,
		router:  r,
	}
}

// validTaskPayload uses a tuple that exists in the location directory.
func validTaskPayload() map[string]any {
	return map[string]any{
		"title":              "Survey feeder route",
		"milestone":          "field_survey",
		"state":              "BIHAR",
		"business_area":      "PATNA",
		"district":           "PATNA",
		"block":              "BIHTA",
		"start_date":         "2025-01-01",
		"estimated_end_date": "2025-02-01",
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	env := setupTaskTestEnv(t)

	w := postJSON(t, env.router, "/api/tasks", validTaskPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Survey feeder route", response.Title)
	require.Equal(t, models.TaskStatusInProgress, response.Status)
	require.Nil(t, response.CompletedDate)
	require.Equal(t, "2025-01-01", response.StartDate)
}

func TestTaskHandler_CreateTask_CompletedGetsDateStamped(t *testing.T) {
	env := setupTaskTestEnv(t)

	payload := validTaskPayload()
	payload["status"] = "completed"

	w := postJSON(t, env.router, "/api/tasks", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.CompletedDate)
	require.Equal(t, time.Now().UTC().Format(dto.DateLayout), *response.CompletedDate)
}

func TestTaskHandler_CreateTask_Validation(t *testing.T) {
	env := setupTaskTestEnv(t)

	badDates := validTaskPayload()
	badDates["start_date"] = "2025-03-01"
	badDates["estimated_end_date"] = "2025-02-01"
	w := postJSON(t, env.router, "/api/tasks", badDates)
	require.Equal(t, http.StatusBadRequest, w.Code)

	badMilestone := validTaskPayload()
	badMilestone["milestone"] = "moon_landing"
	w = postJSON(t, env.router, "/api/tasks", badMilestone)
	require.Equal(t, http.StatusBadRequest, w.Code)

	badLocation := validTaskPayload()
	badLocation["block"] = "NOWHERE"
	w = postJSON(t, env.router, "/api/tasks", badLocation)
	require.Equal(t, http.StatusBadRequest, w.Code)

	badStatus := validTaskPayload()
	badStatus["status"] = "paused"
	w = postJSON(t, env.router, "/api/tasks", badStatus)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTaskStatus(t *testing.T) {
	env := setupTaskTestEnv(t)

	task := createTestTask(t, env)

	w := patchJSON(t, env.router, "/api/tasks/"+itoa(task.ID)+"/status", map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.TaskStatusCompleted, response.Status)
	require.NotNil(t, response.CompletedDate)

	// Moving away from completed clears the date again.
	w = patchJSON(t, env.router, "/api/tasks/"+itoa(task.ID)+"/status", map[string]string{
		"status": "in_progress",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, models.TaskStatusInProgress, response.Status)
	require.Nil(t, response.CompletedDate)

	w = patchJSON(t, env.router, "/api/tasks/"+itoa(task.ID)+"/status", map[string]string{
		"status": "blocked",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTask_UnassignsOnExplicitNull(t *testing.T) {
	env := setupTaskTestEnv(t)

	assignee := createTestUser(t, env.db, "crew1", "supersecret", models.RoleSurveyor)
	task := createTestTask(t, env)

	w := patchJSON(t, env.router, "/api/tasks/"+itoa(task.ID), map[string]any{
		"assigned_to_id": assignee.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.AssignedToID)
	require.Equal(t, assignee.ID, *response.AssignedToID)

	w = patchJSON(t, env.router, "/api/tasks/"+itoa(task.ID), map[string]any{
		"assigned_to_id": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Nil(t, response.AssignedToID)
}

func TestTaskHandler_ListTasksByLocation(t *testing.T) {
	env := setupTaskTestEnv(t)
	createTestTask(t, env)

	// No location parameter at all is rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/by-location", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks/by-location?state=BIHAR&district=PATNA", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Tasks, 1)

	// A filter that matches nothing yields an empty page, not an error.
	req = httptest.NewRequest(http.MethodGet, "/api/tasks/by-location?district=NALANDA", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Tasks)
}

func TestTaskHandler_ListAssignedTasks(t *testing.T) {
	env := setupTaskTestEnv(t)

	assignee := createTestUser(t, env.db, "crew2", "supersecret", models.RoleSurveyor)
	task := createTestTask(t, env)
	require.NoError(t, env.db.Model(&models.Task{}).Where("id = ?", task.ID).
		Update("assigned_to_id", assignee.ID).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/assigned/"+itoa(assignee.ID), nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskDTO `json:"tasks"`
		Total int64         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.Total)
	require.Len(t, response.Tasks, 1)

	// Unknown user is a 404, not an empty list.
	req = httptest.NewRequest(http.MethodGet, "/api/tasks/assigned/9999", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := setupTaskTestEnv(t)
	task := createTestTask(t, env)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+itoa(task.ID), nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks/"+itoa(task.ID), nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/"+itoa(task.ID), nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func createTestTask(t *testing.T, env taskTestEnv) *models.Task {
	t.Helper()

	task, err := env.service.CreateTask(services.CreateTaskInput{
		Title:            "Survey feeder route",
		Milestone:        "field_survey",
		State:            "BIHAR",
		BusinessArea:     "PATNA",
		District:         "PATNA",
		Block:            "BIHTA",
		StartDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EstimatedEndDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return task
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(dto.DateLayout, value)
	require.NoError(t, err)
	return parsed
}

func patchJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
