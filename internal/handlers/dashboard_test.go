package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/database"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type dashboardTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupDashboardTestEnv(t *testing.T) dashboardTestEnv {
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
	service := services.NewTaskService(taskRepo, userRepo, nil)
	handler := NewDashboardHandler(service)

	r := gin.New()
	r.GET("/api/dashboard/task-summary", handler.TaskSummary)
	r.GET("/api/dashboard/milestone-progress", handler.MilestoneProgress)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return dashboardTestEnv{
		db:     db,
		router: r,
	}
}

func seedDashboardTask(t *testing.T, db *gorm.DB, milestone string, status models.TaskStatus, state string, endInDays int) {
	t.Helper()

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, endInDays)
	task := &models.Task{
		Title:            "Seeded task",
		Milestone:        milestone,
		Status:           status,
		State:            state,
		BusinessArea:     "PATNA",
		District:         "PATNA",
		Block:            "BIHTA",
		StartDate:        end.AddDate(0, 0, -30),
		EstimatedEndDate: end,
	}
	require.NoError(t, db.Create(task).Error)
}

func TestDashboardHandler_TaskSummary(t *testing.T) {
	env := setupDashboardTestEnv(t)

	seedDashboardTask(t, env.db, "row", models.TaskStatusCompleted, "BIHAR", 40)
	seedDashboardTask(t, env.db, "row", models.TaskStatusCompleted, "BIHAR", 50)
	seedDashboardTask(t, env.db, "ifc", models.TaskStatusInProgress, "BIHAR", 3)
	seedDashboardTask(t, env.db, "ifc", models.TaskStatusNil, "JHARKHAND", 60)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/task-summary", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary services.TaskSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, int64(4), summary.TotalTasks)
	require.Equal(t, int64(2), summary.CompletedTasks)
	require.Equal(t, int64(1), summary.InProgressTasks)
	require.Equal(t, int64(1), summary.NilTasks)
	require.Equal(t, 50.0, summary.CompletionPercentage)

	// Only the in-progress task ending inside the 7-day window counts.
	require.Equal(t, int64(1), summary.DueSoon)

	require.Len(t, summary.TasksByState, 2)
	require.Equal(t, "BIHAR", summary.TasksByState[0].State)
	require.Equal(t, int64(3), summary.TasksByState[0].Count)
}

func TestDashboardHandler_TaskSummary_Empty(t *testing.T) {
	env := setupDashboardTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/task-summary", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary services.TaskSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, int64(0), summary.TotalTasks)
	require.Equal(t, 0.0, summary.CompletionPercentage)
	require.NotNil(t, summary.TasksByState)
}

func TestDashboardHandler_TaskSummary_Rounding(t *testing.T) {
	env := setupDashboardTestEnv(t)

	seedDashboardTask(t, env.db, "row", models.TaskStatusCompleted, "BIHAR", 40)
	seedDashboardTask(t, env.db, "row", models.TaskStatusInProgress, "BIHAR", 40)
	seedDashboardTask(t, env.db, "row", models.TaskStatusInProgress, "BIHAR", 40)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/task-summary", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary services.TaskSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, 33.33, summary.CompletionPercentage)
}

func TestDashboardHandler_MilestoneProgress(t *testing.T) {
	env := setupDashboardTestEnv(t)

	seedDashboardTask(t, env.db, "field_survey", models.TaskStatusCompleted, "BIHAR", 40)
	seedDashboardTask(t, env.db, "field_survey", models.TaskStatusInProgress, "BIHAR", 40)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/milestone-progress", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Milestones []services.MilestoneProgress `json:"milestones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// Every catalog milestone appears, including the nine without tasks.
	require.Len(t, response.Milestones, len(models.MilestoneCatalog))

	byCode := make(map[string]services.MilestoneProgress, len(response.Milestones))
	for _, m := range response.Milestones {
		byCode[m.Code] = m
	}

	surveyed := byCode["field_survey"]
	require.Equal(t, int64(2), surveyed.Total)
	require.Equal(t, int64(1), surveyed.Completed)
	require.Equal(t, int64(1), surveyed.InProgress)
	require.Equal(t, 50.0, surveyed.Percentage)

	idle := byCode["hoto_final"]
	require.Equal(t, int64(0), idle.Total)
	require.Equal(t, 0.0, idle.Percentage)
}
