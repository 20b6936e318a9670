package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/dto"
	apierrors "github.com/fieldtrack/fieldtrack-api/internal/errors"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/fieldtrack/fieldtrack-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks matching the query filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter, ok := taskFilterFromQuery(c)
	if !ok {
		return
	}

	tasks, total, err := h.taskService.ListTasks(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, filter.Page, filter.PageSize, total))
}

// ListTasksByLocation filters by the location columns only. At least one
// location parameter must be present.
func (h *TaskHandler) ListTasksByLocation(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.TaskFilter{
		State:        optionalQuery(c, "state"),
		BusinessArea: optionalQuery(c, "business_area"),
		District:     optionalQuery(c, "district"),
		Block:        optionalQuery(c, "block"),
		Page:         params.Page,
		PageSize:     params.Limit,
	}

	tasks, total, err := h.taskService.ListTasksByLocation(filter)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, filter.Page, filter.PageSize, total))
}

// ListAssignedTasks returns tasks assigned to the user in the path.
func (h *TaskHandler) ListAssignedTasks(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	tasks, total, err := h.taskService.ListTasksForUser(userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	items := make([]dto.TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = dto.ToTaskDTO(task)
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": items,
		"total": total,
	})
}

// GetTask returns a specific task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title            string  `json:"title" binding:"required"`
		Subtasks         string  `json:"subtasks"`
		Milestone        string  `json:"milestone" binding:"required"`
		AssignedToID     *uint64 `json:"assigned_to_id"`
		Status           string  `json:"status"`
		State            string  `json:"state" binding:"required"`
		BusinessArea     string  `json:"business_area" binding:"required"`
		District         string  `json:"district" binding:"required"`
		Block            string  `json:"block" binding:"required"`
		StartDate        string  `json:"start_date" binding:"required"`
		EstimatedEndDate string  `json:"estimated_end_date" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "start_date must use the YYYY-MM-DD format")
		return
	}
	endDate, err := time.Parse(dto.DateLayout, req.EstimatedEndDate)
	if err != nil {
		apierrors.BadRequest(c, "estimated_end_date must use the YYYY-MM-DD format")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:            req.Title,
		Subtasks:         req.Subtasks,
		Milestone:        req.Milestone,
		AssignedToID:     req.AssignedToID,
		Status:           models.TaskStatus(req.Status),
		State:            req.State,
		BusinessArea:     req.BusinessArea,
		District:         req.District,
		Block:            req.Block,
		StartDate:        startDate,
		EstimatedEndDate: endDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies an update to an existing task. Absent fields keep their
// stored value; an explicit null assigned_to_id unassigns the task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title            *string `json:"title"`
		Subtasks         *string `json:"subtasks"`
		Milestone        *string `json:"milestone"`
		AssignedToID     *uint64 `json:"assigned_to_id"`
		Status           *string `json:"status"`
		State            *string `json:"state"`
		BusinessArea     *string `json:"business_area"`
		District         *string `json:"district"`
		Block            *string `json:"block"`
		StartDate        *string `json:"start_date"`
		EstimatedEndDate *string `json:"estimated_end_date"`
	}

	body, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var req UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	// A pointer field cannot distinguish "absent" from "null", so the raw
	// document decides whether assigned_to_id was an explicit null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	clearAssignee := false
	if value, present := raw["assigned_to_id"]; present && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		clearAssignee = true
	}

	input := services.UpdateTaskInput{
		Title:         req.Title,
		Subtasks:      req.Subtasks,
		Milestone:     req.Milestone,
		AssignedToID:  req.AssignedToID,
		ClearAssignee: clearAssignee,
		State:         req.State,
		BusinessArea:  req.BusinessArea,
		District:      req.District,
		Block:         req.Block,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dto.DateLayout, *req.StartDate)
		if err != nil {
			apierrors.BadRequest(c, "start_date must use the YYYY-MM-DD format")
			return
		}
		input.StartDate = &startDate
	}
	if req.EstimatedEndDate != nil {
		endDate, err := time.Parse(dto.DateLayout, *req.EstimatedEndDate)
		if err != nil {
			apierrors.BadRequest(c, "estimated_end_date must use the YYYY-MM-DD format")
			return
		}
		input.EstimatedEndDate = &endDate
	}

	task, err := h.taskService.UpdateTask(id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus changes only the task's status.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(id, models.TaskStatus(req.Status))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// taskFilterFromQuery builds the repository filter from the query string.
func taskFilterFromQuery(c *gin.Context) (repository.TaskFilter, bool) {
	params := utils.GetPaginationParams(c)
	filter := repository.TaskFilter{
		Milestone:    optionalQuery(c, "milestone"),
		State:        optionalQuery(c, "state"),
		BusinessArea: optionalQuery(c, "business_area"),
		District:     optionalQuery(c, "district"),
		Block:        optionalQuery(c, "block"),
		Page:         params.Page,
		PageSize:     params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := models.TaskStatus(statusStr)
		if !status.Valid() {
			apierrors.BadRequest(c, services.ErrInvalidStatus.Error())
			return repository.TaskFilter{}, false
		}
		filter.Status = &status
	}
	if assignedStr := c.Query("assigned_to"); assignedStr != "" {
		assignedID, err := strconv.ParseUint(assignedStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "assigned_to must be a user ID")
			return repository.TaskFilter{}, false
		}
		filter.AssignedToID = &assignedID
	}

	return filter, true
}

func optionalQuery(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidMilestone),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrDateOrder),
		errors.Is(err, services.ErrUnknownLocation),
		errors.Is(err, services.ErrAssigneeNotFound),
		errors.Is(err, services.ErrNoLocationFilter):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
