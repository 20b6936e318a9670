package dto

import (
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/models"
)

// DateLayout is the wire format for the date-only task fields.
const DateLayout = "2006-01-02"

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID               uint64            `json:"id"`
	Title            string            `json:"title"`
	Subtasks         string            `json:"subtasks"`
	Milestone        string            `json:"milestone"`
	Status           models.TaskStatus `json:"status"`
	AssignedToID     *uint64           `json:"assigned_to_id"`
	AssignedTo       *UserRefDTO       `json:"assigned_to,omitempty"`
	State            string            `json:"state"`
	BusinessArea     string            `json:"business_area"`
	District         string            `json:"district"`
	Block            string            `json:"block"`
	StartDate        string            `json:"start_date"`
	EstimatedEndDate string            `json:"estimated_end_date"`
	CompletedDate    *string           `json:"completed_date"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// MilestoneDTO represents a catalog milestone in API responses.
type MilestoneDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:               task.ID,
		Title:            task.Title,
		Subtasks:         task.Subtasks,
		Milestone:        task.Milestone,
		Status:           task.Status,
		AssignedToID:     task.AssignedToID,
		State:            task.State,
		BusinessArea:     task.BusinessArea,
		District:         task.District,
		Block:            task.Block,
		StartDate:        task.StartDate.Format(DateLayout),
		EstimatedEndDate: task.EstimatedEndDate.Format(DateLayout),
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}

	if task.CompletedDate != nil {
		completed := task.CompletedDate.Format(DateLayout)
		dto.CompletedDate = &completed
	}

	// Include assignee if preloaded
	if task.AssignedTo != nil && task.AssignedTo.ID != 0 {
		ref := ToUserRefDTO(*task.AssignedTo)
		dto.AssignedTo = &ref
	}

	return dto
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, page, pageSize int, totalCount int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return TaskListResponse{
		Tasks:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// ToMilestoneDTO converts a Milestone model to MilestoneDTO.
func ToMilestoneDTO(m models.Milestone) MilestoneDTO {
	return MilestoneDTO{
		ID:          m.ID,
		Name:        m.Name,
		Code:        m.Code,
		Description: m.Description,
	}
}
