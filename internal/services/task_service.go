package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/constants"
	"github.com/fieldtrack/fieldtrack-api/internal/location"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidMilestone = errors.New("milestone is not in the catalog")
	ErrInvalidStatus    = errors.New("status must be one of: nil, in_progress, completed")
	ErrDateOrder        = errors.New("start date cannot be after estimated end date")
	ErrUnknownLocation  = errors.New("location is not in the directory")
	ErrAssigneeNotFound = errors.New("assigned user does not exist")
	ErrNoLocationFilter = errors.New("at least one location parameter is required")
)

// TaskService handles task business logic. The location directory is an
// optional collaborator: when nil, location validation is skipped.
type TaskService struct {
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	directory location.Directory
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, directory location.Directory) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		directory: directory,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title            string
	Subtasks         string
	Milestone        string
	AssignedToID     *uint64
	Status           models.TaskStatus
	State            string
	BusinessArea     string
	District         string
	Block            string
	StartDate        time.Time
	EstimatedEndDate time.Time
	CompletedDate    *time.Time
}

// UpdateTaskInput represents a full task update; nil fields keep their
// current value.
type UpdateTaskInput struct {
	Title            *string
	Subtasks         *string
	Milestone        *string
	AssignedToID     *uint64
	ClearAssignee    bool
	Status           *models.TaskStatus
	State            *string
	BusinessArea     *string
	District         *string
	Block            *string
	StartDate        *time.Time
	EstimatedEndDate *time.Time
	CompletedDate    *time.Time
}

// TaskSummary aggregates dashboard counters.
type TaskSummary struct {
	TotalTasks           int64                   `json:"total_tasks"`
	CompletedTasks       int64                   `json:"completed_tasks"`
	InProgressTasks      int64                   `json:"in_progress_tasks"`
	NilTasks             int64                   `json:"nil_tasks"`
	CompletionPercentage float64                 `json:"completion_percentage"`
	DueSoon              int64                   `json:"due_soon"`
	TasksByState         []repository.StateCount `json:"tasks_by_state"`
}

// MilestoneProgress is one milestone's slice of the progress dashboard.
type MilestoneProgress struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Total      int64   `json:"total"`
	Completed  int64   `json:"completed"`
	InProgress int64   `json:"in_progress"`
	Nil        int64   `json:"nil"`
	Percentage float64 `json:"percentage"`
}

// CreateTask validates and persists a new task. Status defaults to
// in_progress and the completed-date invariant is applied by the model hook.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !models.ValidMilestoneCode(input.Milestone) {
		return nil, ErrInvalidMilestone
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.StartDate.After(input.EstimatedEndDate) {
		return nil, ErrDateOrder
	}
	if err := s.checkLocation(input.State, input.BusinessArea, input.District, input.Block); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(input.AssignedToID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:            input.Title,
		Subtasks:         input.Subtasks,
		Milestone:        input.Milestone,
		AssignedToID:     input.AssignedToID,
		Status:           input.Status,
		State:            input.State,
		BusinessArea:     input.BusinessArea,
		District:         input.District,
		Block:            input.Block,
		StartDate:        input.StartDate,
		EstimatedEndDate: input.EstimatedEndDate,
		CompletedDate:    input.CompletedDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo")
}

// GetTask returns a task with its assignee preloaded
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "AssignedTo")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns tasks matching the filter
func (s *TaskService) ListTasks(filter repository.TaskFilter) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// ListTasksByLocation rejects an empty filter so a missing query string
// never turns into an accidental full listing.
func (s *TaskService) ListTasksByLocation(filter repository.TaskFilter) ([]models.Task, int64, error) {
	if filter.State == nil && filter.BusinessArea == nil && filter.District == nil && filter.Block == nil {
		return nil, 0, ErrNoLocationFilter
	}
	return s.ListTasks(filter)
}

// ListTasksForUser returns tasks assigned to an existing user.
func (s *TaskService) ListTasksForUser(userID uint64) ([]models.Task, int64, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to find user: %w", err)
	}
	return s.ListTasks(repository.TaskFilter{AssignedToID: &userID})
}

// UpdateTask applies a full update and re-checks the date invariant on the
// merged record.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Subtasks != nil {
		task.Subtasks = *input.Subtasks
	}
	if input.Milestone != nil {
		if !models.ValidMilestoneCode(*input.Milestone) {
			return nil, ErrInvalidMilestone
		}
		task.Milestone = *input.Milestone
	}
	if input.ClearAssignee {
		task.AssignedToID = nil
	} else if input.AssignedToID != nil {
		if err := s.checkAssignee(input.AssignedToID); err != nil {
			return nil, err
		}
		task.AssignedToID = input.AssignedToID
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.State != nil {
		task.State = *input.State
	}
	if input.BusinessArea != nil {
		task.BusinessArea = *input.BusinessArea
	}
	if input.District != nil {
		task.District = *input.District
	}
	if input.Block != nil {
		task.Block = *input.Block
	}
	if input.StartDate != nil {
		task.StartDate = *input.StartDate
	}
	if input.EstimatedEndDate != nil {
		task.EstimatedEndDate = *input.EstimatedEndDate
	}
	if input.CompletedDate != nil {
		task.CompletedDate = input.CompletedDate
	}

	if task.StartDate.After(task.EstimatedEndDate) {
		return nil, ErrDateOrder
	}
	if input.State != nil || input.BusinessArea != nil || input.District != nil || input.Block != nil {
		if err := s.checkLocation(task.State, task.BusinessArea, task.District, task.Block); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo")
}

// UpdateTaskStatus changes only the status. The full record is returned so
// clients see the completed-date side effect without a second fetch.
func (s *TaskService) UpdateTaskStatus(id uint64, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Status = status
	// Clear any stale date; the save hook re-stamps it when completing.
	if status != models.TaskStatusCompleted {
		task.CompletedDate = nil
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo")
}

// DeleteTask hard-deletes a task
func (s *TaskService) DeleteTask(id uint64) error {
	if err := s.taskRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Summary builds the task-status dashboard payload.
func (s *TaskService) Summary() (*TaskSummary, error) {
	counts, err := s.taskRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	total := counts[models.TaskStatusNil] + counts[models.TaskStatusInProgress] + counts[models.TaskStatusCompleted]

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAhead := today.AddDate(0, 0, constants.DueSoonWindowDays)
	dueSoon, err := s.taskRepo.CountDueBetween(today, weekAhead)
	if err != nil {
		return nil, fmt.Errorf("failed to count due tasks: %w", err)
	}

	byState, err := s.taskRepo.CountByState()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by state: %w", err)
	}
	if byState == nil {
		byState = []repository.StateCount{}
	}

	return &TaskSummary{
		TotalTasks:           total,
		CompletedTasks:       counts[models.TaskStatusCompleted],
		InProgressTasks:      counts[models.TaskStatusInProgress],
		NilTasks:             counts[models.TaskStatusNil],
		CompletionPercentage: percentage(counts[models.TaskStatusCompleted], total),
		DueSoon:              dueSoon,
		TasksByState:         byState,
	}, nil
}

// MilestoneProgressReport returns one entry per catalog milestone. The
// catalog drives the iteration, so milestones without tasks still appear
// with zero counts.
func (s *TaskService) MilestoneProgressReport() ([]MilestoneProgress, error) {
	counts, err := s.taskRepo.CountByMilestoneAndStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by milestone: %w", err)
	}

	report := make([]MilestoneProgress, 0, len(models.MilestoneCatalog))
	for _, m := range models.MilestoneCatalog {
		c := counts[m.Code]
		total := c[models.TaskStatusNil] + c[models.TaskStatusInProgress] + c[models.TaskStatusCompleted]
		report = append(report, MilestoneProgress{
			Code:       m.Code,
			Name:       m.Name,
			Total:      total,
			Completed:  c[models.TaskStatusCompleted],
			InProgress: c[models.TaskStatusInProgress],
			Nil:        c[models.TaskStatusNil],
			Percentage: percentage(c[models.TaskStatusCompleted], total),
		})
	}
	return report, nil
}

// checkLocation validates the tuple against the directory when one is
// configured. Directory validation is best-effort, not a hard dependency.
func (s *TaskService) checkLocation(state, area, district, block string) error {
	if s.directory == nil {
		return nil
	}
	if !location.Contains(s.directory, state, area, district, block) {
		return ErrUnknownLocation
	}
	return nil
}

func (s *TaskService) checkAssignee(id *uint64) error {
	if id == nil {
		return nil
	}
	if _, err := s.userRepo.FindByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}

func percentage(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}
