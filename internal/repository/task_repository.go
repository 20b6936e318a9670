package repository

import (
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/database"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks matching the filter
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.Milestone != nil {
		query = query.Where("milestone = ?", *filter.Milestone)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}
	if filter.BusinessArea != nil {
		query = query.Where("business_area = ?", *filter.BusinessArea)
	}
	if filter.District != nil {
		query = query.Where("district = ?", *filter.District)
	}
	if filter.Block != nil {
		query = query.Where("block = ?", *filter.Block)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("start_date DESC, title ASC").
		Scopes(database.Paginate(filter.Page, filter.PageSize))

	if err := listQuery.Preload("AssignedTo").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete hard deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	result := r.db.Unscoped().Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns task totals grouped by status
func (r *GormTaskRepository) CountByStatus() (StatusCounts, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(StatusCounts, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountDueBetween counts in-progress tasks with an estimated end date in
// [from, to] inclusive.
func (r *GormTaskRepository) CountDueBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("status = ?", models.TaskStatusInProgress).
		Where("estimated_end_date >= ? AND estimated_end_date <= ?", from, to).
		Count(&count).Error
	return count, err
}

// CountByState returns per-state task counts, descending by count
func (r *GormTaskRepository) CountByState() ([]StateCount, error) {
	var rows []StateCount
	err := r.db.Model(&models.Task{}).
		Select("state, COUNT(*) as count").
		Group("state").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByMilestoneAndStatus returns status totals keyed by milestone code
func (r *GormTaskRepository) CountByMilestoneAndStatus() (map[string]StatusCounts, error) {
	var rows []struct {
		Milestone string
		Status    models.TaskStatus
		Count     int64
	}
	err := r.db.Model(&models.Task{}).
		Select("milestone, status, COUNT(*) as count").
		Group("milestone, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]StatusCounts)
	for _, row := range rows {
		if counts[row.Milestone] == nil {
			counts[row.Milestone] = make(StatusCounts)
		}
		counts[row.Milestone][row.Status] = row.Count
	}
	return counts, nil
}
