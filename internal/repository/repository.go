package repository

import (
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/models"
)

// TaskFilter holds filtering options for listing tasks. All set fields are
// ANDed together.
type TaskFilter struct {
	AssignedToID *uint64
	Milestone    *string
	Status       *models.TaskStatus
	State        *string
	BusinessArea *string
	District     *string
	Block        *string
	Page         int
	PageSize     int
}

// Empty reports whether no filter field is set.
func (f TaskFilter) Empty() bool {
	return f.AssignedToID == nil && f.Milestone == nil && f.Status == nil &&
		f.State == nil && f.BusinessArea == nil && f.District == nil && f.Block == nil
}

// StateCount is one row of the per-state task breakdown.
type StateCount struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}

// StatusCounts groups task totals by status.
type StatusCounts map[models.TaskStatus]int64

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks matching the filter, newest start date first
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete hard deletes a task
	Delete(id uint64) error

	// CountByStatus returns task totals grouped by status
	CountByStatus() (StatusCounts, error)

	// CountDueBetween counts in-progress tasks whose estimated end date
	// falls in [from, to]
	CountDueBetween(from, to time.Time) (int64, error)

	// CountByState returns per-state task counts, descending by count
	CountByState() ([]StateCount, error)

	// CountByMilestoneAndStatus returns per-milestone status totals
	CountByMilestoneAndStatus() (map[string]StatusCounts, error)
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	Role     *models.UserRole
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateAll creates every user inside a single transaction
	CreateAll(users []*models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users with filtering and pagination
	List(filter UserFilter) ([]models.User, int64, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete removes a user; task assignments are cleared by the store
	Delete(id uint64) error

	// DeleteByIDs removes all matching users and reports how many existed
	DeleteByIDs(ids []uint64) (int64, error)
}

// TokenRepository defines the interface for auth and reset token data access
type TokenRepository interface {
	// GetOrCreate returns the user's live token, minting one if absent
	GetOrCreate(userID uint64) (*models.AuthToken, error)

	// FindByKey finds a token and its user
	FindByKey(key string) (*models.AuthToken, error)

	// DeleteByKey invalidates a token
	DeleteByKey(key string) error

	// CreateReset stores a password reset token record
	CreateReset(token *models.PasswordResetToken) error

	// FindActiveReset finds an unused, unexpired reset token by user and hash
	FindActiveReset(userID uint64, tokenHash string, now time.Time) (*models.PasswordResetToken, error)

	// MarkResetUsed burns a reset token
	MarkResetUsed(id uint64) error
}

// MilestoneRepository defines the interface for milestone data access
type MilestoneRepository interface {
	// List returns all milestones ordered by name
	List() ([]models.Milestone, error)

	// FindByID finds a milestone by ID
	FindByID(id uint64) (*models.Milestone, error)
}
