package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusNil        TaskStatus = "nil"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status belongs to the closed status set.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNil, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Subtasks  string     `gorm:"type:text" json:"subtasks"`
	Milestone string     `gorm:"type:varchar(50);not null;index" json:"milestone"`
	Status    TaskStatus `gorm:"type:varchar(20);not null;default:'in_progress';index" json:"status"`

	// Weak reference to the assignee. The store clears it when the user is
	// deleted; application code never reacts to user deletion.
	AssignedToID *uint64 `gorm:"index" json:"assigned_to"`

	// Location tuple
	State        string `gorm:"type:varchar(100);not null;index" json:"state"`
	BusinessArea string `gorm:"type:varchar(100);not null" json:"business_area"`
	District     string `gorm:"type:varchar(100);not null" json:"district"`
	Block        string `gorm:"type:varchar(100);not null" json:"block"`

	// Timeline
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EstimatedEndDate time.Time  `gorm:"type:date;not null" json:"estimated_end_date"`
	CompletedDate    *time.Time `gorm:"type:date" json:"completed_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	AssignedTo *User `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assigned_to_user,omitempty"`
}

// applyStatusEffects keeps the completed-date invariant: the date is set
// exactly when the status is completed. Transition ordering is deliberately
// unrestricted; tightening the policy later only touches this function and
// TaskStatus.Valid.
func (t *Task) applyStatusEffects(now time.Time) {
	if t.Status == "" {
		t.Status = TaskStatusInProgress
	}
	if t.Status == TaskStatusCompleted {
		if t.CompletedDate == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			t.CompletedDate = &today
		}
	} else {
		t.CompletedDate = nil
	}
}

// BeforeSave runs on both create and update.
func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.applyStatusEffects(time.Now())
	return nil
}
