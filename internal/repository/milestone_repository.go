package repository

import (
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormMilestoneRepository is a GORM implementation of MilestoneRepository
type GormMilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new MilestoneRepository
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &GormMilestoneRepository{db: db}
}

// List returns all milestones ordered by name
func (r *GormMilestoneRepository) List() ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := r.db.Order("name ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

// FindByID finds a milestone by ID
func (r *GormMilestoneRepository) FindByID(id uint64) (*models.Milestone, error) {
	var milestone models.Milestone
	if err := r.db.First(&milestone, id).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}
