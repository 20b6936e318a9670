package repository

import (
	"errors"
	"time"

	"github.com/fieldtrack/fieldtrack-api/internal/constants"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/utils"
	"gorm.io/gorm"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// GetOrCreate returns the user's live token, minting one if absent. Logging
// in twice therefore hands back the same credential.
func (r *GormTokenRepository) GetOrCreate(userID uint64) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := utils.GenerateToken(constants.AuthTokenBytes)
	if err != nil {
		return nil, err
	}

	token = models.AuthToken{
		Key:    key,
		UserID: userID,
	}
	if err := r.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByKey finds a token and preloads its user
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByKey invalidates a token
func (r *GormTokenRepository) DeleteByKey(key string) error {
	result := r.db.Where("key = ?", key).Delete(&models.AuthToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateReset stores a password reset token record
func (r *GormTokenRepository) CreateReset(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

// FindActiveReset finds an unused, unexpired reset token by user and hash
func (r *GormTokenRepository) FindActiveReset(userID uint64, tokenHash string, now time.Time) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.
		Where("user_id = ? AND token_hash = ? AND used = ? AND expires_at > ?", userID, tokenHash, false, now).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MarkResetUsed burns a reset token
func (r *GormTokenRepository) MarkResetUsed(id uint64) error {
	return r.db.Model(&models.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used", true).Error
}
