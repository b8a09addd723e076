package repositories

import (
	"context"
	"errors"

	"aurora-backend/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetConfig(ctx context.Context) (*models.SystemConfig, error)
	UpdateConfig(ctx context.Context, config *models.SystemConfig) error
	ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	// ReplaceWorkingHours swaps the full weekly schedule for one owner:
	// nil staffID targets the salon-wide default rows.
	ReplaceWorkingHours(ctx context.Context, staffID *string, hours []models.WorkingHours) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	var config models.SystemConfig
	err := r.db.WithContext(ctx).First(&config, "id = ?", models.SystemConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *settingsRepository) UpdateConfig(ctx context.Context, config *models.SystemConfig) error {
	config.ID = models.SystemConfigID
	return r.db.WithContext(ctx).Save(config).Error
}

func (r *settingsRepository) ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	var hours []models.WorkingHours
	err := r.db.WithContext(ctx).
		Order("day_of_week ASC").
		Find(&hours).Error
	return hours, err
}

func (r *settingsRepository) ReplaceWorkingHours(ctx context.Context, staffID *string, hours []models.WorkingHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := tx.Where("staff_id IS NULL")
		if staffID != nil {
			scope = tx.Where("staff_id = ?", *staffID)
		}
		if err := scope.Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		for i := range hours {
			hours[i].StaffID = staffID
			if err := tx.Create(&hours[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
