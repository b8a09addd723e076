package repositories

import (
	"context"
	"errors"
	"time"

	"aurora-backend/models"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// List returns appointments newest-first, optionally filtered by
	// service. Customer, Service, Staff and User are preloaded.
	List(ctx context.Context, serviceID string) ([]models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	// CompletedBetween returns the count of COMPLETED appointments whose
	// start time falls in [from, to] and the sum of their price snapshots.
	CompletedBetween(ctx context.Context, from, to time.Time) (int64, float64, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) withPreloads(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Staff").
		Preload("User")
}

func (r *appointmentRepository) List(ctx context.Context, serviceID string) ([]models.Appointment, error) {
	query := r.withPreloads(ctx).Order("start_time DESC")
	if serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}

	var appointments []models.Appointment
	err := query.Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.withPreloads(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, appointment.ID)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) CompletedBetween(ctx context.Context, from, to time.Time) (int64, float64, error) {
	base := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("status = ? AND start_time BETWEEN ? AND ?",
			models.AppointmentCompleted, from, to)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var revenue float64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("status = ? AND start_time BETWEEN ? AND ?",
			models.AppointmentCompleted, from, to).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}
	return count, revenue, nil
}
