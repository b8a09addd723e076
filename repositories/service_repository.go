package repositories

import (
	"context"
	"errors"

	"aurora-backend/models"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	// List returns ACTIVE services; includeDisabled adds DISABLED rows
	// for the admin-style view. Category and Creator are preloaded.
	List(ctx context.Context, includeDisabled bool) ([]models.Service, error)
	FindByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) (*models.Service, error)
	SoftDelete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List(ctx context.Context, includeDisabled bool) ([]models.Service, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Creator").
		Order("name ASC")
	if !includeDisabled {
		query = query.Where("state = ?", models.LifecycleActive)
	}

	var services []models.Service
	err := query.Find(&services).Error
	return services, err
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Creator").
		First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, service.ID)
}

func (r *serviceRepository) Update(ctx context.Context, service *models.Service) (*models.Service, error) {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, service.ID)
}

func (r *serviceRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ?", id).
		Update("state", models.LifecycleDisabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *serviceRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("state = ?", models.LifecycleActive).
		Count(&count).Error
	return count, err
}
