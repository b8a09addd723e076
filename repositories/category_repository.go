package repositories

import (
	"context"
	"errors"

	"aurora-backend/models"

	"gorm.io/gorm"
)

// CategoryRecord is a category row with the count of active services
// the listing embeds.
type CategoryRecord struct {
	models.ServiceCategory `gorm:"embedded"`
	ServicesCount          int64
}

type CategoryRepository interface {
	List(ctx context.Context) ([]CategoryRecord, error)
	FindByID(ctx context.Context, id string) (*models.ServiceCategory, error)
	// NameTaken reports whether an ACTIVE category other than excludeID
	// already uses name. The comparison is case-sensitive.
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, category *models.ServiceCategory) (*CategoryRecord, error)
	Update(ctx context.Context, category *models.ServiceCategory) (*CategoryRecord, error)
	SoftDelete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryWithCount = "service_categories.*, (SELECT COUNT(*) FROM services s " +
	"WHERE s.category_id = service_categories.id AND s.state = 'ACTIVE') AS services_count"

func (r *categoryRepository) List(ctx context.Context) ([]CategoryRecord, error) {
	var records []CategoryRecord
	err := r.db.WithContext(ctx).Model(&models.ServiceCategory{}).
		Select(categoryWithCount).
		Where("service_categories.state = ?", models.LifecycleActive).
		Order("service_categories.name ASC").
		Scan(&records).Error
	return records, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ServiceCategory{}).
		Where("name = ? AND state = ?", name, models.LifecycleActive)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.ServiceCategory) (*CategoryRecord, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return r.record(ctx, category.ID)
}

func (r *categoryRepository) Update(ctx context.Context, category *models.ServiceCategory) (*CategoryRecord, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return r.record(ctx, category.ID)
}

// SoftDelete flips the category to DISABLED. It refuses while active
// services still reference the category.
func (r *categoryRepository) SoftDelete(ctx context.Context, id string) error {
	var category models.ServiceCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var dependents int64
	err = r.db.WithContext(ctx).Model(&models.Service{}).
		Where("category_id = ? AND state = ?", id, models.LifecycleActive).
		Count(&dependents).Error
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrDependency
	}

	return r.db.WithContext(ctx).Model(&category).
		Update("state", models.LifecycleDisabled).Error
}

func (r *categoryRepository) record(ctx context.Context, id string) (*CategoryRecord, error) {
	var record CategoryRecord
	err := r.db.WithContext(ctx).Model(&models.ServiceCategory{}).
		Select(categoryWithCount).
		Where("service_categories.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
