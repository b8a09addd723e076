package repositories

import (
	"context"
	"errors"

	"aurora-backend/models"

	"gorm.io/gorm"
)

// UserRecord is a user row together with the appointment count the
// admin listing displays.
type UserRecord struct {
	models.User       `gorm:"embedded"`
	AppointmentsCount int64
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]UserRecord, error)
	ListStaff(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (*UserRecord, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) List(ctx context.Context) ([]UserRecord, error) {
	var records []UserRecord
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.*, (SELECT COUNT(*) FROM appointments a WHERE a.user_id = users.id) AS appointments_count").
		Order("created_at DESC").
		Scan(&records).Error
	return records, err
}

func (r *userRepository) ListStaff(ctx context.Context) ([]models.User, error) {
	var staff []models.User
	err := r.db.WithContext(ctx).
		Where("role IN ? AND enabled = ? AND deleted = ?",
			[]models.Role{models.RoleStaff, models.RoleAdmin}, true, false).
		Order("name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role models.Role) (*UserRecord, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}

	var record UserRecord
	err = r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.*, (SELECT COUNT(*) FROM appointments a WHERE a.user_id = users.id) AS appointments_count").
		Where("users.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
