package repositories

import (
	"context"
	"errors"
	"time"

	"aurora-backend/models"

	"gorm.io/gorm"
)

// CustomerRecord is a customer row with the appointment count the
// listing embeds.
type CustomerRecord struct {
	models.Customer   `gorm:"embedded"`
	AppointmentsCount int64
}

type CustomerRepository interface {
	List(ctx context.Context) ([]CustomerRecord, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	// EmailTaken reports whether a customer other than excludeID
	// already uses email, disabled rows included.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, customer *models.Customer) (*CustomerRecord, error)
	Update(ctx context.Context, customer *models.Customer) (*CustomerRecord, error)
	SoftDelete(ctx context.Context, id string) error
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerWithCount = "customers.*, (SELECT COUNT(*) FROM appointments a " +
	"WHERE a.customer_id = customers.id) AS appointments_count"

func (r *customerRepository) List(ctx context.Context) ([]CustomerRecord, error) {
	var records []CustomerRecord
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select(customerWithCount).
		Where("customers.state = ?", models.LifecycleActive).
		Order("customers.first_name ASC, customers.last_name ASC").
		Scan(&records).Error
	return records, err
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) (*CustomerRecord, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return r.record(ctx, customer.ID)
}

func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) (*CustomerRecord, error) {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return r.record(ctx, customer.ID)
}

// SoftDelete flips the customer to DISABLED. It refuses while the
// customer still has PENDING, CONFIRMED or IN_PROGRESS appointments.
func (r *customerRepository) SoftDelete(ctx context.Context, id string) error {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var open int64
	err = r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("customer_id = ? AND status IN ?", id, []models.AppointmentStatus{
			models.AppointmentPending,
			models.AppointmentConfirmed,
			models.AppointmentInProgress,
		}).
		Count(&open).Error
	if err != nil {
		return err
	}
	if open > 0 {
		return ErrDependency
	}

	return r.db.WithContext(ctx).Model(&customer).
		Update("state", models.LifecycleDisabled).Error
}

func (r *customerRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) record(ctx context.Context, id string) (*CustomerRecord, error) {
	var record CustomerRecord
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select(customerWithCount).
		Where("customers.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
