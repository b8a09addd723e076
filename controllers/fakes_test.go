package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"aurora-backend/auth"
	"aurora-backend/middleware"
	"aurora-backend/models"
	"aurora-backend/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() { gin.SetMode(gin.TestMode) }

// perform routes a single request through a throwaway engine with the
// given principal attached, the way RequireSession would.
func perform(t *testing.T, method, pattern, target string, body any, principal auth.Principal, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, principal)
	})
	r.Handle(method, pattern, handler)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error string `json:"error"`
	}
	decode(t, w, &envelope)
	return envelope.Error
}

var (
	adminPrincipal = auth.Principal{ID: "user-admin", Email: "admin@centrobelleza.com", Role: models.RoleAdmin}
	staffPrincipal = auth.Principal{ID: "user-staff", Email: "staff@centrobelleza.com", Role: models.RoleStaff}
	userPrincipal  = auth.Principal{ID: "user-regular", Email: "user@centrobelleza.com", Role: models.RoleUser}
)

var testLogger = zap.NewNop()

type fakeServiceRepo struct {
	ListFn        func(ctx context.Context, includeDisabled bool) ([]models.Service, error)
	FindByIDFn    func(ctx context.Context, id string) (*models.Service, error)
	CreateFn      func(ctx context.Context, service *models.Service) (*models.Service, error)
	UpdateFn      func(ctx context.Context, service *models.Service) (*models.Service, error)
	SoftDeleteFn  func(ctx context.Context, id string) error
	CountActiveFn func(ctx context.Context) (int64, error)
}

func (f *fakeServiceRepo) List(ctx context.Context, includeDisabled bool) ([]models.Service, error) {
	return f.ListFn(ctx, includeDisabled)
}
func (f *fakeServiceRepo) FindByID(ctx context.Context, id string) (*models.Service, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeServiceRepo) Create(ctx context.Context, service *models.Service) (*models.Service, error) {
	return f.CreateFn(ctx, service)
}
func (f *fakeServiceRepo) Update(ctx context.Context, service *models.Service) (*models.Service, error) {
	return f.UpdateFn(ctx, service)
}
func (f *fakeServiceRepo) SoftDelete(ctx context.Context, id string) error {
	return f.SoftDeleteFn(ctx, id)
}
func (f *fakeServiceRepo) CountActive(ctx context.Context) (int64, error) {
	return f.CountActiveFn(ctx)
}

type fakeCategoryRepo struct {
	ListFn       func(ctx context.Context) ([]repositories.CategoryRecord, error)
	FindByIDFn   func(ctx context.Context, id string) (*models.ServiceCategory, error)
	NameTakenFn  func(ctx context.Context, name, excludeID string) (bool, error)
	CreateFn     func(ctx context.Context, category *models.ServiceCategory) (*repositories.CategoryRecord, error)
	UpdateFn     func(ctx context.Context, category *models.ServiceCategory) (*repositories.CategoryRecord, error)
	SoftDeleteFn func(ctx context.Context, id string) error
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]repositories.CategoryRecord, error) {
	return f.ListFn(ctx)
}
func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeCategoryRepo) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return f.NameTakenFn(ctx, name, excludeID)
}
func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.ServiceCategory) (*repositories.CategoryRecord, error) {
	return f.CreateFn(ctx, category)
}
func (f *fakeCategoryRepo) Update(ctx context.Context, category *models.ServiceCategory) (*repositories.CategoryRecord, error) {
	return f.UpdateFn(ctx, category)
}
func (f *fakeCategoryRepo) SoftDelete(ctx context.Context, id string) error {
	return f.SoftDeleteFn(ctx, id)
}

type fakeCustomerRepo struct {
	ListFn                func(ctx context.Context) ([]repositories.CustomerRecord, error)
	FindByIDFn            func(ctx context.Context, id string) (*models.Customer, error)
	EmailTakenFn          func(ctx context.Context, email, excludeID string) (bool, error)
	CreateFn              func(ctx context.Context, customer *models.Customer) (*repositories.CustomerRecord, error)
	UpdateFn              func(ctx context.Context, customer *models.Customer) (*repositories.CustomerRecord, error)
	SoftDeleteFn          func(ctx context.Context, id string) error
	CountCreatedBetweenFn func(ctx context.Context, from, to time.Time) (int64, error)
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]repositories.CustomerRecord, error) {
	return f.ListFn(ctx)
}
func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeCustomerRepo) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return f.EmailTakenFn(ctx, email, excludeID)
}
func (f *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) (*repositories.CustomerRecord, error) {
	return f.CreateFn(ctx, customer)
}
func (f *fakeCustomerRepo) Update(ctx context.Context, customer *models.Customer) (*repositories.CustomerRecord, error) {
	return f.UpdateFn(ctx, customer)
}
func (f *fakeCustomerRepo) SoftDelete(ctx context.Context, id string) error {
	return f.SoftDeleteFn(ctx, id)
}
func (f *fakeCustomerRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return f.CountCreatedBetweenFn(ctx, from, to)
}

type fakeAppointmentRepo struct {
	ListFn             func(ctx context.Context, serviceID string) ([]models.Appointment, error)
	FindByIDFn         func(ctx context.Context, id string) (*models.Appointment, error)
	CreateFn           func(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateStatusFn     func(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error)
	DeleteFn           func(ctx context.Context, id string) error
	CompletedBetweenFn func(ctx context.Context, from, to time.Time) (int64, float64, error)
}

func (f *fakeAppointmentRepo) List(ctx context.Context, serviceID string) ([]models.Appointment, error) {
	return f.ListFn(ctx, serviceID)
}
func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return f.CreateFn(ctx, appointment)
}
func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	return f.UpdateStatusFn(ctx, id, status)
}
func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeAppointmentRepo) CompletedBetween(ctx context.Context, from, to time.Time) (int64, float64, error) {
	return f.CompletedBetweenFn(ctx, from, to)
}

type fakeUserRepo struct {
	FindByIDFn    func(ctx context.Context, id string) (*models.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*models.User, error)
	CreateFn      func(ctx context.Context, user *models.User) error
	ListFn        func(ctx context.Context) ([]repositories.UserRecord, error)
	ListStaffFn   func(ctx context.Context) ([]models.User, error)
	UpdateRoleFn  func(ctx context.Context, id string, role models.Role) (*repositories.UserRecord, error)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeUserRepo) List(ctx context.Context) ([]repositories.UserRecord, error) {
	return f.ListFn(ctx)
}
func (f *fakeUserRepo) ListStaff(ctx context.Context) ([]models.User, error) {
	return f.ListStaffFn(ctx)
}
func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role models.Role) (*repositories.UserRecord, error) {
	return f.UpdateRoleFn(ctx, id, role)
}

type fakeSettingsRepo struct {
	GetConfigFn           func(ctx context.Context) (*models.SystemConfig, error)
	UpdateConfigFn        func(ctx context.Context, config *models.SystemConfig) error
	ListWorkingHoursFn    func(ctx context.Context) ([]models.WorkingHours, error)
	ReplaceWorkingHoursFn func(ctx context.Context, staffID *string, hours []models.WorkingHours) error
}

func (f *fakeSettingsRepo) GetConfig(ctx context.Context) (*models.SystemConfig, error) {
	return f.GetConfigFn(ctx)
}
func (f *fakeSettingsRepo) UpdateConfig(ctx context.Context, config *models.SystemConfig) error {
	return f.UpdateConfigFn(ctx, config)
}
func (f *fakeSettingsRepo) ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	return f.ListWorkingHoursFn(ctx)
}
func (f *fakeSettingsRepo) ReplaceWorkingHours(ctx context.Context, staffID *string, hours []models.WorkingHours) error {
	return f.ReplaceWorkingHoursFn(ctx, staffID, hours)
}
