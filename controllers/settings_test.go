package controllers

import (
	"context"
	"net/http"
	"testing"

	"aurora-backend/models"
)

func TestGetSettings(t *testing.T) {
	settings := &fakeSettingsRepo{
		GetConfigFn: func(ctx context.Context) (*models.SystemConfig, error) {
			return &models.SystemConfig{ID: models.SystemConfigID, AppointmentDuration: 30, BusinessName: "Centro de Belleza Aurora"}, nil
		},
		ListWorkingHoursFn: func(ctx context.Context) ([]models.WorkingHours, error) {
			return []models.WorkingHours{
				{ID: "wh-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
			}, nil
		},
	}
	controller := NewSettingsController(settings, testLogger)

	w := perform(t, http.MethodGet, "/api/settings", "/api/settings", nil, userPrincipal, controller.Get)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp SettingsResponse
	decode(t, w, &resp)
	if resp.Config == nil || resp.Config.BusinessName != "Centro de Belleza Aurora" {
		t.Errorf("unexpected config %+v", resp.Config)
	}
	if len(resp.WorkingHours) != 1 || resp.WorkingHours[0].DayOfWeek != 1 {
		t.Errorf("unexpected working hours %+v", resp.WorkingHours)
	}
}

func TestUpdateWorkingHoursValidation(t *testing.T) {
	tests := []struct {
		name  string
		hours []map[string]any
	}{
		{"day out of range", []map[string]any{{"dayOfWeek": 7, "startTime": "09:00", "endTime": "18:00"}}},
		{"negative day", []map[string]any{{"dayOfWeek": -1, "startTime": "09:00", "endTime": "18:00"}}},
		{"bad start time", []map[string]any{{"dayOfWeek": 1, "startTime": "9am", "endTime": "18:00"}}},
		{"bad end time", []map[string]any{{"dayOfWeek": 1, "startTime": "09:00", "endTime": "25:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &fakeSettingsRepo{
				ReplaceWorkingHoursFn: func(ctx context.Context, staffID *string, hours []models.WorkingHours) error {
					t.Fatal("replace should not be reached")
					return nil
				},
			}
			controller := NewSettingsController(settings, testLogger)

			body := map[string]any{"hours": tt.hours}
			w := perform(t, http.MethodPut, "/api/settings/working-hours", "/api/settings/working-hours", body, adminPrincipal, controller.UpdateWorkingHours)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateWorkingHoursScopesToStaff(t *testing.T) {
	var gotStaff *string
	var gotHours []models.WorkingHours
	settings := &fakeSettingsRepo{
		ReplaceWorkingHoursFn: func(ctx context.Context, staffID *string, hours []models.WorkingHours) error {
			gotStaff, gotHours = staffID, hours
			return nil
		},
		ListWorkingHoursFn: func(ctx context.Context) ([]models.WorkingHours, error) {
			return nil, nil
		},
	}
	controller := NewSettingsController(settings, testLogger)

	body := map[string]any{
		"staffId": "user-staff",
		"hours": []map[string]any{
			{"dayOfWeek": 1, "startTime": "08:30", "endTime": "17:30"},
			{"dayOfWeek": 6, "startTime": "09:00", "endTime": "15:00"},
		},
	}
	w := perform(t, http.MethodPut, "/api/settings/working-hours", "/api/settings/working-hours", body, adminPrincipal, controller.UpdateWorkingHours)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotStaff == nil || *gotStaff != "user-staff" {
		t.Errorf("staff scope = %v", gotStaff)
	}
	if len(gotHours) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(gotHours))
	}
	for _, h := range gotHours {
		if h.StaffID == nil || *h.StaffID != "user-staff" {
			t.Errorf("window %+v not scoped to the staff member", h)
		}
	}
}

func TestUpdateConfig(t *testing.T) {
	var stored models.SystemConfig
	settings := &fakeSettingsRepo{
		UpdateConfigFn: func(ctx context.Context, config *models.SystemConfig) error {
			stored = *config
			return nil
		},
	}
	controller := NewSettingsController(settings, testLogger)

	body := map[string]any{
		"appointmentDuration": 30,
		"advanceBookingDays":  60,
		"cancellationHours":   24,
		"workingDaysStart":    1,
		"workingDaysEnd":      6,
		"businessName":        "Centro de Belleza Aurora",
	}
	w := perform(t, http.MethodPut, "/api/settings", "/api/settings", body, adminPrincipal, controller.UpdateConfig)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stored.ID != models.SystemConfigID {
		t.Errorf("config must target the singleton row, got id %q", stored.ID)
	}
	if stored.AppointmentDuration != 30 || stored.BusinessName != "Centro de Belleza Aurora" {
		t.Errorf("unexpected stored config %+v", stored)
	}
}

func TestUpdateConfigRejectsZeroDuration(t *testing.T) {
	settings := &fakeSettingsRepo{
		UpdateConfigFn: func(ctx context.Context, config *models.SystemConfig) error {
			t.Fatal("update should not be reached")
			return nil
		},
	}
	controller := NewSettingsController(settings, testLogger)

	body := map[string]any{"appointmentDuration": 0, "advanceBookingDays": 60, "cancellationHours": 24}
	w := perform(t, http.MethodPut, "/api/settings", "/api/settings", body, adminPrincipal, controller.UpdateConfig)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
