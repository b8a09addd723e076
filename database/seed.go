package database

import (
	"aurora-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed loads the development fixtures. Every record is created with
// FirstOrCreate so repeated runs are no-ops.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	users := []models.User{
		{ID: "user-admin", Name: "Admin Centro Belleza", Email: "admin@centrobelleza.com", Role: models.RoleAdmin, Enabled: true},
		{ID: "user-regular", Name: "Usuario Regular", Email: "user@centrobelleza.com", Role: models.RoleUser, Enabled: true},
		{ID: "user-staff", Name: "María González - Estilista", Email: "staff@centrobelleza.com", Role: models.RoleStaff, Enabled: true},
	}
	for i := range users {
		if err := db.Where(models.User{Email: users[i].Email}).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	categories := []models.ServiceCategory{
		{ID: "cat-hair", Name: "Cabello", Description: "Servicios de corte, peinado y coloración", Color: "#F472B6", State: models.LifecycleActive},
		{ID: "cat-nails", Name: "Uñas", Description: "Manicura, pedicura y nail art", Color: "#34D399", State: models.LifecycleActive},
		{ID: "cat-facial", Name: "Facial", Description: "Tratamientos faciales y cuidado de la piel", Color: "#60A5FA", State: models.LifecycleActive},
		{ID: "cat-massage", Name: "Masajes", Description: "Masajes relajantes y terapéuticos", Color: "#A78BFA", State: models.LifecycleActive},
	}
	for i := range categories {
		if err := db.Where(models.ServiceCategory{ID: categories[i].ID}).FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	adminID := users[0].ID
	hair, nails, facial, massage := "cat-hair", "cat-nails", "cat-facial", "cat-massage"

	services := []models.Service{
		{ID: "service-hair-cut", Name: "Corte de Cabello", Description: "Corte profesional adaptado a tu estilo y tipo de rostro", Duration: 45, Price: 35.00, CategoryID: &hair},
		{ID: "service-hair-color", Name: "Coloración Completa", Description: "Cambio de color completo con productos premium", Duration: 120, Price: 85.00, CategoryID: &hair},
		{ID: "service-hair-highlights", Name: "Mechas y Reflejos", Description: "Mechas californianas, babylights o reflejos", Duration: 90, Price: 65.00, CategoryID: &hair},
		{ID: "service-manicure", Name: "Manicura Completa", Description: "Cuidado completo de uñas con esmaltado", Duration: 45, Price: 25.00, CategoryID: &nails},
		{ID: "service-pedicure", Name: "Pedicura Completa", Description: "Cuidado completo de pies y uñas", Duration: 60, Price: 30.00, CategoryID: &nails},
		{ID: "service-nail-art", Name: "Nail Art Personalizado", Description: "Diseños únicos y personalizados en tus uñas", Duration: 75, Price: 45.00, CategoryID: &nails},
		{ID: "service-facial-basic", Name: "Limpieza Facial Básica", Description: "Limpieza profunda e hidratación facial", Duration: 60, Price: 40.00, CategoryID: &facial},
		{ID: "service-facial-anti-aging", Name: "Tratamiento Anti-Edad", Description: "Tratamiento especializado para combatir signos de envejecimiento", Duration: 90, Price: 75.00, CategoryID: &facial},
		{ID: "service-massage-relaxing", Name: "Masaje Relajante", Description: "Masaje completo para relajar cuerpo y mente", Duration: 60, Price: 50.00, CategoryID: &massage},
	}
	for i := range services {
		services[i].CreatedBy = adminID
		services[i].State = models.LifecycleActive
		if err := db.Where(models.Service{ID: services[i].ID}).FirstOrCreate(&services[i]).Error; err != nil {
			return err
		}
	}

	if err := seedWorkingHours(db, users[2].ID); err != nil {
		return err
	}

	systemConfig := models.SystemConfig{
		ID:                  models.SystemConfigID,
		AppointmentDuration: 30,
		AdvanceBookingDays:  60,
		CancellationHours:   24,
		WorkingDaysStart:    1,
		WorkingDaysEnd:      6,
		BusinessName:        "Centro de Belleza Aurora",
		BusinessPhone:       "+34 912 345 678",
		BusinessEmail:       "info@centrobellezaaurora.com",
		BusinessAddress:     "Calle de la Belleza 123, 28001 Madrid",
	}
	if err := db.Where(models.SystemConfig{ID: systemConfig.ID}).FirstOrCreate(&systemConfig).Error; err != nil {
		return err
	}

	logger.Info("seed complete",
		zap.Int("users", len(users)),
		zap.Int("categories", len(categories)),
		zap.Int("services", len(services)))
	return nil
}

func seedWorkingHours(db *gorm.DB, staffID string) error {
	var count int64
	if err := db.Model(&models.WorkingHours{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Salon-wide schedule, Monday through Saturday.
	hours := []models.WorkingHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 4, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "16:00"},
	}
	// The stylist starts earlier on weekdays.
	for day := 1; day <= 5; day++ {
		hours = append(hours, models.WorkingHours{DayOfWeek: day, StartTime: "08:30", EndTime: "17:30", StaffID: &staffID})
	}
	hours = append(hours, models.WorkingHours{DayOfWeek: 6, StartTime: "09:00", EndTime: "15:00", StaffID: &staffID})

	return db.Create(&hours).Error
}
