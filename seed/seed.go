// seed/seed.go
package seed

import (
	"log"
	"os"

	"fugazero-backend/models"

	"gorm.io/gorm"
)

// Run loads the reference data the application cannot work without: the
// three roles, an initial admin account and a starter service catalog.
// It is idempotent; existing rows are left untouched.
func Run(db *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Acceso completo al sistema"},
		{Name: models.RoleSecretary, Description: "Gestión de clientes, trabajos y facturación"},
		{Name: models.RoleTechnician, Description: "Ejecución de trabajos asignados"},
	}

	for i := range roles {
		if err := db.Where("name = ?", roles[i].Name).FirstOrCreate(&roles[i]).Error; err != nil {
			return err
		}
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@fugazero.cl"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "cambiar.ahora"
		log.Println("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		admin := models.User{
			Name:     "Administrador",
			Email:    adminEmail,
			Password: adminPassword, // hashed in BeforeCreate hook
			RoleID:   adminRole.ID,
			IsActive: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	catalog := []models.Service{
		{Name: "Detección de fugas con geófono", Price: 75000, Category: "Detección", EstimatedMinutes: 120},
		{Name: "Detección de fugas con gas trazador", Price: 95000, Category: "Detección", EstimatedMinutes: 180},
		{Name: "Reparación de cañería interior", Price: 60000, Category: "Reparación", EstimatedMinutes: 150},
		{Name: "Destape de alcantarillado", Price: 45000, Category: "Destape", EstimatedMinutes: 90},
		{Name: "Instalación de llave de paso", Price: 35000, Category: "Instalación", EstimatedMinutes: 60},
		{Name: "Visita de diagnóstico", Price: 25000, Category: "Diagnóstico", EstimatedMinutes: 45},
	}

	for i := range catalog {
		if err := db.Where("name = ?", catalog[i].Name).FirstOrCreate(&catalog[i]).Error; err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}
