package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

type PlatformConfig struct {
	BaseURL     string
	AccessToken string
}

func LoadPlatformConfig() (*PlatformConfig, error) {
	cfg := &PlatformConfig{
		BaseURL:     os.Getenv("PLATFORM_API_URL"),
		AccessToken: os.Getenv("PLATFORM_ACCESS_TOKEN"),
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("PLATFORM_API_URL not configured")
	}
	return cfg, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Event{},
		&models.Look{},
		&models.Attendee{},
		&models.Order{},
		&models.OrderItem{},
		&models.Discount{},
		&models.RMA{},
		&models.RMAItem{},
		&models.ProductItem{},
	)
	if err != nil {
		return nil, err
	}

	seedRoles(db)
	seedAdminUser(db)

	return db, nil
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: "admin"},
		{Name: "member"},
	}

	for _, role := range roles {
		var existingRole models.Role
		result := db.Where("name = ?", role.Name).First(&existingRole)
		if result.Error != nil {
			db.Create(&role)
		}
	}
}

// seedAdminUser creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Without it a fresh database has no account allowed to
// activate registrations.
func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var adminRole models.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return
	}

	var existingUser models.User
	if err := db.Where("email = ?", models.NormalizeEmail(email)).First(&existingUser).Error; err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	db.Create(&models.User{
		Email:         email,
		Password:      string(hashedPassword),
		RoleID:        adminRole.ID,
		AccountStatus: models.AccountStatusActive,
	})
}
