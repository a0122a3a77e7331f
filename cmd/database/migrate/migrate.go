package migration

import (
	"FoodBridge/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.NGO{},
		&entities.Volunteer{},
		&entities.Donation{},
		&entities.Mission{},
		&entities.UserActivity{},
		&entities.Notification{},
		&entities.UserSetting{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
