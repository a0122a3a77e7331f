package config

import (
	"FoodBridge/internal/utils"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch utils.GetConfig("DB_DRIVER") {
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfig("DB_PATH"))
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", utils.GetConfig("DB_DRIVER"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
