package client

import (
	"fmt"
	"storefront-checkout/internal/model"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const mysqlScheme = "mysql://"

// InitDBClient opens the notification log store. A "mysql://" URL selects MySQL,
// anything else is treated as a sqlite DSN.
func InitDBClient(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn, ok := strings.CutPrefix(databaseURL, mysqlScheme); ok {
		dialector = mysql.Open(dsn)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.NotificationLog{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
