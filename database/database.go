package database

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"backlog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")

	var (
		db  *gorm.DB
		err error
	)
	if host != "" {
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		sslmode := os.Getenv("DB_SSLMODE")

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, user, pass, name, port, sslmode,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// No postgres configured: fall back to an embedded sqlite file.
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "backlog.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db
	log.Println("Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate := true
	if autoMigrateEnv != "" {
		autoMigrate, err = strconv.ParseBool(autoMigrateEnv)
		if err != nil {
			log.Printf("Invalid value for DB_AUTO_MIGRATE: %s\n", autoMigrateEnv)
			autoMigrate = true
		}
	}

	if autoMigrate {
		if err := Migrate(DB); err != nil {
			log.Fatal("Failed to auto-migrate database:", err)
		}
		log.Println("Auto migration completed")
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Platform{},
		&models.Genre{},
		&models.Game{},
		&models.UserWallet{},
		&models.WalletTransaction{},
		&models.GameComment{},
	)
}
