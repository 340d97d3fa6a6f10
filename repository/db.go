package repository

import (
	"fmt"
	"os"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB
var dbOnce sync.Once

type DatabaseConfig struct {
	SQLitePath string `mapstructure:"sqlite_path"`
	MySQLDSN   string `mapstructure:"mysql_dsn"`
}

func loadDatabaseConfig() DatabaseConfig {
	dbConfig := DatabaseConfig{
		SQLitePath: "library.db",
	}
	if path := os.Getenv("LIBRARY_DB"); path != "" {
		dbConfig.SQLitePath = path
	}
	dbConfig.MySQLDSN = os.Getenv("LIBRARY_MYSQL_DSN")
	return dbConfig
}

// InitDatabase opens the configured store and creates the schema on first
// run. SQLite is the default; LIBRARY_MYSQL_DSN switches to MySQL.
func InitDatabase() *gorm.DB {
	dbOnce.Do(
		func() {
			dbConfig := loadDatabaseConfig()
			dialector := sqlite.Open(dbConfig.SQLitePath)
			if dbConfig.MySQLDSN != "" {
				dialector = mysql.Open(dbConfig.MySQLDSN)
			}
			var err error
			db, err = gorm.Open(dialector, &gorm.Config{})
			if err != nil {
				panic(fmt.Errorf("failed to connect database, error: %v", err))
			}
			if err = Migrate(db); err != nil {
				panic(fmt.Errorf("failed to migrate schema, error: %v", err))
			}
		},
	)

	return db
}

// Migrate creates or updates the books, users and loans tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Book{}, &User{}, &Loan{})
}
