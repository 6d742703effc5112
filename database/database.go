package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/apquiz/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	defaultSQLitePath = "quiz.db"
)

// NewDatabase opens the store named by DATABASE_URL and closes it when the
// fx application stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection")
			return sqlDB.Close()
		},
	})
	return db, nil
}

// Open connects to url without any lifecycle management. Tests use it with a
// temporary SQLite file.
func Open(url string) (*gorm.DB, error) {
	driver, dsn := ParseURL(url)

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB handle: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Info().Str("driver", driver).Msg("Database connection established")
	return db, nil
}

// ParseURL maps DATABASE_URL onto a driver name and the DSN that driver
// expects. Anything without a recognised scheme is a SQLite file path.
func ParseURL(url string) (driver string, dsn string) {
	url = strings.TrimSpace(url)
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url
	case strings.HasPrefix(url, "mysql://"):
		dsn = strings.TrimPrefix(url, "mysql://")
		if !strings.Contains(dsn, "parseTime=") {
			dsn = appendQuery(dsn, "parseTime=true")
		}
		return DriverMySQL, dsn
	case strings.HasPrefix(url, "sqlite://"):
		url = strings.TrimPrefix(url, "sqlite://")
	}

	if url == "" {
		url = defaultSQLitePath
	}
	if !strings.Contains(url, "_foreign_keys=") {
		url = appendQuery(url, "_foreign_keys=on")
	}
	if !strings.Contains(url, "_busy_timeout=") {
		url = appendQuery(url, "_busy_timeout=5000")
	}
	return DriverSQLite, url
}

func appendQuery(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}
