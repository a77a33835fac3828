package db

import (
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/creamery-api/internal/config"
)

// Open connects to the database selected by conf.Database.Driver.
// For Postgres, database.url takes precedence over the postgres section.
func Open(conf *config.AppConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database.Driver {
	case config.DriverMySQL:
		db, err = OpenMySQL(conf.MySQL)
	default:
		if conf.Database.URL != "" {
			db, err = OpenPostgresWithURL(conf.Database.URL)
		} else {
			db, err = OpenPostgres(conf.Postgres)
		}
	}
	if err != nil {
		return nil, err
	}

	if err = configurePool(db, conf.Database); err != nil {
		return nil, err
	}

	zap.L().Info("database connection established", zap.String("driver", conf.Database.Driver))

	return db, nil
}

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return OpenPostgresWithURL(conf.DSN())
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(postgres) -> %w", err)
	}

	return db, nil
}

func OpenMySQL(conf *config.MySQLConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(MySQLDSN(conf)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open(mysql) -> %w", err)
	}

	return db, nil
}

// MySQLDSN enables parseTime so DATE columns scan into time.Time.
func MySQLDSN(conf *config.MySQLConfig) string {
	c := mysql.NewConfig()
	c.User = conf.User
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(conf.Host, conf.Port)
	c.DBName = conf.DB
	c.ParseTime = true

	return c.FormatDSN()
}

func configurePool(db *gorm.DB, conf *config.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)

	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	return sqlDB.Close()
}
