package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rallyhq/matchpoint/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

var _db *sql.DB

func GetDB() *sql.DB {
	return _db
}

func Init() *sql.DB {
	cfg := config.GetEnv()
	src := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_HOST, cfg.DB_PORT, cfg.DB_NAME)
	db, err := sql.Open("mysql", src)
	if err != nil {
		panic(err)
	}

	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err = runMigrations(db, cfg.DB_NAME); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	log.Printf("Established connection to database")

	_db = db

	return db
}

func runMigrations(db *sql.DB, name string) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{DatabaseName: name})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
