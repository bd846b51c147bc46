package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// ConnectionURL prefers DATABASE_URL and otherwise assembles the URL from the POSTGRES_* variables.
func ConnectionURL() string {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", os.Getenv("POSTGRES_HOST"), port),
		Path:   os.Getenv("POSTGRES_DATABASE"),
	}

	if sslmode := os.Getenv("POSTGRES_SSLMODE"); sslmode != "" {
		u.RawQuery = url.Values{"sslmode": {sslmode}}.Encode()
	}

	return u.String()
}

func Connect() error {
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("POSTGRES_HOST") == "" {
		slog.Warn("neither DATABASE_URL nor POSTGRES_HOST is set")
	}

	var err error
	DB, err = sql.Open("postgres", ConnectionURL())
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
