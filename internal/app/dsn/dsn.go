package dsn

import (
	"fmt"
	"os"
)

// FromEnv returns DATABASE_DSN when it is set, otherwise builds a Postgres DSN
// from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME. Returns "" when neither
// form is configured.
func FromEnv() string {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		return v
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		port,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"),
	)
}
