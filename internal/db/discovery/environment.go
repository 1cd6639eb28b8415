package discovery

import (
	"os"
	"strconv"

	"github.com/dbtea/dbtea/internal/db/connection"
)

// EnvironmentConfig builds a connection config from the standard libpq
// environment variables. Returns nil when none of PGHOST, PGDATABASE and
// PGUSER is set. A missing PGPASSWORD falls back to the .pgpass file.
func EnvironmentConfig() *connection.Config {
	host := os.Getenv("PGHOST")
	portStr := os.Getenv("PGPORT")
	database := os.Getenv("PGDATABASE")
	user := os.Getenv("PGUSER")
	password := os.Getenv("PGPASSWORD")
	sslMode := os.Getenv("PGSSLMODE")

	if host == "" && database == "" && user == "" {
		return nil
	}

	if host == "" {
		host = "localhost"
	}
	if user == "" {
		user = os.Getenv("USER")
	}
	if database == "" {
		database = user
	}

	port := 5432
	if portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && p > 0 && p <= 65535 {
			port = p
		}
	}

	if sslMode == "" {
		sslMode = "prefer"
	}

	if password == "" {
		password = FindPassword(host, port, database, user)
	}

	return &connection.Config{
		Name:     "environment",
		Host:     host,
		Port:     port,
		Database: database,
		User:     user,
		Password: password,
		SSLMode:  sslMode,
	}
}
