package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var remoteSchemes = []string{"libsql://", "http://", "https://", "ws://", "wss://"}

// Open connects to a Turso/libsql server for remote URLs and to a local
// SQLite file otherwise.
func Open(ctx context.Context, url, authToken string) (*sql.DB, error) {
	driver, dsn := dataSource(url, authToken)

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	if driver == "libsql" {
		database.SetMaxOpenConns(25)
		database.SetMaxIdleConns(25)
		database.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// sqlite allows a single writer; :memory: is also per connection
		database.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

func dataSource(url, authToken string) (driver, dsn string) {
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(url, scheme) {
			if authToken == "" {
				return "libsql", url
			}
			return "libsql", fmt.Sprintf("%s?authToken=%s", url, authToken)
		}
	}
	return "sqlite", url
}
