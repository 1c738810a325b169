package db

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens the operations archive database and verifies the
// connection before returning it.
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, db.Ping()
}
