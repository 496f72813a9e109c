package db

import (
	"log"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB opens a gorm handle over a sqlmock connection for tests.
func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})

	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

// GetMockDB swaps the shared handle for a mock so code under test that
// calls GetDb talks to sqlmock.
func GetMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	gormDB, mock := NewMockDB()
	db = gormDB
	return gormDB, mock
}
