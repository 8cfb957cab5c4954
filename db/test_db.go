package db

import (
	"database/sql"
	"log"

	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"
)

// GetTestDataStore returns an in-memory store with the content tables
// created, for stateless tests.
func GetTestDataStore() DataStore {
	store := &sqliteDataStore{
		dbFilePath: ":memory:",
		logger:     hclog.NewNullLogger(),
	}

	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	if err != nil {
		log.Fatalln("failed to open in-memory database", err)
	}
	// a second pooled connection would see its own empty in-memory database
	conn.SetMaxOpenConns(1)
	store.openConnection = conn

	_, err = conn.Exec(GetSetupSQL())
	if err != nil {
		log.Fatalln("failed to create test tables", err)
	}

	return store
}
