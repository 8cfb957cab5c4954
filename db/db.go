package db

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"
)

type DataStore interface {
	GetOpenConnection() *sql.DB
	ConnectionLock()
	ConnectionUnlock()
}

type sqliteDataStore struct {
	dbFilePath     string
	logger         hclog.Logger
	openConnection *sql.DB
	connectionLock sync.Mutex
}

func NewSqliteDataStore(logger hclog.Logger, dbFilePath string) DataStore {
	return &sqliteDataStore{
		dbFilePath: dbFilePath,
		logger:     logger.Named("sqlite-data-store"),
	}
}

// GetOpenConnection opens the database connection once and reuses it
func (ds *sqliteDataStore) GetOpenConnection() *sql.DB {
	if ds.openConnection != nil {
		return ds.openConnection
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=1", ds.dbFilePath))
	if err != nil {
		ds.logger.Error("failed to open database connection", "error", err)
		return nil
	}

	ds.openConnection = conn
	return ds.openConnection
}

func (ds *sqliteDataStore) ConnectionLock() {
	ds.connectionLock.Lock()
}

func (ds *sqliteDataStore) ConnectionUnlock() {
	ds.connectionLock.Unlock()
}

// RunSetup creates the content tables if they do not exist yet.
func RunSetup(store DataStore) error {
	store.ConnectionLock()
	defer store.ConnectionUnlock()

	conn := store.GetOpenConnection()
	if conn == nil {
		return fmt.Errorf("no open database connection")
	}

	_, err := conn.Exec(GetSetupSQL())
	return err
}

func GetSetupSQL() string {
	return `
CREATE TABLE IF NOT EXISTS about
(
    id           TEXT PRIMARY KEY,
    name         TEXT      NOT NULL,
    title        TEXT      NOT NULL,
    bio          TEXT      NOT NULL,
    short_bio    TEXT      NOT NULL DEFAULT '',
    avatar_url   TEXT      NOT NULL DEFAULT '',
    resume_url   TEXT      NOT NULL DEFAULT '',
    location     TEXT      NOT NULL DEFAULT '',
    is_active    boolean   NOT NULL DEFAULT false,
    date_updated datetime  NOT NULL
);

CREATE TABLE IF NOT EXISTS projects
(
    id               TEXT PRIMARY KEY,
    slug             TEXT      NOT NULL UNIQUE,
    title            TEXT      NOT NULL,
    description      TEXT      NOT NULL,
    long_description TEXT      NOT NULL DEFAULT '',
    featured_image   TEXT      NOT NULL DEFAULT '',
    live_url         TEXT      NOT NULL DEFAULT '',
    github_url       TEXT      NOT NULL DEFAULT '',
    tech_stack       TEXT      NOT NULL DEFAULT '[]',
    is_featured      boolean   NOT NULL DEFAULT false,
    is_published     boolean   NOT NULL DEFAULT true,
    display_order    INTEGER   NOT NULL DEFAULT 0,
    date_created     datetime  NOT NULL
);

CREATE TABLE IF NOT EXISTS blog_posts
(
    id             TEXT PRIMARY KEY,
    slug           TEXT      NOT NULL UNIQUE,
    title          TEXT      NOT NULL,
    content        TEXT      NOT NULL,
    excerpt        TEXT      NOT NULL DEFAULT '',
    featured_image TEXT      NOT NULL DEFAULT '',
    tags           TEXT      NOT NULL DEFAULT '[]',
    is_featured    boolean   NOT NULL DEFAULT false,
    is_published   boolean   NOT NULL DEFAULT false,
    reading_time   INTEGER   NOT NULL DEFAULT 0,
    published_at   datetime,
    date_created   datetime  NOT NULL
);

CREATE TABLE IF NOT EXISTS skills
(
    id            TEXT PRIMARY KEY,
    name          TEXT      NOT NULL,
    category      TEXT      NOT NULL,
    proficiency   INTEGER   NOT NULL DEFAULT 3,
    icon          TEXT      NOT NULL DEFAULT '',
    display_order INTEGER   NOT NULL DEFAULT 0,
    is_active     boolean   NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS contact_info
(
    id           TEXT PRIMARY KEY,
    email        TEXT      NOT NULL,
    linkedin_url TEXT      NOT NULL DEFAULT '',
    github_url   TEXT      NOT NULL DEFAULT '',
    twitter_url  TEXT      NOT NULL DEFAULT '',
    other_links  TEXT      NOT NULL DEFAULT '{}',
    is_active    boolean   NOT NULL DEFAULT true
);
`
}
