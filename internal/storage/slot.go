package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/florentv/irontrack/internal/config"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// StateKey is the single slot that holds the whole serialized AppState.
const StateKey = "irontrack-data"

// Slot is the durable key-value cell the adapter reads and writes. The
// production implementation sits on libsql; tests use an in-memory slot.
type Slot interface {
	// Read returns the stored document and whether the slot exists yet.
	Read() (string, bool, error)
	Write(value string) error
}

// DBSlot stores the state document as a single row in a libsql table.
type DBSlot struct {
	DB *sql.DB
}

// OpenSlot resolves the connection string (.env, then config file) and
// opens the backing database, creating the slot table if needed.
// Exits on failure: without the slot the whole tool is inoperable.
func OpenSlot() *DBSlot {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	url := os.Getenv("IRONTRACK_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "No IRONTRACK_DATABASE_URL set and no config file: %v\n", err)
			os.Exit(1)
		}
		url = cfg.Storage.ConnectionString
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := initializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	return &DBSlot{DB: db}
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS app_state (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );
    `)
	return err
}

func (s *DBSlot) Read() (string, bool, error) {
	var value string
	err := s.DB.QueryRow(
		"SELECT value FROM app_state WHERE key = ?", StateKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read state slot: %w", err)
	}
	return value, true, nil
}

func (s *DBSlot) Write(value string) error {
	_, err := s.DB.Exec(
		"INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)",
		StateKey, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write state slot: %w", err)
	}
	return nil
}
