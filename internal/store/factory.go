package store

import "fmt"

// Config selects and configures a backend.
type Config struct {
	Backend         string // "file" (default), "memory", "mongo", "postgres"
	DataDir         string
	MongoURI        string
	MongoDatabase   string
	PostgresConnStr string
}

// New creates a Store based on the configured backend name.
//
// Supported backends:
//
//	"file"     - one JSON array file per collection in DataDir (default)
//	"memory"   - in-memory, ephemeral
//	"mongo"    - one MongoDB document per collection
//	"postgres" - one JSONB row per collection
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "file", "":
		return NewFileStore(cfg.DataDir)
	case "memory":
		return NewMemoryStore(), nil
	case "mongo":
		return NewMongoStore(cfg.MongoURI, cfg.MongoDatabase)
	case "postgres":
		return NewPostgresStore(cfg.PostgresConnStr)
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: file, memory, mongo, postgres)", cfg.Backend)
	}
}
