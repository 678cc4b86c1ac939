package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS scores (
		id BIGSERIAL PRIMARY KEY,
		run_id TEXT NOT NULL UNIQUE,
		game_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(game_id, player_name);
`

// openPostgres connects to a PostgreSQL server given a postgres:// DSN.
func openPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	return connect(db, dialectPostgres, postgresSchema)
}
