package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

const uniqueViolation = "23505"

const playerColumns = `id, code, name, position, level, goals, red_cards`

// PostgresStore persists the player registry in Postgres.
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore opens a Postgres connection using the given connection string.
func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

// Migrate creates the players table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id        TEXT PRIMARY KEY,
			code      TEXT NOT NULL UNIQUE,
			name      TEXT NOT NULL,
			position  TEXT NOT NULL,
			level     INT  NOT NULL CHECK (level BETWEEN 1 AND 10),
			goals     INT  NOT NULL DEFAULT 0,
			red_cards INT  NOT NULL DEFAULT 0
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS players_name_lower_idx ON players (LOWER(name));`,
	}
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}

// Ping verifies the connection is usable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

func (s *PostgresStore) ListPlayers(ctx context.Context) ([]players.Player, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	result := []players.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating player rows: %w", err)
	}
	return result, nil
}

func (s *PostgresStore) GetPlayer(ctx context.Context, id string) (players.Player, error) {
	return s.queryOne(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (players.Player, error) {
	return s.queryOne(ctx, `SELECT `+playerColumns+` FROM players WHERE code = $1`, code)
}

func (s *PostgresStore) FindByName(ctx context.Context, name string) (players.Player, error) {
	return s.queryOne(ctx, `SELECT `+playerColumns+` FROM players WHERE LOWER(name) = LOWER(TRIM($1))`, name)
}

// AddPlayer inserts a new player with the next sequential code.
func (s *PostgresStore) AddPlayer(ctx context.Context, p players.Player) (players.Player, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return players.Player{}, fmt.Errorf("begin add player tx: %w", err)
	}
	defer tx.Rollback()

	existing, err := existingCodes(ctx, tx)
	if err != nil {
		return players.Player{}, err
	}
	p = prepareNew(p, existing)

	const q = `
		INSERT INTO players (id, code, name, position, level, goals, red_cards)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, q, p.ID, p.Code, p.Name, string(p.Position), p.Level, p.Goals, p.RedCards); err != nil {
		return players.Player{}, mapWriteError(fmt.Sprintf("inserting player %s", p.Name), err)
	}
	if err := tx.Commit(); err != nil {
		return players.Player{}, fmt.Errorf("commit add player tx: %w", err)
	}
	return p, nil
}

// UpdatePlayer updates the mutable columns of an existing player.
func (s *PostgresStore) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	const q = `
		UPDATE players
		SET name = $1, position = $2, level = $3, goals = $4, red_cards = $5
		WHERE id = $6
		RETURNING code
	`
	err := s.DB.QueryRowContext(ctx, q, p.Name, string(p.Position), p.Level, p.Goals, p.RedCards, p.ID).Scan(&p.Code)
	if errors.Is(err, sql.ErrNoRows) {
		return players.Player{}, players.ErrNotFound
	}
	if err != nil {
		return players.Player{}, mapWriteError(fmt.Sprintf("updating player %s", p.ID), err)
	}
	p.FixedInTeam1 = false
	return p, nil
}

func (s *PostgresStore) DeletePlayer(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting player %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting player %s: %w", id, err)
	}
	if n == 0 {
		return players.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryOne(ctx context.Context, q string, arg string) (players.Player, error) {
	p, err := scanPlayer(s.DB.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return players.Player{}, players.ErrNotFound
	}
	if err != nil {
		return players.Player{}, fmt.Errorf("querying player: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (players.Player, error) {
	var p players.Player
	var pos string
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &pos, &p.Level, &p.Goals, &p.RedCards); err != nil {
		return players.Player{}, err
	}
	p.Position = players.Position(pos)
	return p, nil
}

func existingCodes(ctx context.Context, tx *sql.Tx) ([]players.Player, error) {
	rows, err := tx.QueryContext(ctx, `SELECT code FROM players`)
	if err != nil {
		return nil, fmt.Errorf("querying player codes: %w", err)
	}
	defer rows.Close()

	var existing []players.Player
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning player code: %w", err)
		}
		existing = append(existing, players.Player{Code: code})
	}
	return existing, rows.Err()
}

func mapWriteError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "players_name_lower_idx" {
		return players.ErrDuplicateName
	}
	return fmt.Errorf("%s: %w", action, err)
}
