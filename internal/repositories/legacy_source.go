package repositories

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"crmlite/internal/config"
	"crmlite/internal/models"
)

// LegacyClientSource reads client rows out of the old relational
// system. It is consulted on list and on deletes that target a
// non-Mongo id. The connection is opened per call and closed on every
// exit path; nothing here is allowed to hold state between requests.
type LegacyClientSource struct {
	dsn string
}

func NewLegacyClientSource(cfg config.LegacyConfig) *LegacyClientSource {
	dsn := fmt.Sprintf("postgres://%s:%s@%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.ConnectString)
	return &LegacyClientSource{dsn: dsn}
}

func (s *LegacyClientSource) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open legacy db: %w", err)
	}
	return db, nil
}

// ListClients maps legacy user rows onto the client shape. The legacy
// schema has no revenue or clientId; rows come back Active with zero
// revenue, tagged with the legacy source.
func (s *LegacyClientSource) ListClients(ctx context.Context) ([]*models.Client, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, username, email FROM users`)
	if err != nil {
		return nil, fmt.Errorf("query legacy users: %w", err)
	}
	defer rows.Close()

	var out []*models.Client
	for rows.Next() {
		var id, name, email string
		if err := rows.Scan(&id, &name, &email); err != nil {
			return nil, fmt.Errorf("scan legacy user: %w", err)
		}
		out = append(out, &models.Client{
			ClientID: id,
			Name:     name,
			Email:    email,
			Status:   models.ClientStatusActive,
			Revenue:  0,
			Source:   models.SourceLegacy,
		})
	}
	return out, rows.Err()
}

func (s *LegacyClientSource) DeleteClient(ctx context.Context, id string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete legacy user: %w", err)
	}
	return nil
}
