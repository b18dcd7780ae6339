// README: Plan store backed by PostgreSQL.
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the plans table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS plans (
            id          TEXT PRIMARY KEY,
            destination TEXT NOT NULL,
            request     JSONB NOT NULL,
            plan        JSONB NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL
        )`)
	return err
}

func (s *Store) Create(ctx context.Context, p *TravelPlan) error {
	reqJSON, err := json.Marshal(p.Request)
	if err != nil {
		return err
	}
	planJSON, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO plans (id, destination, request, plan, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Destination, reqJSON, planJSON, p.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*TravelPlan, error) {
	row := s.db.QueryRow(ctx, `
        SELECT plan, created_at FROM plans WHERE id = $1`, id,
	)

	var planJSON []byte
	var createdAt time.Time
	err := row.Scan(&planJSON, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p TravelPlan
	if err := json.Unmarshal(planJSON, &p); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt
	return &p, nil
}
