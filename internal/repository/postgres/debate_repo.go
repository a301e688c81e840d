package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/arbiter/internal/domain"
)

type DebateRepo struct {
	pool *pgxpool.Pool
}

func NewDebateRepo(pool *pgxpool.Pool) *DebateRepo {
	return &DebateRepo{pool: pool}
}

const debateColumns = "id, owner_id, title, side_a, side_b, score_a, score_b, winner, feedback, created_at"

func (r *DebateRepo) Create(ctx context.Context, d *domain.Debate) error {
	query := `
		INSERT INTO debates (id, owner_id, title, side_a, side_b, score_a, score_b, winner, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.OwnerID, d.Title, d.SideA, d.SideB,
		d.ScoreA, d.ScoreB, d.Winner, d.Feedback, d.CreatedAt,
	)
	return err
}

func (r *DebateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	var d domain.Debate
	err := r.pool.QueryRow(ctx, "SELECT "+debateColumns+" FROM debates WHERE id = $1", id).Scan(
		&d.ID, &d.OwnerID, &d.Title, &d.SideA, &d.SideB,
		&d.ScoreA, &d.ScoreB, &d.Winner, &d.Feedback, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByOwner queries the debates table directly by owner, newest first.
// The owner column is the single source of truth for ownership; there is no
// per-user id list to keep in sync.
func (r *DebateRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Debate, error) {
	query := "SELECT " + debateColumns + ` FROM debates WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debates []domain.Debate
	for rows.Next() {
		var d domain.Debate
		if err := rows.Scan(
			&d.ID, &d.OwnerID, &d.Title, &d.SideA, &d.SideB,
			&d.ScoreA, &d.ScoreB, &d.Winner, &d.Feedback, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		debates = append(debates, d)
	}
	return debates, rows.Err()
}
