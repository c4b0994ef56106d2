package repositories

import (
	"context"

	"realestate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type AgentRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewAgentRepository(pool *pgxpool.Pool, logger *zap.Logger) *AgentRepository {
	return &AgentRepository{pool: pool, logger: logger}
}

// ListAll returns every agent ordered by first name.
func (r *AgentRepository) ListAll(ctx context.Context) ([]models.Agent, error) {
	query := `
		SELECT id, first_name, last_name, phone, email, image, bio, specialization
		FROM agents
		ORDER BY first_name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query agents")
	}
	defer rows.Close()

	var agents []models.Agent
	for rows.Next() {
		var a models.Agent
		err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Phone, &a.Email,
			&a.Image, &a.Bio, &a.Specialization)
		if err != nil {
			return nil, errors.Wrap(err, "scan agent")
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}
