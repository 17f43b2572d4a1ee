package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grievance-service/internal/domain"
)

// RatingStats aggregates persisted ratings.
type RatingStats struct {
	Total         int64
	Average       float64
	ByStars       map[int]int64
	ByLanguage    map[string]int64
	LatestRatings []domain.Rating
}

// RatingRepository encapsulates rating persistence.
type RatingRepository interface {
	Insert(ctx context.Context, rating *domain.Rating) error
	Latest(ctx context.Context, limit int) ([]domain.Rating, error)
	All(ctx context.Context) ([]domain.Rating, error)
	Stats(ctx context.Context) (*RatingStats, error)
}

type ratingRepository struct {
	pool *pgxpool.Pool
}

// NewRatingRepository instantiates the repository.
func NewRatingRepository(pool *pgxpool.Pool) RatingRepository {
	return &ratingRepository{pool: pool}
}

func (r *ratingRepository) Insert(ctx context.Context, rating *domain.Rating) error {
	const query = `
        INSERT INTO ratings (session_id, rating, label, language, ticket_id, feedback_text)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		rating.SessionID,
		rating.Rating,
		rating.Label,
		rating.Language,
		rating.TicketID,
		rating.FeedbackText,
	).Scan(&rating.ID, &rating.CreatedAt)
}

func (r *ratingRepository) Latest(ctx context.Context, limit int) ([]domain.Rating, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
        SELECT id, session_id, rating, label, language, ticket_id, feedback_text, created_at
        FROM ratings ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRatings(rows)
}

func (r *ratingRepository) All(ctx context.Context) ([]domain.Rating, error) {
	const query = `
        SELECT id, session_id, rating, label, language, ticket_id, feedback_text, created_at
        FROM ratings ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRatings(rows)
}

func (r *ratingRepository) Stats(ctx context.Context) (*RatingStats, error) {
	stats := &RatingStats{
		ByStars:    make(map[int]int64),
		ByLanguage: make(map[string]int64),
	}

	const totals = `SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM ratings`
	if err := r.pool.QueryRow(ctx, totals).Scan(&stats.Total, &stats.Average); err != nil {
		return nil, err
	}

	starRows, err := r.pool.Query(ctx, `SELECT rating, COUNT(*) FROM ratings GROUP BY rating`)
	if err != nil {
		return nil, err
	}
	defer starRows.Close()
	for starRows.Next() {
		var stars int
		var count int64
		if err := starRows.Scan(&stars, &count); err != nil {
			return nil, err
		}
		stats.ByStars[stars] = count
	}
	if err := starRows.Err(); err != nil {
		return nil, err
	}

	langRows, err := r.pool.Query(ctx, `SELECT language, COUNT(*) FROM ratings GROUP BY language`)
	if err != nil {
		return nil, err
	}
	defer langRows.Close()
	for langRows.Next() {
		var language string
		var count int64
		if err := langRows.Scan(&language, &count); err != nil {
			return nil, err
		}
		stats.ByLanguage[language] = count
	}
	if err := langRows.Err(); err != nil {
		return nil, err
	}

	latest, err := r.Latest(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.LatestRatings = latest
	return stats, nil
}

func scanRatings(rows pgx.Rows) ([]domain.Rating, error) {
	var result []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.SessionID,
			&rating.Rating,
			&rating.Label,
			&rating.Language,
			&rating.TicketID,
			&rating.FeedbackText,
			&rating.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rating)
	}
	return result, rows.Err()
}
