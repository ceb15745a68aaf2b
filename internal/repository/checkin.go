package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service"
)

type CheckInRepository struct {
	db *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) service.CheckInRepository {
	return &CheckInRepository{db: db}
}

// Save сохраняет запись о попытке отметки в бд
func (r *CheckInRepository) Save(ctx context.Context, check *models.CheckIn) error {
	query := `
		INSERT INTO checkins (user_id, latitude, longitude, venue_name, distance_meters, is_within)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Latitude,
		check.Longitude,
		check.VenueName,
		check.DistanceMeters,
		check.IsWithin,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

// List возвращает список отметок с пагинацией, новые первыми
func (r *CheckInRepository) List(ctx context.Context, page, pageSize int) ([]*models.CheckIn, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			user_id,
			latitude,
			longitude,
			venue_name,
			distance_meters,
			is_within,
			checked_at
		FROM checkins
		ORDER BY checked_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	checks := make([]*models.CheckIn, 0)
	for rows.Next() {
		check := &models.CheckIn{}
		err := rows.Scan(
			&check.ID,
			&check.UserID,
			&check.Latitude,
			&check.Longitude,
			&check.VenueName,
			&check.DistanceMeters,
			&check.IsWithin,
			&check.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checks, nil
}

// CountDistinctUsers возвращает количество уникальных пользователей, успешно отметившихся за последние minutes минут
func (r *CheckInRepository) CountDistinctUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM checkins
		WHERE is_within
			AND checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get check-in stats: %w", err)
	}
	return count, nil
}
