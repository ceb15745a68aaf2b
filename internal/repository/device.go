package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/usher_checkin/internal/service"
)

type DeviceRepository struct {
	db *pgxpool.Pool
}

func NewDeviceRepository(db *pgxpool.Pool) service.DeviceRepository {
	return &DeviceRepository{db: db}
}

// GetOrCreate сохраняет candidate, если у клиента еще нет идентификатора, и возвращает сохраненный.
// Пустой UPDATE в ON CONFLICT нужен, чтобы RETURNING вернул уже существующую строку.
func (r *DeviceRepository) GetOrCreate(ctx context.Context, clientKey, candidate string) (string, error) {
	query := `
		INSERT INTO device_identities (client_key, device_id)
		VALUES ($1, $2)
		ON CONFLICT (client_key) DO UPDATE SET client_key = EXCLUDED.client_key
		RETURNING device_id;
	`
	var deviceID string
	if err := r.db.QueryRow(ctx, query, clientKey, candidate).Scan(&deviceID); err != nil {
		return "", fmt.Errorf("failed to get or create device id: %w", err)
	}
	return deviceID, nil
}

// Delete удаляет идентификатор; следующий GetOrCreate выдаст новый
func (r *DeviceRepository) Delete(ctx context.Context, clientKey string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM device_identities WHERE client_key = $1;`, clientKey); err != nil {
		return fmt.Errorf("failed to delete device id: %w", err)
	}
	return nil
}
