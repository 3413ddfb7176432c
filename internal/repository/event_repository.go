package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// List 依建立順序（舊到新）回傳所有活動
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	// Update 只覆寫 params 中有提供的欄位
	Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, name, genre, image, description, website_url, created_at, updated_at`

// eventColumnNames maps stored field names to Postgres columns.
var eventColumnNames = map[string]string{
	"name":        "name",
	"genre":       "genre",
	"image":       "image",
	"description": "description",
	"websiteUrl":  "website_url",
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var (
		event model.Event
		id    uuid.UUID
	)
	err := row.Scan(
		&id,
		&event.Name,
		&event.Genre,
		&event.Image,
		&event.Description,
		&event.WebsiteURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.ID = id.String()
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (id, name, genre, image, description, website_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		uuid.New(), event.Name, event.Genre, event.Image, event.Description, event.WebsiteURL,
	))
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	fields := params.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets := []string{}
	args := []interface{}{}
	argPos := 1

	// 固定欄位順序，讓產生的 SQL 穩定
	for _, field := range []string{"name", "genre", "image", "description", "websiteUrl"} {
		value, ok := fields[field]
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", eventColumnNames[field], argPos))
		args = append(args, value)
		argPos++
	}

	// add updated_at（使用資料庫時間，與 created_at 同一時鐘）
	sets = append(sets, "updated_at = NOW()")

	// add id
	args = append(args, eventID)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, translatePgError(err)
	}

	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.ErrEventNotFound
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
