package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/db"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
	"github.com/yigit/sportsmeet/internal/pkg/dberrors"
)

// EventFilter narrows an event listing. Zero values mean "no restriction".
type EventFilter struct {
	// Query matches name or location, case-insensitively
	Query string
	// From keeps events dated on or after this day
	From *time.Time
	// OrganizerID keeps events organized by this user
	OrganizerID *int64
	Limit       uint64
}

// IEventRepository defines the interface for event database operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	// List returns matching events ordered by date, then time
	List(ctx context.Context, filter EventFilter) ([]*models.Event, error)
	// DeleteBefore removes every event dated strictly before day and returns how many went
	DeleteBefore(ctx context.Context, day time.Time) (int64, error)
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *db.PostgresDB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(database *db.PostgresDB) *EventRepository {
	return &EventRepository{db: database}
}

var eventColumns = []string{
	"e.id", "e.sport_type", "e.event_name", "e.event_date", "to_char(e.event_time, 'HH24:MI')",
	"e.event_location", "e.total_players", "e.event_description", "e.organizer_id",
	"e.created_at", "e.updated_at",
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.SportType,
		&e.Name,
		&e.Date,
		&e.Time,
		&e.Location,
		&e.TotalPlayers,
		&e.Description,
		&e.OrganizerID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]*models.Event, error) {
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return events, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	sql, args, err := squirrel.Insert("events").
		Columns("sport_type", "event_name", "event_date", "event_time", "event_location",
			"total_players", "event_description", "organizer_id").
		Values(event.SportType, event.Name, event.Date, squirrel.Expr("?::time", event.Time), event.Location,
			event.TotalPlayers, event.Description, event.OrganizerID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if mapped := eventWriteError(err); mapped != nil {
			return mapped
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// Capacity bounds of events.total_players
const (
	MinTotalPlayers = 1
	MaxTotalPlayers = 2147483647
)

// TotalPlayersRangeError returns the total_players field error the schema raises for n, or nil
func TotalPlayersRangeError(n int) error {
	switch {
	case n < MinTotalPlayers:
		return totalPlayersTooSmall()
	case n > MaxTotalPlayers:
		return totalPlayersTooLarge()
	}
	return nil
}

func totalPlayersTooSmall() error {
	return apperrors.NewValidationError("total_players",
		fmt.Sprintf("Ensure this value is greater than or equal to %d.", MinTotalPlayers))
}

func totalPlayersTooLarge() error {
	return apperrors.NewValidationError("total_players",
		fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxTotalPlayers))
}

// eventWriteError turns capacity rejections by the database into total_players field errors
func eventWriteError(err error) error {
	switch {
	case dberrors.IsCheckViolation(err, dberrors.ConstraintEventsTotalPlayers):
		return totalPlayersTooSmall()
	case dberrors.IsNumericOutOfRange(err):
		return totalPlayersTooLarge()
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := squirrel.Select(eventColumns...).
		From("events e").
		Where(squirrel.Eq{"e.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return event, nil
}

// Update saves the editable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := squirrel.Update("events").
		SetMap(map[string]interface{}{
			"sport_type":        event.SportType,
			"event_name":        event.Name,
			"event_date":        event.Date,
			"event_time":        squirrel.Expr("?::time", event.Time),
			"event_location":    event.Location,
			"total_players":     event.TotalPlayers,
			"event_description": event.Description,
			"updated_at":        squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&event.UpdatedAt); err != nil {
		if isNoRows(err) {
			return apperrors.ErrEventNotFound
		}
		if mapped := eventWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error updating event: %w", err)
	}
	return nil
}

// Delete removes an event together with its participants and join infos
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("events").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// List retrieves events matching filter
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events e").
		OrderBy("e.event_date", "e.event_time", "e.id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"e.event_name": pattern},
			squirrel.ILike{"e.event_location": pattern},
		})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"e.event_date": *filter.From})
	}
	if filter.OrganizerID != nil {
		query = query.Where(squirrel.Eq{"e.organizer_id": *filter.OrganizerID})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return collectEvents(rows)
}

// DeleteBefore removes events whose date is strictly before day
func (r *EventRepository) DeleteBefore(ctx context.Context, day time.Time) (int64, error) {
	sql, args, err := squirrel.Delete("events").
		Where(squirrel.Lt{"event_date": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error purging past events: %w", err)
	}
	return tag.RowsAffected(), nil
}
