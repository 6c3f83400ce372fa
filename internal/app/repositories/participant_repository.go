package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/db"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
	"github.com/yigit/sportsmeet/internal/pkg/dberrors"
)

// IParticipantRepository defines the interface for participation database operations
type IParticipantRepository interface {
	// Join records the participant and its join info atomically. It locks the event row,
	// returning ErrEventNotFound, ErrAlreadyJoined or ErrEventFull without writing anything.
	Join(ctx context.Context, info *models.EventJoinInfo) error
	// Leave deletes the participant row only; join infos are kept
	Leave(ctx context.Context, eventID, userID int64) error
	IsParticipant(ctx context.Context, eventID, userID int64) (bool, error)
	Count(ctx context.Context, eventID int64) (int, error)
	CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int, error)
	// EventsJoinedBy lists the events userID currently participates in, by date
	EventsJoinedBy(ctx context.Context, userID int64) ([]*models.Event, error)
	// JoinInfosByEvents groups join infos per event, oldest first, flagging cancelled ones
	JoinInfosByEvents(ctx context.Context, eventIDs []int64) (map[int64][]*models.EventJoinInfo, error)
}

// ParticipantRepository handles database operations for event participants and join infos
type ParticipantRepository struct {
	db *db.PostgresDB
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(database *db.PostgresDB) *ParticipantRepository {
	return &ParticipantRepository{db: database}
}

// Join adds info.UserID to info.EventID and stores info
func (r *ParticipantRepository) Join(ctx context.Context, info *models.EventJoinInfo) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		event := models.Event{ID: info.EventID}
		err := tx.QueryRow(ctx, `SELECT total_players FROM events WHERE id = $1 FOR UPDATE`, info.EventID).
			Scan(&event.TotalPlayers)
		if err != nil {
			if isNoRows(err) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event: %w", err)
		}

		joined, err := isParticipant(ctx, tx, info.EventID, info.UserID)
		if err != nil {
			return err
		}
		if joined {
			return apperrors.ErrAlreadyJoined
		}

		count, err := countParticipants(ctx, tx, info.EventID)
		if err != nil {
			return err
		}
		if event.IsFull(count) {
			return apperrors.ErrEventFull
		}

		sql, args, err := squirrel.Insert("event_participants").
			Columns("event_id", "user_id").
			Values(info.EventID, info.UserID).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintParticipantsEventUser) {
				return apperrors.ErrAlreadyJoined
			}
			// the event row is locked, so only the user side can be missing
			if dberrors.IsForeignKeyError(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error adding participant: %w", err)
		}

		sql, args, err = squirrel.Insert("event_join_infos").
			Columns("event_id", "user_id", "full_name", "mobile_number", "email").
			Values(info.EventID, info.UserID, info.FullName, info.MobileNumber, info.Email).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&info.ID, &info.CreatedAt); err != nil {
			return fmt.Errorf("error saving join info: %w", err)
		}
		info.Active = true
		return nil
	})
}

// Leave removes the participation of userID in eventID
func (r *ParticipantRepository) Leave(ctx context.Context, eventID, userID int64) error {
	sql, args, err := squirrel.Delete("event_participants").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotJoined
	}
	return nil
}

// IsParticipant checks whether userID participates in eventID
func (r *ParticipantRepository) IsParticipant(ctx context.Context, eventID, userID int64) (bool, error) {
	return isParticipant(ctx, r.db.Pool, eventID, userID)
}

// Count returns the number of participants of an event
func (r *ParticipantRepository) Count(ctx context.Context, eventID int64) (int, error) {
	return countParticipants(ctx, r.db.Pool, eventID)
}

// CountByEvents retrieves the number of participants for multiple events
func (r *ParticipantRepository) CountByEvents(ctx context.Context, eventIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	sql, args, err := squirrel.Select("event_id", "COUNT(*)").
		From("event_participants").
		Where(squirrel.Eq{"event_id": eventIDs}).
		GroupBy("event_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID int64
		var count int
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[eventID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return counts, nil
}

// EventsJoinedBy retrieves the events a user participates in
func (r *ParticipantRepository) EventsJoinedBy(ctx context.Context, userID int64) ([]*models.Event, error) {
	sql, args, err := squirrel.Select(eventColumns...).
		From("events e").
		Join("event_participants p ON p.event_id = e.id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("e.event_date", "e.event_time", "e.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return collectEvents(rows)
}

// JoinInfosByEvents retrieves join infos for multiple events.
// A row is active only when it belongs to the user's current participation;
// rows left over from before a cancel stay inactive after a rejoin.
func (r *ParticipantRepository) JoinInfosByEvents(ctx context.Context, eventIDs []int64) (map[int64][]*models.EventJoinInfo, error) {
	infos := make(map[int64][]*models.EventJoinInfo, len(eventIDs))
	if len(eventIDs) == 0 {
		return infos, nil
	}

	sql, args, err := squirrel.Select(
		"j.id", "j.event_id", "j.user_id", "j.full_name", "j.mobile_number", "j.email", "j.created_at",
		"EXISTS(SELECT 1 FROM event_participants p WHERE p.event_id = j.event_id AND p.user_id = j.user_id"+
			" AND j.created_at >= p.joined_at)",
	).
		From("event_join_infos j").
		Where(squirrel.Eq{"j.event_id": eventIDs}).
		OrderBy("j.created_at", "j.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var info models.EventJoinInfo
		err := rows.Scan(
			&info.ID,
			&info.EventID,
			&info.UserID,
			&info.FullName,
			&info.MobileNumber,
			&info.Email,
			&info.CreatedAt,
			&info.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		infos[info.EventID] = append(infos[info.EventID], &info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return infos, nil
}

func isParticipant(ctx context.Context, q db.Querier, eventID, userID int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_participants WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking participation: %w", err)
	}
	return exists, nil
}

func countParticipants(ctx context.Context, q db.Querier, eventID int64) (int, error) {
	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}
