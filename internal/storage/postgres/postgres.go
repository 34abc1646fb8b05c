package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventCatalog/internal/config"
	"eventCatalog/internal/models"
	"eventCatalog/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(event models.Event) (models.Event, error) {
	query := `
		INSERT INTO events (title, description, location, date, category,
			max_participants, current_participants, lat, lon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := s.DB.QueryRow(query,
		event.Title,
		event.Description,
		event.Location,
		event.Date,
		nullString(event.Category),
		event.MaxParticipants,
		event.CurrentParticipants,
		nullFloat(event.Lat),
		nullFloat(event.Lon),
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetEvent(id int) (models.Event, error) {
	query := `
		SELECT id, title, description, location, date, category,
			max_participants, current_participants, lat, lon, created_at, updated_at
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, storage.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, title, description, location, date, category,
			max_participants, current_participants, lat, lon, created_at, updated_at
		FROM events
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// UpdateParticipants locks the event row for the full read-check-write
// so concurrent joins cannot push the count past the maximum.
func (s *Storage) UpdateParticipants(id int, action string) (models.Event, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current, max int
	lockQuery := `
		SELECT current_participants, max_participants
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(lockQuery, id).Scan(&current, &max)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, storage.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get participants info: %w", err)
	}

	switch action {
	case storage.ActionJoin:
		if current >= max {
			return models.Event{}, storage.ErrEventFull
		}
		current++
	case storage.ActionLeave:
		if current > 0 {
			current--
		}
	}

	updateQuery := `
		UPDATE events
		SET current_participants = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, location, date, category,
			max_participants, current_participants, lat, lon, created_at, updated_at`

	event, err := scanEvent(tx.QueryRow(updateQuery, id, current))
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to update participants: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Event{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return event, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event    models.Event
		category sql.NullString
		lat, lon sql.NullFloat64
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Date,
		&category,
		&event.MaxParticipants,
		&event.CurrentParticipants,
		&lat,
		&lon,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.Category = category.String
	if lat.Valid {
		event.Lat = &lat.Float64
	}
	if lon.Valid {
		event.Lon = &lon.Float64
	}

	return event, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
