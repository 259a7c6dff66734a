package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newmeca/meca-server/internal/repository/models"
)

type ChampionshipRepository struct {
	db *sql.DB
}

func NewChampionshipRepository(db *sql.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

const resultColumns = `
	cr.placement,
	p.first_name,
	p.last_name,
	cr.team_name,
	cr.state_code,
	cr.score,
	cr.format,
	cc.class_name
`

// FindSeasonByYear returns nil without error when no season exists for year.
func (r *ChampionshipRepository) FindSeasonByYear(ctx context.Context, year int) (*models.Season, error) {
	const query = `SELECT id, year, name, is_current FROM seasons WHERE year = ?`

	var s models.Season
	err := r.db.QueryRowContext(ctx, query, year).Scan(&s.ID, &s.Year, &s.Name, &s.IsCurrent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindSeasonByYear: %w", err)
	}
	return &s, nil
}

// FindSeasonByID returns nil without error when the season does not exist.
func (r *ChampionshipRepository) FindSeasonByID(ctx context.Context, id string) (*models.Season, error) {
	const query = `SELECT id, year, name, is_current FROM seasons WHERE id = ?`

	var s models.Season
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Year, &s.Name, &s.IsCurrent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindSeasonByID: %w", err)
	}
	return &s, nil
}

const archiveColumns = `id, season_id, year, title, world_finals_event_id, published, created_at, updated_at`

// FindArchiveByYear returns nil without error when no archive exists for year.
func (r *ChampionshipRepository) FindArchiveByYear(ctx context.Context, year int) (*models.Archive, error) {
	const query = `SELECT ` + archiveColumns + ` FROM championship_archives WHERE year = ?`

	a, err := scanArchive(r.db.QueryRowContext(ctx, query, year))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindArchiveByYear: %w", err)
	}
	return &a, nil
}

// ListArchives returns archives newest first.
func (r *ChampionshipRepository) ListArchives(ctx context.Context, includeUnpublished bool) ([]models.Archive, error) {
	const query = `SELECT ` + archiveColumns + `
		FROM championship_archives
		WHERE published = 1 OR ?
		ORDER BY year DESC
	`

	rows, err := r.db.QueryContext(ctx, query, includeUnpublished)
	if err != nil {
		return nil, fmt.Errorf("query ListArchives: %w", err)
	}
	defer rows.Close()

	var out []models.Archive
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ListArchives row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListArchives: %w", err)
	}
	return out, nil
}

// FindArchiveByID returns nil without error when no archive has id.
func (r *ChampionshipRepository) FindArchiveByID(ctx context.Context, id string) (*models.Archive, error) {
	const query = `SELECT ` + archiveColumns + ` FROM championship_archives WHERE id = ?`

	a, err := scanArchive(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindArchiveByID: %w", err)
	}
	return &a, nil
}

func (r *ChampionshipRepository) InsertArchive(ctx context.Context, a models.Archive) error {
	const query = `INSERT INTO championship_archives (` + archiveColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.SeasonID, a.Year, a.Title, a.WorldFinalsEventID, a.Published, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("exec InsertArchive: %w", err)
	}
	return nil
}

// UpdateArchive rewrites the mutable columns of the archive with a.ID.
// The year and creation time never change.
func (r *ChampionshipRepository) UpdateArchive(ctx context.Context, a models.Archive) error {
	const query = `
		UPDATE championship_archives SET
			season_id = ?, title = ?, world_finals_event_id = ?, published = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		a.SeasonID, a.Title, a.WorldFinalsEventID, a.Published, a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("exec UpdateArchive: %w", err)
	}
	return requireAffected(res, "UpdateArchive")
}

func (r *ChampionshipRepository) DeleteArchive(ctx context.Context, id string) error {
	const query = `DELETE FROM championship_archives WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("exec DeleteArchive: %w", err)
	}
	return requireAffected(res, "DeleteArchive")
}

func (r *ChampionshipRepository) FindEventsBySeasonAndType(ctx context.Context, seasonID, eventType string) ([]models.Event, error) {
	const query = `
		SELECT id, season_id, name, event_type, venue_state, event_date
		FROM events
		WHERE season_id = ? AND event_type = ?
		ORDER BY event_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, seasonID, eventType)
	if err != nil {
		return nil, fmt.Errorf("query FindEventsBySeasonAndType: %w", err)
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.SeasonID, &e.Name, &e.EventType, &e.VenueState, &e.EventDate); err != nil {
			return nil, fmt.Errorf("scan FindEventsBySeasonAndType row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FindEventsBySeasonAndType: %w", err)
	}
	return out, nil
}

// FindResultsByEvent returns every result of the event by ascending placement.
func (r *ChampionshipRepository) FindResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error) {
	const query = `SELECT` + resultColumns + `
		FROM competition_results AS cr
		LEFT JOIN profiles AS p ON cr.competitor_id = p.id
		LEFT JOIN competition_classes AS cc ON cr.class_id = cc.id
		WHERE cr.event_id = ?
		ORDER BY cr.placement ASC, cr.rowid ASC
	`

	return r.queryResults(ctx, "FindResultsByEvent", query, eventID)
}

// FindFirstPlaceResultsByEvent returns every placement-1 result, ties included.
func (r *ChampionshipRepository) FindFirstPlaceResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error) {
	const query = `SELECT` + resultColumns + `
		FROM competition_results AS cr
		LEFT JOIN profiles AS p ON cr.competitor_id = p.id
		LEFT JOIN competition_classes AS cc ON cr.class_id = cc.id
		WHERE cr.event_id = ? AND cr.placement = 1
		ORDER BY cr.rowid ASC
	`

	return r.queryResults(ctx, "FindFirstPlaceResultsByEvent", query, eventID)
}

func (r *ChampionshipRepository) queryResults(ctx context.Context, op, query string, args ...any) ([]models.ResultRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", op, err)
	}
	defer rows.Close()

	var out []models.ResultRow
	for rows.Next() {
		var rr models.ResultRow
		if err := rows.Scan(
			&rr.Placement,
			&rr.FirstName,
			&rr.LastName,
			&rr.TeamName,
			&rr.StateCode,
			&rr.Score,
			&rr.Format,
			&rr.ClassName,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", op, err)
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", op, err)
	}
	return out, nil
}

// requireAffected reports sql.ErrNoRows when the statement matched nothing.
func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows %s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("exec %s: %w", op, sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArchive(s rowScanner) (models.Archive, error) {
	var a models.Archive
	err := s.Scan(&a.ID, &a.SeasonID, &a.Year, &a.Title, &a.WorldFinalsEventID, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
