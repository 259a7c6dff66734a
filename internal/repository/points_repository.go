package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newmeca/meca-server/internal/repository/models"
)

type PointsRepository struct {
	db *sql.DB
}

func NewPointsRepository(db *sql.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

const pointsColumns = `
	pc.id, pc.season_id,
	pc.standard_1st_place, pc.standard_2nd_place, pc.standard_3rd_place, pc.standard_4th_place, pc.standard_5th_place,
	pc.four_x_1st_place, pc.four_x_2nd_place, pc.four_x_3rd_place, pc.four_x_4th_place, pc.four_x_5th_place,
	pc.four_x_extended_enabled, pc.four_x_extended_points, pc.four_x_extended_max_place,
	pc.is_active, pc.description, pc.updated_by, pc.created_at, pc.updated_at
`

func scanPointsConfig(s rowScanner) (models.PointsConfiguration, error) {
	var c models.PointsConfiguration
	err := s.Scan(
		&c.ID, &c.SeasonID,
		&c.Standard1st, &c.Standard2nd, &c.Standard3rd, &c.Standard4th, &c.Standard5th,
		&c.FourX1st, &c.FourX2nd, &c.FourX3rd, &c.FourX4th, &c.FourX5th,
		&c.FourXExtendedEnabled, &c.FourXExtendedPoints, &c.FourXExtendedMaxPlace,
		&c.IsActive, &c.Description, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *PointsRepository) FindSeasonByID(ctx context.Context, id string) (*models.Season, error) {
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

func (r *PointsRepository) FindCurrentSeason(ctx context.Context) (*models.Season, error) {
	const query = `SELECT id, year, name, is_current FROM seasons WHERE is_current = 1 ORDER BY year DESC LIMIT 1`

	var s models.Season
	err := r.db.QueryRowContext(ctx, query).Scan(&s.ID, &s.Year, &s.Name, &s.IsCurrent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindCurrentSeason: %w", err)
	}
	return &s, nil
}

func (r *PointsRepository) FindPointsConfigBySeason(ctx context.Context, seasonID string) (*models.PointsConfiguration, error) {
	const query = `SELECT` + pointsColumns + `FROM points_configurations AS pc WHERE pc.season_id = ?`

	c, err := scanPointsConfig(r.db.QueryRowContext(ctx, query, seasonID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindPointsConfigBySeason: %w", err)
	}
	return &c, nil
}

func (r *PointsRepository) FindPointsConfigByID(ctx context.Context, id string) (*models.PointsConfiguration, error) {
	const query = `SELECT` + pointsColumns + `FROM points_configurations AS pc WHERE pc.id = ?`

	c, err := scanPointsConfig(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query FindPointsConfigByID: %w", err)
	}
	return &c, nil
}

// ListPointsConfigs returns every configuration, newest season first.
func (r *PointsRepository) ListPointsConfigs(ctx context.Context) ([]models.PointsConfiguration, error) {
	const query = `SELECT` + pointsColumns + `
		FROM points_configurations AS pc
		JOIN seasons AS s ON pc.season_id = s.id
		ORDER BY s.year DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListPointsConfigs: %w", err)
	}
	defer rows.Close()

	var out []models.PointsConfiguration
	for rows.Next() {
		c, err := scanPointsConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ListPointsConfigs row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListPointsConfigs: %w", err)
	}
	return out, nil
}

func (r *PointsRepository) InsertPointsConfig(ctx context.Context, c models.PointsConfiguration) error {
	const query = `
		INSERT INTO points_configurations (
			id, season_id,
			standard_1st_place, standard_2nd_place, standard_3rd_place, standard_4th_place, standard_5th_place,
			four_x_1st_place, four_x_2nd_place, four_x_3rd_place, four_x_4th_place, four_x_5th_place,
			four_x_extended_enabled, four_x_extended_points, four_x_extended_max_place,
			is_active, description, updated_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.SeasonID,
		c.Standard1st, c.Standard2nd, c.Standard3rd, c.Standard4th, c.Standard5th,
		c.FourX1st, c.FourX2nd, c.FourX3rd, c.FourX4th, c.FourX5th,
		c.FourXExtendedEnabled, c.FourXExtendedPoints, c.FourXExtendedMaxPlace,
		c.IsActive, c.Description, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("exec InsertPointsConfig: %w", err)
	}
	return nil
}

func (r *PointsRepository) UpdatePointsConfig(ctx context.Context, c models.PointsConfiguration) error {
	const query = `
		UPDATE points_configurations SET
			standard_1st_place = ?, standard_2nd_place = ?, standard_3rd_place = ?, standard_4th_place = ?, standard_5th_place = ?,
			four_x_1st_place = ?, four_x_2nd_place = ?, four_x_3rd_place = ?, four_x_4th_place = ?, four_x_5th_place = ?,
			four_x_extended_enabled = ?, four_x_extended_points = ?, four_x_extended_max_place = ?,
			is_active = ?, description = ?, updated_by = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		c.Standard1st, c.Standard2nd, c.Standard3rd, c.Standard4th, c.Standard5th,
		c.FourX1st, c.FourX2nd, c.FourX3rd, c.FourX4th, c.FourX5th,
		c.FourXExtendedEnabled, c.FourXExtendedPoints, c.FourXExtendedMaxPlace,
		c.IsActive, c.Description, c.UpdatedBy, c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("exec UpdatePointsConfig: %w", err)
	}
	return requireAffected(res, "UpdatePointsConfig")
}

// ProfileExists reports whether a member profile with id exists.
func (r *PointsRepository) ProfileExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("query ProfileExists: %w", err)
	}
	return exists, nil
}
