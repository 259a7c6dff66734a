package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/newmeca/meca-server/internal/repository/models"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// PointsService manages the per-season points configuration.
type PointsService struct {
	storage PointsRepository
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewPointsService creates a new PointsService instance.
func NewPointsService(storage PointsRepository, logger *zap.Logger) *PointsService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &PointsService{
		storage: storage,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// GetConfigForSeason returns the season's configuration, creating the
// default one on first access.
func (s *PointsService) GetConfigForSeason(ctx context.Context, seasonID string) (PointsConfiguration, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.storage.FindPointsConfigBySeason(dbCtx, seasonID)
	if err != nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if row != nil {
		return toPointsConfiguration(*row), nil
	}

	season, err := s.storage.FindSeasonByID(dbCtx, seasonID)
	if err != nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if season == nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, seasonID)
	}

	s.logger.Info("creating default points configuration", zap.String("season_id", seasonID))

	created := s.defaultRow(*season)
	if err := s.storage.InsertPointsConfig(dbCtx, created); err != nil {
		// A concurrent request may have created it first.
		existing, findErr := s.storage.FindPointsConfigBySeason(dbCtx, seasonID)
		if findErr != nil || existing == nil {
			return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		return toPointsConfiguration(*existing), nil
	}

	return toPointsConfiguration(created), nil
}

// PeekConfigForSeason returns the season's stored configuration, or the
// unsaved default when none is stored yet. It never writes; stored reports
// which of the two was returned.
func (s *PointsService) PeekConfigForSeason(ctx context.Context, seasonID string) (cfg PointsConfiguration, stored bool, err error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.storage.FindPointsConfigBySeason(dbCtx, seasonID)
	if err != nil {
		return PointsConfiguration{}, false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if row != nil {
		return toPointsConfiguration(*row), true, nil
	}

	season, err := s.storage.FindSeasonByID(dbCtx, seasonID)
	if err != nil {
		return PointsConfiguration{}, false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if season == nil {
		return PointsConfiguration{}, false, fmt.Errorf("%w: %s", ErrSeasonNotFound, seasonID)
	}

	return PointsConfiguration{
		SeasonID:     seasonID,
		PointsConfig: DefaultPointsConfig(),
		IsActive:     true,
	}, false, nil
}

// GetConfigForCurrentSeason returns the configuration of the season marked current.
func (s *PointsService) GetConfigForCurrentSeason(ctx context.Context) (PointsConfiguration, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	season, err := s.storage.FindCurrentSeason(dbCtx)
	if err != nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if season == nil {
		return PointsConfiguration{}, ErrNoCurrentSeason
	}

	return s.GetConfigForSeason(ctx, season.ID)
}

func (s *PointsService) GetConfigByID(ctx context.Context, id string) (PointsConfiguration, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.storage.FindPointsConfigByID(dbCtx, id)
	if err != nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if row == nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %s", ErrPointsConfigNotFound, id)
	}
	return toPointsConfiguration(*row), nil
}

func (s *PointsService) ListConfigs(ctx context.Context) ([]PointsConfiguration, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.ListPointsConfigs(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return lo.Map(rows, func(r models.PointsConfiguration, _ int) PointsConfiguration {
		return toPointsConfiguration(r)
	}), nil
}

// UpdateConfig applies upd to the season's configuration. The merged
// table is validated before anything is written. updatedBy is recorded
// only when it names an existing profile; otherwise the previous editor
// is kept.
func (s *PointsService) UpdateConfig(ctx context.Context, seasonID string, upd PointsConfigUpdate, updatedBy string) (PointsConfiguration, error) {
	if err := validateUpdate(upd); err != nil {
		return PointsConfiguration{}, err
	}

	current, err := s.GetConfigForSeason(ctx, seasonID)
	if err != nil {
		return PointsConfiguration{}, err
	}

	merged := applyUpdate(current, upd)
	if err := ValidatePointsConfig(merged.PointsConfig); err != nil {
		return PointsConfiguration{}, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	merged.UpdatedAt = s.now().UTC().Format(timestampLayout)
	if updatedBy != "" {
		exists, err := s.storage.ProfileExists(dbCtx, updatedBy)
		if err != nil {
			return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		if exists {
			merged.UpdatedBy = &updatedBy
		} else {
			s.logger.Warn("ignoring unknown editor profile",
				zap.String("season_id", seasonID),
				zap.String("updated_by", updatedBy))
		}
	}

	if err := s.storage.UpdatePointsConfig(dbCtx, toPointsModel(merged)); err != nil {
		return PointsConfiguration{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("updated points configuration",
		zap.String("season_id", seasonID),
		zap.String("updated_by", updatedBy))

	return merged, nil
}

// GetPreview returns the season's configuration along with its points preview.
func (s *PointsService) GetPreview(ctx context.Context, seasonID string) (PointsPreview, error) {
	cfg, err := s.GetConfigForSeason(ctx, seasonID)
	if err != nil {
		return PointsPreview{}, err
	}
	return PointsPreview{
		SeasonID: seasonID,
		Config:   cfg,
		Preview:  ComputePreview(cfg.PointsConfig),
	}, nil
}

// CalculatePointsForSeason scores one placement with the season's configuration.
func (s *PointsService) CalculatePointsForSeason(ctx context.Context, seasonID string, placement, multiplier int) (int, error) {
	cfg, err := s.GetConfigForSeason(ctx, seasonID)
	if err != nil {
		return 0, err
	}
	return CalculatePoints(placement, multiplier, cfg.PointsConfig), nil
}

func (s *PointsService) defaultRow(season models.Season) models.PointsConfiguration {
	ts := s.now().UTC().Format(timestampLayout)
	row := toPointsModel(PointsConfiguration{
		ID:           s.newID(),
		SeasonID:     season.ID,
		PointsConfig: DefaultPointsConfig(),
		IsActive:     true,
		Description:  lo.ToPtr(fmt.Sprintf("Default configuration for %s", season.Name)),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	})
	return row
}

func applyUpdate(c PointsConfiguration, u PointsConfigUpdate) PointsConfiguration {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	set(&c.Standard1st, u.Standard1st)
	set(&c.Standard2nd, u.Standard2nd)
	set(&c.Standard3rd, u.Standard3rd)
	set(&c.Standard4th, u.Standard4th)
	set(&c.Standard5th, u.Standard5th)

	set(&c.FourX1st, u.FourX1st)
	set(&c.FourX2nd, u.FourX2nd)
	set(&c.FourX3rd, u.FourX3rd)
	set(&c.FourX4th, u.FourX4th)
	set(&c.FourX5th, u.FourX5th)

	if u.ExtendedEnabled != nil {
		c.ExtendedEnabled = *u.ExtendedEnabled
	}
	set(&c.ExtendedPoints, u.ExtendedPoints)
	set(&c.ExtendedMaxPlace, u.ExtendedMaxPlace)

	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	if u.Description != nil {
		c.Description = lo.EmptyableToPtr(*u.Description)
	}
	return c
}

func toPointsConfiguration(r models.PointsConfiguration) PointsConfiguration {
	return PointsConfiguration{
		ID:       r.ID,
		SeasonID: r.SeasonID,
		PointsConfig: PointsConfig{
			Standard1st:      r.Standard1st,
			Standard2nd:      r.Standard2nd,
			Standard3rd:      r.Standard3rd,
			Standard4th:      r.Standard4th,
			Standard5th:      r.Standard5th,
			FourX1st:         r.FourX1st,
			FourX2nd:         r.FourX2nd,
			FourX3rd:         r.FourX3rd,
			FourX4th:         r.FourX4th,
			FourX5th:         r.FourX5th,
			ExtendedEnabled:  r.FourXExtendedEnabled,
			ExtendedPoints:   r.FourXExtendedPoints,
			ExtendedMaxPlace: r.FourXExtendedMaxPlace,
		},
		IsActive:    r.IsActive,
		Description: lo.EmptyableToPtr(r.Description.String),
		UpdatedBy:   lo.EmptyableToPtr(r.UpdatedBy.String),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toPointsModel(c PointsConfiguration) models.PointsConfiguration {
	return models.PointsConfiguration{
		ID:                    c.ID,
		SeasonID:              c.SeasonID,
		Standard1st:           c.Standard1st,
		Standard2nd:           c.Standard2nd,
		Standard3rd:           c.Standard3rd,
		Standard4th:           c.Standard4th,
		Standard5th:           c.Standard5th,
		FourX1st:              c.FourX1st,
		FourX2nd:              c.FourX2nd,
		FourX3rd:              c.FourX3rd,
		FourX4th:              c.FourX4th,
		FourX5th:              c.FourX5th,
		FourXExtendedEnabled:  c.ExtendedEnabled,
		FourXExtendedPoints:   c.ExtendedPoints,
		FourXExtendedMaxPlace: c.ExtendedMaxPlace,
		IsActive:              c.IsActive,
		Description:           nullString(c.Description),
		UpdatedBy:             nullString(c.UpdatedBy),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
