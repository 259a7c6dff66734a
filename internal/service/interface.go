package service

import (
	"context"

	"github.com/newmeca/meca-server/internal/repository/models"
)

// ChampionshipRepository defines the storage operations behind the
// aggregators and archive administration.
type ChampionshipRepository interface {
	FindSeasonByYear(ctx context.Context, year int) (*models.Season, error)
	FindSeasonByID(ctx context.Context, id string) (*models.Season, error)
	FindArchiveByYear(ctx context.Context, year int) (*models.Archive, error)
	FindArchiveByID(ctx context.Context, id string) (*models.Archive, error)
	ListArchives(ctx context.Context, includeUnpublished bool) ([]models.Archive, error)
	InsertArchive(ctx context.Context, a models.Archive) error
	UpdateArchive(ctx context.Context, a models.Archive) error
	DeleteArchive(ctx context.Context, id string) error
	FindEventsBySeasonAndType(ctx context.Context, seasonID, eventType string) ([]models.Event, error)
	FindResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error)
	FindFirstPlaceResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error)
}

// PointsRepository defines the storage operations for points configurations.
type PointsRepository interface {
	FindSeasonByID(ctx context.Context, id string) (*models.Season, error)
	FindCurrentSeason(ctx context.Context) (*models.Season, error)
	FindPointsConfigBySeason(ctx context.Context, seasonID string) (*models.PointsConfiguration, error)
	FindPointsConfigByID(ctx context.Context, id string) (*models.PointsConfiguration, error)
	ListPointsConfigs(ctx context.Context) ([]models.PointsConfiguration, error)
	InsertPointsConfig(ctx context.Context, c models.PointsConfiguration) error
	UpdatePointsConfig(ctx context.Context, c models.PointsConfiguration) error
	ProfileExists(ctx context.Context, id string) (bool, error)
}
