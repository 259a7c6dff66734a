package grpc

import (
	"context"
	"time"

	"github.com/newmeca/meca-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type ChampionshipService interface {
	GetResultsForYear(ctx context.Context, year int) (*service.FormatResults, error)
	GetStateChampionsForYear(ctx context.Context, year int) (*service.StateChampions, error)
	ListArchives(ctx context.Context, includeUnpublished bool) ([]service.Archive, error)
	GetArchiveByYear(ctx context.Context, year int, includeUnpublished bool) (service.Archive, error)
	GetArchiveByID(ctx context.Context, id string) (service.Archive, error)
	CreateArchive(ctx context.Context, in service.ArchiveInput) (service.Archive, error)
	CreateArchiveForSeason(ctx context.Context, seasonID string, year int) (service.Archive, error)
	UpdateArchive(ctx context.Context, id string, upd service.ArchiveUpdate) (service.Archive, error)
	SetArchivePublished(ctx context.Context, id string, published bool) (service.Archive, error)
	DeleteArchive(ctx context.Context, id string) (service.Archive, error)
}

type PointsService interface {
	GetConfigForSeason(ctx context.Context, seasonID string) (service.PointsConfiguration, error)
	GetConfigForCurrentSeason(ctx context.Context) (service.PointsConfiguration, error)
	ListConfigs(ctx context.Context) ([]service.PointsConfiguration, error)
	UpdateConfig(ctx context.Context, seasonID string, upd service.PointsConfigUpdate, updatedBy string) (service.PointsConfiguration, error)
	GetPreview(ctx context.Context, seasonID string) (service.PointsPreview, error)
	CalculatePointsForSeason(ctx context.Context, seasonID string, placement, multiplier int) (int, error)
}

// UpdateRecorder is told about every successful points configuration update.
type UpdateRecorder interface {
	PointsConfigUpdated()
}
