package mocks

import (
	"context"
	"errors"

	"github.com/newmeca/meca-server/internal/service"
)

// MockChampionshipService is a mock implementation of the ChampionshipService
// interface for testing the handler layer.
type MockChampionshipService struct {
	GetResultsForYearFunc        func(ctx context.Context, year int) (*service.FormatResults, error)
	GetStateChampionsForYearFunc func(ctx context.Context, year int) (*service.StateChampions, error)
	ListArchivesFunc             func(ctx context.Context, includeUnpublished bool) ([]service.Archive, error)
	GetArchiveByYearFunc         func(ctx context.Context, year int, includeUnpublished bool) (service.Archive, error)
	GetArchiveByIDFunc           func(ctx context.Context, id string) (service.Archive, error)
	CreateArchiveFunc            func(ctx context.Context, in service.ArchiveInput) (service.Archive, error)
	CreateArchiveForSeasonFunc   func(ctx context.Context, seasonID string, year int) (service.Archive, error)
	UpdateArchiveFunc            func(ctx context.Context, id string, upd service.ArchiveUpdate) (service.Archive, error)
	SetArchivePublishedFunc      func(ctx context.Context, id string, published bool) (service.Archive, error)
	DeleteArchiveFunc            func(ctx context.Context, id string) (service.Archive, error)
}

func (m *MockChampionshipService) GetResultsForYear(ctx context.Context, year int) (*service.FormatResults, error) {
	if m.GetResultsForYearFunc != nil {
		return m.GetResultsForYearFunc(ctx, year)
	}
	return nil, errors.New("GetResultsForYearFunc not implemented")
}

func (m *MockChampionshipService) GetStateChampionsForYear(ctx context.Context, year int) (*service.StateChampions, error) {
	if m.GetStateChampionsForYearFunc != nil {
		return m.GetStateChampionsForYearFunc(ctx, year)
	}
	return nil, errors.New("GetStateChampionsForYearFunc not implemented")
}

func (m *MockChampionshipService) ListArchives(ctx context.Context, includeUnpublished bool) ([]service.Archive, error) {
	if m.ListArchivesFunc != nil {
		return m.ListArchivesFunc(ctx, includeUnpublished)
	}
	return nil, errors.New("ListArchivesFunc not implemented")
}

func (m *MockChampionshipService) GetArchiveByYear(ctx context.Context, year int, includeUnpublished bool) (service.Archive, error) {
	if m.GetArchiveByYearFunc != nil {
		return m.GetArchiveByYearFunc(ctx, year, includeUnpublished)
	}
	return service.Archive{}, errors.New("GetArchiveByYearFunc not implemented")
}

func (m *MockChampionshipService) GetArchiveByID(ctx context.Context, id string) (service.Archive, error) {
	if m.GetArchiveByIDFunc != nil {
		return m.GetArchiveByIDFunc(ctx, id)
	}
	return service.Archive{}, errors.New("GetArchiveByIDFunc not implemented")
}

func (m *MockChampionshipService) CreateArchive(ctx context.Context, in service.ArchiveInput) (service.Archive, error) {
	if m.CreateArchiveFunc != nil {
		return m.CreateArchiveFunc(ctx, in)
	}
	return service.Archive{}, errors.New("CreateArchiveFunc not implemented")
}

func (m *MockChampionshipService) CreateArchiveForSeason(ctx context.Context, seasonID string, year int) (service.Archive, error) {
	if m.CreateArchiveForSeasonFunc != nil {
		return m.CreateArchiveForSeasonFunc(ctx, seasonID, year)
	}
	return service.Archive{}, errors.New("CreateArchiveForSeasonFunc not implemented")
}

func (m *MockChampionshipService) UpdateArchive(ctx context.Context, id string, upd service.ArchiveUpdate) (service.Archive, error) {
	if m.UpdateArchiveFunc != nil {
		return m.UpdateArchiveFunc(ctx, id, upd)
	}
	return service.Archive{}, errors.New("UpdateArchiveFunc not implemented")
}

func (m *MockChampionshipService) SetArchivePublished(ctx context.Context, id string, published bool) (service.Archive, error) {
	if m.SetArchivePublishedFunc != nil {
		return m.SetArchivePublishedFunc(ctx, id, published)
	}
	return service.Archive{}, errors.New("SetArchivePublishedFunc not implemented")
}

func (m *MockChampionshipService) DeleteArchive(ctx context.Context, id string) (service.Archive, error) {
	if m.DeleteArchiveFunc != nil {
		return m.DeleteArchiveFunc(ctx, id)
	}
	return service.Archive{}, errors.New("DeleteArchiveFunc not implemented")
}

// MockPointsService is a mock implementation of the PointsService interface.
type MockPointsService struct {
	GetConfigForSeasonFunc        func(ctx context.Context, seasonID string) (service.PointsConfiguration, error)
	GetConfigForCurrentSeasonFunc func(ctx context.Context) (service.PointsConfiguration, error)
	ListConfigsFunc               func(ctx context.Context) ([]service.PointsConfiguration, error)
	UpdateConfigFunc              func(ctx context.Context, seasonID string, upd service.PointsConfigUpdate, updatedBy string) (service.PointsConfiguration, error)
	GetPreviewFunc                func(ctx context.Context, seasonID string) (service.PointsPreview, error)
	CalculatePointsForSeasonFunc  func(ctx context.Context, seasonID string, placement, multiplier int) (int, error)
}

func (m *MockPointsService) GetConfigForSeason(ctx context.Context, seasonID string) (service.PointsConfiguration, error) {
	if m.GetConfigForSeasonFunc != nil {
		return m.GetConfigForSeasonFunc(ctx, seasonID)
	}
	return service.PointsConfiguration{}, errors.New("GetConfigForSeasonFunc not implemented")
}

func (m *MockPointsService) GetConfigForCurrentSeason(ctx context.Context) (service.PointsConfiguration, error) {
	if m.GetConfigForCurrentSeasonFunc != nil {
		return m.GetConfigForCurrentSeasonFunc(ctx)
	}
	return service.PointsConfiguration{}, errors.New("GetConfigForCurrentSeasonFunc not implemented")
}

func (m *MockPointsService) ListConfigs(ctx context.Context) ([]service.PointsConfiguration, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return nil, errors.New("ListConfigsFunc not implemented")
}

func (m *MockPointsService) UpdateConfig(ctx context.Context, seasonID string, upd service.PointsConfigUpdate, updatedBy string) (service.PointsConfiguration, error) {
	if m.UpdateConfigFunc != nil {
		return m.UpdateConfigFunc(ctx, seasonID, upd, updatedBy)
	}
	return service.PointsConfiguration{}, errors.New("UpdateConfigFunc not implemented")
}

func (m *MockPointsService) GetPreview(ctx context.Context, seasonID string) (service.PointsPreview, error) {
	if m.GetPreviewFunc != nil {
		return m.GetPreviewFunc(ctx, seasonID)
	}
	return service.PointsPreview{}, errors.New("GetPreviewFunc not implemented")
}

func (m *MockPointsService) CalculatePointsForSeason(ctx context.Context, seasonID string, placement, multiplier int) (int, error) {
	if m.CalculatePointsForSeasonFunc != nil {
		return m.CalculatePointsForSeasonFunc(ctx, seasonID, placement, multiplier)
	}
	return 0, errors.New("CalculatePointsForSeasonFunc not implemented")
}
