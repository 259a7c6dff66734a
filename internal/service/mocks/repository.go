package mocks

import (
	"context"
	"errors"

	"github.com/newmeca/meca-server/internal/repository/models"
)

// MockChampionshipRepository is a mock implementation of the ChampionshipRepository
// interface for testing the service layer.
type MockChampionshipRepository struct {
	FindSeasonByYearFunc             func(ctx context.Context, year int) (*models.Season, error)
	FindSeasonByIDFunc               func(ctx context.Context, id string) (*models.Season, error)
	FindArchiveByYearFunc            func(ctx context.Context, year int) (*models.Archive, error)
	FindArchiveByIDFunc              func(ctx context.Context, id string) (*models.Archive, error)
	ListArchivesFunc                 func(ctx context.Context, includeUnpublished bool) ([]models.Archive, error)
	InsertArchiveFunc                func(ctx context.Context, a models.Archive) error
	UpdateArchiveFunc                func(ctx context.Context, a models.Archive) error
	DeleteArchiveFunc                func(ctx context.Context, id string) error
	FindEventsBySeasonAndTypeFunc    func(ctx context.Context, seasonID, eventType string) ([]models.Event, error)
	FindResultsByEventFunc           func(ctx context.Context, eventID string) ([]models.ResultRow, error)
	FindFirstPlaceResultsByEventFunc func(ctx context.Context, eventID string) ([]models.ResultRow, error)
}

func (m *MockChampionshipRepository) FindSeasonByYear(ctx context.Context, year int) (*models.Season, error) {
	if m.FindSeasonByYearFunc != nil {
		return m.FindSeasonByYearFunc(ctx, year)
	}
	return nil, errors.New("FindSeasonByYearFunc not implemented")
}

func (m *MockChampionshipRepository) FindArchiveByYear(ctx context.Context, year int) (*models.Archive, error) {
	if m.FindArchiveByYearFunc != nil {
		return m.FindArchiveByYearFunc(ctx, year)
	}
	return nil, errors.New("FindArchiveByYearFunc not implemented")
}

func (m *MockChampionshipRepository) ListArchives(ctx context.Context, includeUnpublished bool) ([]models.Archive, error) {
	if m.ListArchivesFunc != nil {
		return m.ListArchivesFunc(ctx, includeUnpublished)
	}
	return nil, errors.New("ListArchivesFunc not implemented")
}

func (m *MockChampionshipRepository) FindSeasonByID(ctx context.Context, id string) (*models.Season, error) {
	if m.FindSeasonByIDFunc != nil {
		return m.FindSeasonByIDFunc(ctx, id)
	}
	return nil, errors.New("FindSeasonByIDFunc not implemented")
}

func (m *MockChampionshipRepository) FindArchiveByID(ctx context.Context, id string) (*models.Archive, error) {
	if m.FindArchiveByIDFunc != nil {
		return m.FindArchiveByIDFunc(ctx, id)
	}
	return nil, errors.New("FindArchiveByIDFunc not implemented")
}

func (m *MockChampionshipRepository) InsertArchive(ctx context.Context, a models.Archive) error {
	if m.InsertArchiveFunc != nil {
		return m.InsertArchiveFunc(ctx, a)
	}
	return errors.New("InsertArchiveFunc not implemented")
}

func (m *MockChampionshipRepository) UpdateArchive(ctx context.Context, a models.Archive) error {
	if m.UpdateArchiveFunc != nil {
		return m.UpdateArchiveFunc(ctx, a)
	}
	return errors.New("UpdateArchiveFunc not implemented")
}

func (m *MockChampionshipRepository) DeleteArchive(ctx context.Context, id string) error {
	if m.DeleteArchiveFunc != nil {
		return m.DeleteArchiveFunc(ctx, id)
	}
	return errors.New("DeleteArchiveFunc not implemented")
}

func (m *MockChampionshipRepository) FindEventsBySeasonAndType(ctx context.Context, seasonID, eventType string) ([]models.Event, error) {
	if m.FindEventsBySeasonAndTypeFunc != nil {
		return m.FindEventsBySeasonAndTypeFunc(ctx, seasonID, eventType)
	}
	return nil, errors.New("FindEventsBySeasonAndTypeFunc not implemented")
}

func (m *MockChampionshipRepository) FindResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error) {
	if m.FindResultsByEventFunc != nil {
		return m.FindResultsByEventFunc(ctx, eventID)
	}
	return nil, errors.New("FindResultsByEventFunc not implemented")
}

func (m *MockChampionshipRepository) FindFirstPlaceResultsByEvent(ctx context.Context, eventID string) ([]models.ResultRow, error) {
	if m.FindFirstPlaceResultsByEventFunc != nil {
		return m.FindFirstPlaceResultsByEventFunc(ctx, eventID)
	}
	return nil, errors.New("FindFirstPlaceResultsByEventFunc not implemented")
}

// MockPointsRepository is a mock implementation of the PointsRepository interface.
type MockPointsRepository struct {
	FindSeasonByIDFunc           func(ctx context.Context, id string) (*models.Season, error)
	FindCurrentSeasonFunc        func(ctx context.Context) (*models.Season, error)
	FindPointsConfigBySeasonFunc func(ctx context.Context, seasonID string) (*models.PointsConfiguration, error)
	FindPointsConfigByIDFunc     func(ctx context.Context, id string) (*models.PointsConfiguration, error)
	ListPointsConfigsFunc        func(ctx context.Context) ([]models.PointsConfiguration, error)
	InsertPointsConfigFunc       func(ctx context.Context, c models.PointsConfiguration) error
	UpdatePointsConfigFunc       func(ctx context.Context, c models.PointsConfiguration) error
	ProfileExistsFunc            func(ctx context.Context, id string) (bool, error)
}

func (m *MockPointsRepository) FindSeasonByID(ctx context.Context, id string) (*models.Season, error) {
	if m.FindSeasonByIDFunc != nil {
		return m.FindSeasonByIDFunc(ctx, id)
	}
	return nil, errors.New("FindSeasonByIDFunc not implemented")
}

func (m *MockPointsRepository) FindCurrentSeason(ctx context.Context) (*models.Season, error) {
	if m.FindCurrentSeasonFunc != nil {
		return m.FindCurrentSeasonFunc(ctx)
	}
	return nil, errors.New("FindCurrentSeasonFunc not implemented")
}

func (m *MockPointsRepository) FindPointsConfigBySeason(ctx context.Context, seasonID string) (*models.PointsConfiguration, error) {
	if m.FindPointsConfigBySeasonFunc != nil {
		return m.FindPointsConfigBySeasonFunc(ctx, seasonID)
	}
	return nil, errors.New("FindPointsConfigBySeasonFunc not implemented")
}

func (m *MockPointsRepository) FindPointsConfigByID(ctx context.Context, id string) (*models.PointsConfiguration, error) {
	if m.FindPointsConfigByIDFunc != nil {
		return m.FindPointsConfigByIDFunc(ctx, id)
	}
	return nil, errors.New("FindPointsConfigByIDFunc not implemented")
}

func (m *MockPointsRepository) ListPointsConfigs(ctx context.Context) ([]models.PointsConfiguration, error) {
	if m.ListPointsConfigsFunc != nil {
		return m.ListPointsConfigsFunc(ctx)
	}
	return nil, errors.New("ListPointsConfigsFunc not implemented")
}

func (m *MockPointsRepository) InsertPointsConfig(ctx context.Context, c models.PointsConfiguration) error {
	if m.InsertPointsConfigFunc != nil {
		return m.InsertPointsConfigFunc(ctx, c)
	}
	return errors.New("InsertPointsConfigFunc not implemented")
}

func (m *MockPointsRepository) UpdatePointsConfig(ctx context.Context, c models.PointsConfiguration) error {
	if m.UpdatePointsConfigFunc != nil {
		return m.UpdatePointsConfigFunc(ctx, c)
	}
	return errors.New("UpdatePointsConfigFunc not implemented")
}

func (m *MockPointsRepository) ProfileExists(ctx context.Context, id string) (bool, error) {
	if m.ProfileExistsFunc != nil {
		return m.ProfileExistsFunc(ctx, id)
	}
	return false, errors.New("ProfileExistsFunc not implemented")
}
