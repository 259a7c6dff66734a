package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/newmeca/meca-server/internal/repository/models"
	"github.com/newmeca/meca-server/internal/service/mocks"
)

func newTestChampionshipService(repo ChampionshipRepository) *ChampionshipService {
	svc := NewChampionshipService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "arch-new" }
	return svc
}

func storedArchive() *models.Archive {
	return &models.Archive{
		ID:        "arch-2025",
		SeasonID:  ns(testSeasonID),
		Year:      2025,
		Title:     "2025 MECA World Champions",
		CreatedAt: "2025-10-01T00:00:00Z",
		UpdatedAt: "2025-10-01T00:00:00Z",
	}
}

func TestCreateArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("stores new archive", func(t *testing.T) {
		var saved models.Archive
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByYearFunc: func(ctx context.Context, year int) (*models.Archive, error) {
				assert.Equal(t, 2025, year)
				return nil, nil
			},
			InsertArchiveFunc: func(ctx context.Context, a models.Archive) error {
				saved = a
				return nil
			},
		}

		got, err := newTestChampionshipService(mockRepo).CreateArchive(ctx, ArchiveInput{
			Year:               2025,
			Title:              "2025 World Finals",
			WorldFinalsEventID: lo.ToPtr(""),
			Published:          true,
		})

		require.NoError(t, err)
		assert.Equal(t, "arch-new", got.ID)
		assert.Equal(t, "2025-11-01T09:30:00Z", got.CreatedAt)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		assert.True(t, got.Published)
		assert.Nil(t, got.SeasonID)
		assert.Nil(t, got.WorldFinalsEventID)

		assert.Equal(t, "arch-new", saved.ID)
		assert.False(t, saved.WorldFinalsEventID.Valid)
	})

	t.Run("year already archived", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByYearFunc: func(ctx context.Context, year int) (*models.Archive, error) {
				return storedArchive(), nil
			},
			InsertArchiveFunc: func(ctx context.Context, a models.Archive) error {
				t.Fatal("duplicate year must not be written")
				return nil
			},
		}

		_, err := newTestChampionshipService(mockRepo).CreateArchive(ctx, ArchiveInput{Year: 2025, Title: "dup"})

		assert.ErrorIs(t, err, ErrArchiveExists)
	})

	t.Run("insert failure", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByYearFunc: func(ctx context.Context, year int) (*models.Archive, error) {
				return nil, nil
			},
			InsertArchiveFunc: func(ctx context.Context, a models.Archive) error {
				return errors.New("UNIQUE constraint failed")
			},
		}

		_, err := newTestChampionshipService(mockRepo).CreateArchive(ctx, ArchiveInput{Year: 2025, Title: "x"})

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestCreateArchiveForSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("unpublished with standard title", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindSeasonByIDFunc: func(ctx context.Context, id string) (*models.Season, error) {
				return &models.Season{ID: id, Year: 2025, Name: "2025 Season"}, nil
			},
			FindArchiveByYearFunc: func(ctx context.Context, year int) (*models.Archive, error) {
				return nil, nil
			},
			InsertArchiveFunc: func(ctx context.Context, a models.Archive) error {
				return nil
			},
		}

		got, err := newTestChampionshipService(mockRepo).CreateArchiveForSeason(ctx, testSeasonID, 2025)

		require.NoError(t, err)
		assert.Equal(t, "2025 MECA World Champions", got.Title)
		assert.False(t, got.Published)
		require.NotNil(t, got.SeasonID)
		assert.Equal(t, testSeasonID, *got.SeasonID)
	})

	t.Run("unknown season", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindSeasonByIDFunc: func(ctx context.Context, id string) (*models.Season, error) {
				return nil, nil
			},
		}

		_, err := newTestChampionshipService(mockRepo).CreateArchiveForSeason(ctx, testSeasonID, 2025)

		assert.ErrorIs(t, err, ErrSeasonNotFound)
	})
}

func TestUpdateArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("applies set fields only", func(t *testing.T) {
		var saved models.Archive
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return storedArchive(), nil
			},
			UpdateArchiveFunc: func(ctx context.Context, a models.Archive) error {
				saved = a
				return nil
			},
		}

		got, err := newTestChampionshipService(mockRepo).UpdateArchive(ctx, "arch-2025", ArchiveUpdate{
			WorldFinalsEventID: lo.ToPtr("ev-wf-2025"),
			SeasonID:           lo.ToPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "2025 MECA World Champions", got.Title)
		assert.Equal(t, "ev-wf-2025", *got.WorldFinalsEventID)
		assert.Nil(t, got.SeasonID)
		assert.Equal(t, "2025-10-01T00:00:00Z", got.CreatedAt)
		assert.Equal(t, "2025-11-01T09:30:00Z", got.UpdatedAt)

		assert.Equal(t, sql.NullString{}, saved.SeasonID)
		assert.Equal(t, 2025, saved.Year)
	})

	t.Run("SetArchivePublished", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return storedArchive(), nil
			},
			UpdateArchiveFunc: func(ctx context.Context, a models.Archive) error {
				assert.True(t, a.Published)
				return nil
			},
		}

		got, err := newTestChampionshipService(mockRepo).SetArchivePublished(ctx, "arch-2025", true)

		require.NoError(t, err)
		assert.True(t, got.Published)
	})

	t.Run("unknown archive", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return nil, nil
			},
		}

		_, err := newTestChampionshipService(mockRepo).UpdateArchive(ctx, "missing", ArchiveUpdate{Title: lo.ToPtr("x")})

		assert.ErrorIs(t, err, ErrArchiveNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("write failure", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return storedArchive(), nil
			},
			UpdateArchiveFunc: func(ctx context.Context, a models.Archive) error {
				return errors.New("database is locked")
			},
		}

		_, err := newTestChampionshipService(mockRepo).SetArchivePublished(ctx, "arch-2025", false)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestDeleteArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("returns removed archive", func(t *testing.T) {
		var deleted string
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return storedArchive(), nil
			},
			DeleteArchiveFunc: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		got, err := newTestChampionshipService(mockRepo).DeleteArchive(ctx, "arch-2025")

		require.NoError(t, err)
		assert.Equal(t, "arch-2025", deleted)
		assert.Equal(t, 2025, got.Year)
	})

	t.Run("unknown archive", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return nil, nil
			},
		}

		_, err := newTestChampionshipService(mockRepo).DeleteArchive(ctx, "missing")

		assert.ErrorIs(t, err, ErrArchiveNotFound)
	})

	t.Run("GetArchiveByID lookup failure", func(t *testing.T) {
		mockRepo := &mocks.MockChampionshipRepository{
			FindArchiveByIDFunc: func(ctx context.Context, id string) (*models.Archive, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := newTestChampionshipService(mockRepo).GetArchiveByID(ctx, "arch-2025")

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}
