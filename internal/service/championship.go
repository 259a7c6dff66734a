package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/newmeca/meca-server/internal/repository/models"
)

const (
	dbTimeout = 2 * time.Second

	unknownKey = "Unknown"
)

var (
	ErrStorageFailure       = errors.New("storage failure")
	ErrArchiveNotFound      = errors.New("championship archive not found")
	ErrArchiveExists        = errors.New("championship archive already exists")
	ErrSeasonNotFound       = errors.New("season not found")
	ErrNoCurrentSeason      = errors.New("no current season")
	ErrPointsConfigNotFound = errors.New("points configuration not found")
	ErrInvalidPointsConfig  = errors.New("invalid points configuration")
)

// ChampionshipService builds the championship archive views of a season.
type ChampionshipService struct {
	storage ChampionshipRepository
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewChampionshipService creates a new ChampionshipService instance.
func NewChampionshipService(storage ChampionshipRepository, logger *zap.Logger) *ChampionshipService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ChampionshipService{
		storage: storage,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func orUnknown(s string) string {
	return lo.Ternary(s != "", s, unknownKey)
}

func competitorName(r models.ResultRow) string {
	return r.FirstName.String + " " + r.LastName.String
}

// GetResultsForYear groups the world finals results of year by format and
// class. A year without an archive or world finals event yields an empty map.
func (s *ChampionshipService) GetResultsForYear(ctx context.Context, year int) (*FormatResults, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	archive, err := s.storage.FindArchiveByYear(dbCtx, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if archive == nil || archive.WorldFinalsEventID.String == "" {
		s.logger.Debug("no world finals event for year", zap.Int("year", year))
		return NewFormatResults(), nil
	}

	rows, err := s.storage.FindResultsByEvent(dbCtx, archive.WorldFinalsEventID.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("fetched world finals results",
		zap.Int("year", year),
		zap.String("event_id", archive.WorldFinalsEventID.String),
		zap.Int("count", len(rows)))

	return groupResults(rows), nil
}

// groupResults buckets rows into format -> class, keeping row order within a class.
func groupResults(rows []models.ResultRow) *FormatResults {
	out := NewFormatResults()
	for _, r := range rows {
		classes := GetOrInsert(out, orUnknown(r.Format.String), NewClassResults)
		Append(classes, orUnknown(r.ClassName.String), ResultRecord{
			Placement:      r.Placement,
			CompetitorName: competitorName(r),
			TeamName:       lo.EmptyableToPtr(r.TeamName.String),
			State:          lo.EmptyableToPtr(r.StateCode.String),
			Score:          r.Score,
		})
	}
	return out
}

// GetStateChampionsForYear collects the first place finishers of every
// state finals event of the season, keyed by venue state. Tied first
// places are all kept.
func (s *ChampionshipService) GetStateChampionsForYear(ctx context.Context, year int) (*StateChampions, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	out := NewStateChampions()

	season, err := s.storage.FindSeasonByYear(dbCtx, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if season == nil {
		s.logger.Debug("no season for year", zap.Int("year", year))
		return out, nil
	}

	events, err := s.storage.FindEventsBySeasonAndType(dbCtx, season.ID, models.EventTypeStateFinals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	for _, ev := range events {
		rows, err := s.storage.FindFirstPlaceResultsByEvent(dbCtx, ev.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		addStateChampions(out, orUnknown(ev.VenueState.String), rows)
	}

	s.logger.Info("fetched state champions",
		zap.Int("year", year),
		zap.Int("events", len(events)),
		zap.Int("states", out.Len()))

	return out, nil
}

func addStateChampions(out *StateChampions, state string, rows []models.ResultRow) {
	GetOrInsert(out, state, func() []ChampionRecord { return []ChampionRecord{} })
	for _, r := range rows {
		Append(out, state, ChampionRecord{
			ClassName:      orUnknown(r.ClassName.String),
			CompetitorName: competitorName(r),
			TeamName:       lo.EmptyableToPtr(r.TeamName.String),
			Score:          r.Score,
		})
	}
}

// ListArchives returns published archives, or all of them when includeUnpublished is set.
func (s *ChampionshipService) ListArchives(ctx context.Context, includeUnpublished bool) ([]Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.ListArchives(dbCtx, includeUnpublished)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return lo.Map(rows, func(a models.Archive, _ int) Archive { return toArchive(a) }), nil
}

func (s *ChampionshipService) GetArchiveByYear(ctx context.Context, year int, includeUnpublished bool) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	a, err := s.storage.FindArchiveByYear(dbCtx, year)
	if err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if a == nil || (!a.Published && !includeUnpublished) {
		return Archive{}, fmt.Errorf("%w: year %d", ErrArchiveNotFound, year)
	}
	return toArchive(*a), nil
}

// GetArchiveByID returns the archive with id whether or not it is published.
func (s *ChampionshipService) GetArchiveByID(ctx context.Context, id string) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	a, err := s.findArchive(dbCtx, id)
	if err != nil {
		return Archive{}, err
	}
	return toArchive(*a), nil
}

func (s *ChampionshipService) findArchive(ctx context.Context, id string) (*models.Archive, error) {
	a, err := s.storage.FindArchiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: id %s", ErrArchiveNotFound, id)
	}
	return a, nil
}

// CreateArchive stores a new archive. A year holds at most one archive.
func (s *ChampionshipService) CreateArchive(ctx context.Context, in ArchiveInput) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	existing, err := s.storage.FindArchiveByYear(dbCtx, in.Year)
	if err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if existing != nil {
		return Archive{}, fmt.Errorf("%w: year %d", ErrArchiveExists, in.Year)
	}

	ts := s.now().UTC().Format(timestampLayout)
	row := models.Archive{
		ID:                 s.newID(),
		SeasonID:           emptyableNullString(in.SeasonID),
		Year:               in.Year,
		Title:              in.Title,
		WorldFinalsEventID: emptyableNullString(in.WorldFinalsEventID),
		Published:          in.Published,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	if err := s.storage.InsertArchive(dbCtx, row); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("created championship archive",
		zap.String("id", row.ID),
		zap.Int("year", row.Year),
		zap.Bool("published", row.Published))

	return toArchive(row), nil
}

// CreateArchiveForSeason creates the unpublished archive of an existing
// season with the standard title.
func (s *ChampionshipService) CreateArchiveForSeason(ctx context.Context, seasonID string, year int) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	season, err := s.storage.FindSeasonByID(dbCtx, seasonID)
	if err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if season == nil {
		return Archive{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, seasonID)
	}

	return s.CreateArchive(ctx, ArchiveInput{
		SeasonID: &season.ID,
		Year:     year,
		Title:    fmt.Sprintf("%d MECA World Champions", year),
	})
}

// UpdateArchive applies upd to the archive with id. An empty SeasonID or
// WorldFinalsEventID clears the link.
func (s *ChampionshipService) UpdateArchive(ctx context.Context, id string, upd ArchiveUpdate) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	a, err := s.findArchive(dbCtx, id)
	if err != nil {
		return Archive{}, err
	}

	row := *a
	if upd.SeasonID != nil {
		row.SeasonID = emptyableNullString(upd.SeasonID)
	}
	if upd.Title != nil {
		row.Title = *upd.Title
	}
	if upd.WorldFinalsEventID != nil {
		row.WorldFinalsEventID = emptyableNullString(upd.WorldFinalsEventID)
	}
	if upd.Published != nil {
		row.Published = *upd.Published
	}
	row.UpdatedAt = s.now().UTC().Format(timestampLayout)

	if err := s.storage.UpdateArchive(dbCtx, row); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("updated championship archive", zap.String("id", id), zap.Int("year", row.Year))

	return toArchive(row), nil
}

func (s *ChampionshipService) SetArchivePublished(ctx context.Context, id string, published bool) (Archive, error) {
	return s.UpdateArchive(ctx, id, ArchiveUpdate{Published: &published})
}

// DeleteArchive removes the archive with id and returns what was removed.
func (s *ChampionshipService) DeleteArchive(ctx context.Context, id string) (Archive, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	a, err := s.findArchive(dbCtx, id)
	if err != nil {
		return Archive{}, err
	}
	if err := s.storage.DeleteArchive(dbCtx, id); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("deleted championship archive", zap.String("id", id), zap.Int("year", a.Year))

	return toArchive(*a), nil
}

func emptyableNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toArchive(a models.Archive) Archive {
	return Archive{
		ID:                 a.ID,
		SeasonID:           lo.EmptyableToPtr(a.SeasonID.String),
		Year:               a.Year,
		Title:              a.Title,
		WorldFinalsEventID: lo.EmptyableToPtr(a.WorldFinalsEventID.String),
		Published:          a.Published,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
