package grpc

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/newmeca/meca-server/api/v1"
	"github.com/newmeca/meca-server/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyResults        CacheKeyType = "grpc:results"
	cacheKeyStateChampions CacheKeyType = "grpc:state_champions"
	cacheKeyArchives       CacheKeyType = "grpc:archives"
	cacheKeyArchive        CacheKeyType = "grpc:archive"
	cacheKeyPointsConfig   CacheKeyType = "grpc:points_config"
	cacheKeyPointsConfigs  CacheKeyType = "grpc:points_configs"
	cacheKeyPointsPreview  CacheKeyType = "grpc:points_preview"

	currentSeasonKey = "current"
)

type GRPCHandlers struct {
	pb.UnimplementedChampionshipsServer
	championships ChampionshipService
	points        PointsService
	cache         Cacher
	logger        *zap.Logger
	sfGroup       FlightGroup
	cacheTTL      time.Duration
	updates       UpdateRecorder
}

type HandlerOption func(*GRPCHandlers)

// WithUpdateRecorder reports successful points configuration updates to r.
func WithUpdateRecorder(r UpdateRecorder) HandlerOption {
	return func(h *GRPCHandlers) {
		h.updates = r
	}
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(championships ChampionshipService, points PointsService, cache Cacher, logger *zap.Logger, ttl time.Duration, opts ...HandlerOption) *GRPCHandlers {
	if championships == nil {
		panic("nil ChampionshipService provided to NewGRPCHandlers")
	}
	if points == nil {
		panic("nil PointsService provided to NewGRPCHandlers")
	}
	if cache == nil {
		panic("nil Cacher provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	h := &GRPCHandlers{
		championships: championships,
		points:        points,
		cache:         cache,
		logger:        logger.Named("grpc-handler"),
		cacheTTL:      ttl,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var validate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidationMapRules(map[string]string{"Year": "min=1000,max=9999"}, pb.YearRequest{}, pb.ArchiveRequest{})
	v.RegisterStructValidationMapRules(map[string]string{"SeasonID": "required,uuid"}, pb.SeasonRequest{}, pb.UpdatePointsConfigRequest{})
	v.RegisterStructValidationMapRules(map[string]string{"ID": "required"}, pb.ArchiveIDRequest{}, pb.UpdateArchiveRequest{}, pb.SetArchivePublishedRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Year":  "min=1000,max=9999",
		"Title": "required",
	}, pb.CreateArchiveRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"SeasonID": "required,uuid",
		"Year":     "min=1000,max=9999",
	}, pb.CreateArchiveForSeasonRequest{})
	v.RegisterStructValidationMapRules(map[string]string{"Title": "omitempty,min=1"}, pb.ArchiveUpdate{})
	v.RegisterStructValidationMapRules(map[string]string{
		"SeasonID":   "required,uuid",
		"Placement":  "min=1",
		"Multiplier": "min=0,max=4",
	}, pb.CalculatePointsRequest{})
	return v
}

// validateRequest checks req against its registered rules and returns an
// InvalidArgument status describing every failure.
func validateRequest(req any) error {
	if req == nil || reflect.ValueOf(req).IsNil() {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("%s must be a UUID", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return status.Error(codes.InvalidArgument, strings.Join(msgs, "; "))
}

func normalizeKey(prefix CacheKeyType, parts ...any) string {
	var b strings.Builder
	b.WriteString(string(prefix))
	for _, p := range parts {
		fmt.Fprintf(&b, ":%v", p)
	}
	return b.String()
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrArchiveNotFound),
		errors.Is(err, service.ErrSeasonNotFound),
		errors.Is(err, service.ErrNoCurrentSeason),
		errors.Is(err, service.ErrPointsConfigNotFound):
		s.logger.Info("not found", zap.String("op", op), zap.Error(err))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrArchiveExists):
		s.logger.Info("already exists", zap.String("op", op), zap.Error(err))
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrInvalidPointsConfig):
		s.logger.Info("invalid points configuration", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetResultsForYear(ctx context.Context, req *pb.YearRequest) (*pb.FormatResults, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	year := req.GetYear()
	cacheKey := normalizeKey(cacheKeyResults, year)

	results, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (*service.FormatResults, error) {
		return s.championships.GetResultsForYear(fetchCtx, year)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetResultsForYear", err)
	}

	return results, nil
}

func (s *GRPCHandlers) GetStateChampionsForYear(ctx context.Context, req *pb.YearRequest) (*pb.StateChampions, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	year := req.GetYear()
	cacheKey := normalizeKey(cacheKeyStateChampions, year)

	champions, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (*service.StateChampions, error) {
		return s.championships.GetStateChampionsForYear(fetchCtx, year)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetStateChampionsForYear", err)
	}

	return champions, nil
}

func (s *GRPCHandlers) ListArchives(ctx context.Context, req *pb.ListArchivesRequest) (*pb.ArchivesResponse, error) {
	if req == nil {
		req = &pb.ListArchivesRequest{}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	include := req.IncludeUnpublished
	cacheKey := normalizeKey(cacheKeyArchives, include)

	archives, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.Archive, error) {
		return s.championships.ListArchives(fetchCtx, include)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListArchives", err)
	}

	if archives == nil {
		archives = []service.Archive{}
	}
	return &pb.ArchivesResponse{Archives: archives}, nil
}

func (s *GRPCHandlers) GetArchive(ctx context.Context, req *pb.ArchiveRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	year, include := req.Year, req.IncludeUnpublished
	cacheKey := normalizeKey(cacheKeyArchive, year, include)

	archive, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Archive, error) {
		return s.championships.GetArchiveByYear(fetchCtx, year, include)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetArchive", err)
	}

	return &archive, nil
}

// GetArchiveByID reads an archive straight from storage, published or not.
func (s *GRPCHandlers) GetArchiveByID(ctx context.Context, req *pb.ArchiveIDRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.GetArchiveByID(ctx, req.ID)
	if err != nil {
		return nil, s.handleError(ctx, "GetArchiveByID", err)
	}

	return &archive, nil
}

func (s *GRPCHandlers) CreateArchive(ctx context.Context, req *pb.CreateArchiveRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.CreateArchive(ctx, *req)
	if err != nil {
		return nil, s.handleError(ctx, "CreateArchive", err)
	}

	s.invalidateArchive(ctx, archive.Year)
	return &archive, nil
}

func (s *GRPCHandlers) CreateArchiveForSeason(ctx context.Context, req *pb.CreateArchiveForSeasonRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.CreateArchiveForSeason(ctx, req.SeasonID, req.Year)
	if err != nil {
		return nil, s.handleError(ctx, "CreateArchiveForSeason", err)
	}

	s.invalidateArchive(ctx, archive.Year)
	return &archive, nil
}

func (s *GRPCHandlers) UpdateArchive(ctx context.Context, req *pb.UpdateArchiveRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.UpdateArchive(ctx, req.ID, req.Update)
	if err != nil {
		return nil, s.handleError(ctx, "UpdateArchive", err)
	}

	s.invalidateArchive(ctx, archive.Year)
	return &archive, nil
}

func (s *GRPCHandlers) SetArchivePublished(ctx context.Context, req *pb.SetArchivePublishedRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.SetArchivePublished(ctx, req.ID, req.Published)
	if err != nil {
		return nil, s.handleError(ctx, "SetArchivePublished", err)
	}

	s.invalidateArchive(ctx, archive.Year)
	return &archive, nil
}

// DeleteArchive removes an archive and returns it as it was stored.
func (s *GRPCHandlers) DeleteArchive(ctx context.Context, req *pb.ArchiveIDRequest) (*pb.Archive, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	archive, err := s.championships.DeleteArchive(ctx, req.ID)
	if err != nil {
		return nil, s.handleError(ctx, "DeleteArchive", err)
	}

	s.invalidateArchive(ctx, archive.Year)
	return &archive, nil
}

// invalidateArchive drops every cached view that reads the archive of year.
func (s *GRPCHandlers) invalidateArchive(ctx context.Context, year int) {
	Invalidate(ctx, s.cache, &s.sfGroup, s.logger,
		normalizeKey(cacheKeyArchive, year, true),
		normalizeKey(cacheKeyArchive, year, false),
		normalizeKey(cacheKeyArchives, true),
		normalizeKey(cacheKeyArchives, false),
		normalizeKey(cacheKeyResults, year),
	)
}

func (s *GRPCHandlers) GetPointsConfig(ctx context.Context, req *pb.SeasonRequest) (*pb.PointsConfiguration, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	seasonID := req.GetSeasonId()
	cacheKey := normalizeKey(cacheKeyPointsConfig, seasonID)

	cfg, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.PointsConfiguration, error) {
		return s.points.GetConfigForSeason(fetchCtx, seasonID)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetPointsConfig", err)
	}

	return &cfg, nil
}

func (s *GRPCHandlers) GetCurrentPointsConfig(ctx context.Context, _ *pb.Empty) (*pb.PointsConfiguration, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyPointsConfig, currentSeasonKey)

	cfg, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.PointsConfiguration, error) {
		return s.points.GetConfigForCurrentSeason(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCurrentPointsConfig", err)
	}

	return &cfg, nil
}

func (s *GRPCHandlers) ListPointsConfigs(ctx context.Context, _ *pb.Empty) (*pb.PointsConfigsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyPointsConfigs)

	configs, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.PointsConfiguration, error) {
		return s.points.ListConfigs(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListPointsConfigs", err)
	}

	if configs == nil {
		configs = []service.PointsConfiguration{}
	}
	return &pb.PointsConfigsResponse{Configs: configs}, nil
}

func (s *GRPCHandlers) GetPointsPreview(ctx context.Context, req *pb.SeasonRequest) (*pb.PointsPreview, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	seasonID := req.GetSeasonId()
	cacheKey := normalizeKey(cacheKeyPointsPreview, seasonID)

	preview, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.PointsPreview, error) {
		return s.points.GetPreview(fetchCtx, seasonID)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetPointsPreview", err)
	}

	return &preview, nil
}

// PreviewPoints computes the preview of an unsaved configuration. The
// configuration must be valid.
func (s *GRPCHandlers) PreviewPoints(ctx context.Context, req *pb.PointsConfig) (*pb.PreviewResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := service.ValidatePointsConfig(*req); err != nil {
		return nil, s.handleError(ctx, "PreviewPoints", err)
	}

	return &pb.PreviewResponse{Preview: service.ComputePreview(*req)}, nil
}

func (s *GRPCHandlers) UpdatePointsConfig(ctx context.Context, req *pb.UpdatePointsConfigRequest) (*pb.PointsConfiguration, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cfg, err := s.points.UpdateConfig(ctx, req.SeasonID, req.Update, req.UpdatedBy)
	if err != nil {
		return nil, s.handleError(ctx, "UpdatePointsConfig", err)
	}

	Invalidate(ctx, s.cache, &s.sfGroup, s.logger,
		normalizeKey(cacheKeyPointsConfig, req.SeasonID),
		normalizeKey(cacheKeyPointsPreview, req.SeasonID),
		normalizeKey(cacheKeyPointsConfig, currentSeasonKey),
		normalizeKey(cacheKeyPointsConfigs),
	)

	if s.updates != nil {
		s.updates.PointsConfigUpdated()
	}

	s.logger.Info("points configuration updated",
		zap.String("season_id", req.SeasonID),
		zap.String("updated_by", req.UpdatedBy))

	return &cfg, nil
}

func (s *GRPCHandlers) CalculatePoints(ctx context.Context, req *pb.CalculatePointsRequest) (*pb.CalculatePointsResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	points, err := s.points.CalculatePointsForSeason(ctx, req.SeasonID, req.Placement, req.Multiplier)
	if err != nil {
		return nil, s.handleError(ctx, "CalculatePoints", err)
	}

	return &pb.CalculatePointsResponse{Points: points}, nil
}
