package grpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/newmeca/meca-server/api/v1"
	handler "github.com/newmeca/meca-server/internal/grpc"
	"github.com/newmeca/meca-server/internal/grpc/mocks"
	"github.com/newmeca/meca-server/internal/repository"
	"github.com/newmeca/meca-server/internal/service"
	grpcsrv "github.com/newmeca/meca-server/pkg/grpc/server"
	"github.com/newmeca/meca-server/testsupport/basedata"
	"github.com/newmeca/meca-server/testsupport/testdb"
)

func setupE2E(t *testing.T) (pb.ChampionshipsClient, *mocks.MemoryCache) {
	t.Helper()

	db := testdb.InitTestDb(t)
	basedata.Seed(t, db)

	logger := zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))
	cache := mocks.NewMemoryCache()

	champs := service.NewChampionshipService(repository.NewChampionshipRepository(db), logger)
	points := service.NewPointsService(repository.NewPointsRepository(db), logger)
	handlers := handler.NewGRPCHandlers(champs, points, cache, logger, time.Minute)

	lis := bufconn.Listen(1 << 20)
	srv, err := grpcsrv.New(grpcsrv.WithListener(lis), grpcsrv.WithLogger(logger))
	require.NoError(t, err)
	srv.RegisterServiceWithHealth(pb.ServiceName, func(s *grpc.Server) {
		pb.RegisterChampionshipsServer(s, handlers)
	})
	srv.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewChampionshipsClient(conn), cache
}

func TestE2E_GetResultsForYear(t *testing.T) {
	client, cache := setupE2E(t)
	ctx := context.Background()

	resp, err := client.GetResultsForYear(ctx, &pb.YearRequest{Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, []string{"SPL", "SQL", "Unknown"}, service.Keys(resp))

	spl, _ := resp.Get("SPL")
	street, ok := spl.Get("Street 1")
	require.True(t, ok)
	require.Len(t, street, 2)
	assert.Equal(t, "Ann Lee", street[0].CompetitorName)
	assert.Equal(t, "Bass Kings", *street[0].TeamName)
	assert.Equal(t, 2, street[1].Placement)
	assert.Nil(t, street[1].TeamName)

	unknown, _ := resp.Get("Unknown")
	assert.Equal(t, []string{"Unknown"}, service.Keys(unknown))

	assert.Eventually(t, func() bool { return cache.Has("grpc:results:2024") }, time.Second, 10*time.Millisecond)

	again, err := client.GetResultsForYear(ctx, &pb.YearRequest{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, service.Keys(resp), service.Keys(again))

	t.Run("year without world finals is empty", func(t *testing.T) {
		resp, err := client.GetResultsForYear(ctx, &pb.YearRequest{Year: 2025})

		require.NoError(t, err)
		assert.Zero(t, resp.Len())
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := client.GetResultsForYear(ctx, &pb.YearRequest{Year: 20240})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestE2E_GetStateChampionsForYear(t *testing.T) {
	client, _ := setupE2E(t)

	resp, err := client.GetStateChampionsForYear(context.Background(), &pb.YearRequest{Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, []string{"TX", "OK", "Unknown", "FL"}, service.Keys(resp))

	tx, _ := resp.Get("TX")
	require.Len(t, tx, 2)
	assert.Equal(t, "Street 1", tx[0].ClassName)
	assert.Equal(t, "Street 1", tx[1].ClassName)

	fl, ok := resp.Get("FL")
	require.True(t, ok)
	assert.Empty(t, fl)
}

func TestE2E_Archives(t *testing.T) {
	client, _ := setupE2E(t)
	ctx := context.Background()

	published, err := client.ListArchives(ctx, &pb.ListArchivesRequest{})
	require.NoError(t, err)
	require.Len(t, published.Archives, 1)
	assert.Equal(t, basedata.Archive2024ID, published.Archives[0].ID)

	all, err := client.ListArchives(ctx, &pb.ListArchivesRequest{IncludeUnpublished: true})
	require.NoError(t, err)
	assert.Len(t, all.Archives, 2)

	_, err = client.GetArchive(ctx, &pb.ArchiveRequest{Year: 2023})
	assert.Equal(t, codes.NotFound, status.Code(err))

	archive, err := client.GetArchive(ctx, &pb.ArchiveRequest{Year: 2023, IncludeUnpublished: true})
	require.NoError(t, err)
	assert.False(t, archive.Published)
}

func TestE2E_ArchiveAdministration(t *testing.T) {
	client, cache := setupE2E(t)
	ctx := context.Background()

	_, err := client.GetArchive(ctx, &pb.ArchiveRequest{Year: 2025})
	assert.Equal(t, codes.NotFound, status.Code(err))

	published, err := client.ListArchives(ctx, &pb.ListArchivesRequest{})
	require.NoError(t, err)
	require.Len(t, published.Archives, 1)
	assert.Eventually(t, func() bool { return cache.Has("grpc:archives:false") }, time.Second, 10*time.Millisecond)

	created, err := client.CreateArchiveForSeason(ctx, &pb.CreateArchiveForSeasonRequest{SeasonID: basedata.Season2025ID, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "2025 MECA World Champions", created.Title)
	assert.False(t, created.Published)
	assert.False(t, cache.Has("grpc:archives:false"))

	_, err = client.CreateArchive(ctx, &pb.CreateArchiveRequest{Year: 2025, Title: "again"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.SetArchivePublished(ctx, &pb.SetArchivePublishedRequest{ID: created.ID, Published: true})
	require.NoError(t, err)

	archive, err := client.GetArchive(ctx, &pb.ArchiveRequest{Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, created.ID, archive.ID)

	published, err = client.ListArchives(ctx, &pb.ListArchivesRequest{})
	require.NoError(t, err)
	assert.Len(t, published.Archives, 2)

	updated, err := client.UpdateArchive(ctx, &pb.UpdateArchiveRequest{
		ID:     created.ID,
		Update: pb.ArchiveUpdate{Title: ptr("2025 World Finals")},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025 World Finals", updated.Title)

	byID, err := client.GetArchiveByID(ctx, &pb.ArchiveIDRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "2025 World Finals", byID.Title)
	assert.True(t, byID.Published)

	removed, err := client.DeleteArchive(ctx, &pb.ArchiveIDRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, 2025, removed.Year)

	_, err = client.GetArchive(ctx, &pb.ArchiveRequest{Year: 2025})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.DeleteArchive(ctx, &pb.ArchiveIDRequest{ID: created.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestE2E_PointsConfiguration(t *testing.T) {
	client, cache := setupE2E(t)
	ctx := context.Background()

	current, err := client.GetCurrentPointsConfig(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, basedata.Season2025ID, current.SeasonID)
	assert.Equal(t, service.DefaultPointsConfig(), current.PointsConfig)

	configKey := "grpc:points_config:" + basedata.Season2025ID
	_, err = client.GetPointsConfig(ctx, &pb.SeasonRequest{SeasonID: basedata.Season2025ID})
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return cache.Has(configKey) }, time.Second, 10*time.Millisecond)

	updated, err := client.UpdatePointsConfig(ctx, &pb.UpdatePointsConfigRequest{
		SeasonID:  basedata.Season2025ID,
		UpdatedBy: "p-ann",
		Update:    pb.PointsConfigUpdate{Standard1st: ptr(6)},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Standard1st)
	assert.False(t, cache.Has(configKey))

	fresh, err := client.GetPointsConfig(ctx, &pb.SeasonRequest{SeasonID: basedata.Season2025ID})
	require.NoError(t, err)
	assert.Equal(t, 6, fresh.Standard1st)
	require.NotNil(t, fresh.UpdatedBy)
	assert.Equal(t, "p-ann", *fresh.UpdatedBy)

	t.Run("unknown editor is not recorded", func(t *testing.T) {
		resp, err := client.UpdatePointsConfig(ctx, &pb.UpdatePointsConfigRequest{
			SeasonID:  basedata.Season2025ID,
			UpdatedBy: "admin",
			Update:    pb.PointsConfigUpdate{Standard1st: ptr(7)},
		})

		require.NoError(t, err)
		assert.Equal(t, 7, resp.Standard1st)
		require.NotNil(t, resp.UpdatedBy)
		assert.Equal(t, "p-ann", *resp.UpdatedBy)
	})

	t.Run("invalid merge is rejected", func(t *testing.T) {
		_, err := client.UpdatePointsConfig(ctx, &pb.UpdatePointsConfigRequest{
			SeasonID: basedata.Season2025ID,
			Update:   pb.PointsConfigUpdate{Standard2nd: ptr(9)},
		})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown season", func(t *testing.T) {
		_, err := client.GetPointsConfig(ctx, &pb.SeasonRequest{SeasonID: "9a9a9a9a-0000-4000-8000-000000000000"})

		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("list", func(t *testing.T) {
		resp, err := client.ListPointsConfigs(ctx, &pb.Empty{})

		require.NoError(t, err)
		require.Len(t, resp.Configs, 1)
		assert.Equal(t, basedata.Season2025ID, resp.Configs[0].SeasonID)
	})
}

func TestE2E_Points(t *testing.T) {
	client, _ := setupE2E(t)
	ctx := context.Background()

	preview, err := client.GetPointsPreview(ctx, &pb.SeasonRequest{SeasonID: basedata.Season2024ID})
	require.NoError(t, err)
	require.Len(t, preview.Preview, 5)
	assert.Equal(t, pb.PreviewRow{Placement: 1, Standard1X: 5, Standard2X: 10, Standard3X: 15, FourX: 30}, preview.Preview[0])

	cfg := service.DefaultPointsConfig()
	cfg.ExtendedEnabled = true
	cfg.ExtendedPoints = 15
	cfg.ExtendedMaxPlace = 50
	adhoc, err := client.PreviewPoints(ctx, &cfg)
	require.NoError(t, err)
	require.Len(t, adhoc.Preview, 7)
	assert.Equal(t, 50, adhoc.Preview[6].Placement)

	calc, err := client.CalculatePoints(ctx, &pb.CalculatePointsRequest{
		SeasonID:   basedata.Season2024ID,
		Placement:  2,
		Multiplier: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, calc.Points)
}

func ptr[T any](v T) *T { return &v }
