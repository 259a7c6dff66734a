package server

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type observation struct {
	method string
	code   string
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (f *fakeRecorder) ObserveRequest(method, code string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, observation{method: method, code: code})
}

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/meca.v1.Championships/GetArchive"}

func successHandler(ctx context.Context, req any) (any, error) {
	return "success", nil
}

func errorHandler(ctx context.Context, req any) (any, error) {
	return nil, status.Error(codes.InvalidArgument, "test error")
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor(zaptest.NewLogger(t))

	t.Run("successful request", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "test request", testInfo, successHandler)

		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	})

	t.Run("error request", func(t *testing.T) {
		_, err := interceptor(context.Background(), "test request", testInfo, errorHandler)

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestMetricsInterceptor(t *testing.T) {
	rec := &fakeRecorder{}
	interceptor := MetricsInterceptor(rec)

	_, err := interceptor(context.Background(), nil, testInfo, successHandler)
	require.NoError(t, err)
	_, err = interceptor(context.Background(), nil, testInfo, errorHandler)
	require.Error(t, err)

	assert.Equal(t, []observation{
		{method: testInfo.FullMethod, code: "OK"},
		{method: testInfo.FullMethod, code: "InvalidArgument"},
	}, rec.obs)
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(zap.NewNop())

	resp, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestNewRejectsInvalidPort(t *testing.T) {
	_, err := New(WithPort(70000))

	assert.ErrorContains(t, err, "invalid port 70000")
}

func TestServerBuilderWithListener(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	rec := &fakeRecorder{}

	server, err := New(
		WithListener(lis),
		WithLogger(zaptest.NewLogger(t)),
		WithLogging(true),
		WithMetrics(rec),
	)
	require.NoError(t, err)
	require.NotNil(t, server.grpcServer)
	require.NotNil(t, server.healthServer)

	server.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, server.Shutdown(ctx))
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.obs, 1)
	assert.Equal(t, "/grpc.health.v1.Health/Check", rec.obs[0].method)
	assert.Equal(t, "OK", rec.obs[0].code)
}

func TestServerRecordsRecoveredPanics(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	rec := &fakeRecorder{}

	server, err := New(
		WithListener(lis),
		WithLogger(zap.NewNop()),
		WithMetrics(rec),
		WithUnaryInterceptors(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			panic("handler exploded")
		}),
	)
	require.NoError(t, err)

	server.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, server.Shutdown(ctx))
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.obs, 1)
	assert.Equal(t, "/grpc.health.v1.Health/Check", rec.obs[0].method)
	assert.Equal(t, "Internal", rec.obs[0].code)
}
