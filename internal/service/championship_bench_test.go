package service

import (
	"context"
	"testing"
)

func BenchmarkGetResultsForYear(b *testing.B) {
	ctx := context.Background()
	svc := setupRealService(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetResultsForYear(ctx, 2024); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkGetStateChampionsForYear(b *testing.B) {
	ctx := context.Background()
	svc := setupRealService(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetStateChampionsForYear(ctx, 2024); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkComputePreview(b *testing.B) {
	cfg := DefaultPointsConfig()
	cfg.ExtendedEnabled = true

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ComputePreview(cfg)
	}
}
