package usecase

import (
	"context"

	"daily-series/internal/domain"
)

// TableRepository defines the interface for reading tabular input files.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go TableRepository,FestivalResolver
type TableRepository interface {
	ReadTable(ctx context.Context, path string) (*domain.Table, error)
}

// FestivalResolver picks the festival calendar to load. The explicit path, when
// non-empty, takes precedence over any default location.
type FestivalResolver interface {
	Resolve(explicit string) (path string, ok bool)
}
