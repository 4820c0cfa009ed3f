package catalog

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"go.uber.org/zap"
)

type CatalogUseCase interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type CatalogService struct {
	repo  repository.CatalogRepository
	cache FlightCache
	log   *zap.Logger
}

// NewCatalogService accepts a nil cache; listings then always hit the store.
func NewCatalogService(repo repository.CatalogRepository, cache FlightCache, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, log: log}
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			s.log.Warn("read flights cache", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("write flights cache", zap.Error(err))
		}
	}
	return flights, nil
}

func (s *CatalogService) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetFlight(ctx, id)
}

var _ CatalogUseCase = (*CatalogService)(nil)
