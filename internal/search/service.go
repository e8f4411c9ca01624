package search

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lokoloapp/lokolo-backend/pkg/config"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

// allCategoriesSentinel disables category filtering when sent by clients.
const allCategoriesSentinel = "All Categories"

type searchRepository interface {
	Radius(ctx context.Context, input Input, limit int) ([]ResultDTO, error)
	Latest(ctx context.Context, limit int) ([]ResultDTO, error)
}

// Service runs discovery queries with an optional degraded mode.
type Service interface {
	Search(ctx context.Context, input Input) (*Page, error)
	Latest(ctx context.Context) (*Page, error)
}

type service struct {
	repo     searchRepository
	cfg      config.SearchConfig
	fallback bool
	logg     *logger.Logger
}

// NewService builds the search service. When fallback is set, database
// failures degrade to the fixed dataset instead of an error.
func NewService(repo searchRepository, cfg config.SearchConfig, fallback bool, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("search repository required")
	}
	return &service{repo: repo, cfg: cfg, fallback: fallback, logg: logg}, nil
}

func (s *service) Search(ctx context.Context, input Input) (*Page, error) {
	if err := validatePoint(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	if input.RadiusKM <= 0 {
		input.RadiusKM = s.cfg.DefaultRadiusKM
	}
	if s.cfg.MaxRadiusKM > 0 && input.RadiusKM > s.cfg.MaxRadiusKM {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "radius exceeds maximum").
			WithDetails(map[string]any{"max_radius_km": s.cfg.MaxRadiusKM})
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == allCategoriesSentinel {
		input.Category = ""
	}
	input.Query = strings.TrimSpace(input.Query)

	results, err := s.repo.Radius(ctx, input, s.cfg.ResultLimit)
	if err != nil {
		return s.degradeRadius(ctx, input, err)
	}
	return &Page{Results: results, Count: len(results), Source: SourceDatabase}, nil
}

func (s *service) Latest(ctx context.Context) (*Page, error) {
	results, err := s.repo.Latest(ctx, s.cfg.ResultLimit)
	if err != nil {
		if !s.fallback {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list businesses")
		}
		s.warnDegraded(ctx)
		rows := fallbackLatest(s.cfg.ResultLimit)
		return &Page{Results: rows, Count: len(rows), Source: SourceFallback}, nil
	}
	return &Page{Results: results, Count: len(results), Source: SourceDatabase}, nil
}

func (s *service) degradeRadius(ctx context.Context, input Input, cause error) (*Page, error) {
	if !s.fallback {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, cause, "search businesses")
	}
	s.warnDegraded(ctx)
	rows := fallbackRadius(input, s.cfg.ResultLimit)
	return &Page{Results: rows, Count: len(rows), Source: SourceFallback}, nil
}

func (s *service) warnDegraded(ctx context.Context) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(ctx, "search.degraded")
}

func validatePoint(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return pkgerrors.New(pkgerrors.CodeValidation, "coordinates must be finite")
	}
	if lat < -90 || lat > 90 {
		return pkgerrors.New(pkgerrors.CodeValidation, "latitude out of range")
	}
	if lng < -180 || lng > 180 {
		return pkgerrors.New(pkgerrors.CodeValidation, "longitude out of range")
	}
	return nil
}
