package service

import (
	"context"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// PortfolioLoader is the part of source.Loader the dashboard service needs.
type PortfolioLoader interface {
	Load(ctx context.Context) (*domain.Portfolio, error)
	Name() string
}
