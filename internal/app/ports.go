package app

import (
	"context"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

type DashboardUseCase interface {
	View() DashboardView
	SetFilter(ctx context.Context, key, value string) (DashboardView, error)
	SetTab(ctx context.Context, tab string) (DashboardView, error)
	ResetFilters(ctx context.Context) DashboardView
	Project(id string) (*domain.Project, error)
	Reload(ctx context.Context) (DashboardView, error)
}

type ConvertRequest struct {
	Input  string
	Output string
}

type ConvertResult struct {
	Output   string   `json:"output" yaml:"output"`
	Format   string   `json:"format" yaml:"format"`
	Projects int      `json:"projects" yaml:"projects"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type ConvertUseCase interface {
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
}
