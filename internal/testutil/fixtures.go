package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

var testIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithStatus(s domain.Status) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithStage(s domain.Stage) ProjectOption {
	return func(p *domain.Project) {
		p.Lifecycle = s
	}
}

func WithDepartment(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Department = d
	}
}

func WithPortfolio(name string) ProjectOption {
	return func(p *domain.Project) {
		p.Portfolio = name
	}
}

func WithManager(m string) ProjectOption {
	return func(p *domain.Project) {
		p.Manager = m
	}
}

// WithProgress sets planned and actual progress as 0–1 fractions.
func WithProgress(planned, actual float64) ProjectOption {
	return func(p *domain.Project) {
		p.PlannedProgress = planned
		p.ActualProgress = actual
	}
}

func WithPhase(start, end string) ProjectOption {
	return func(p *domain.Project) {
		p.PhaseDates.Execution = &domain.PhaseRange{Start: start, End: end}
	}
}

func WithDetail(sponsor, milestone string, challenges ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Sponsor = sponsor
		p.Milestone = milestone
		p.Challenges = challenges
	}
}

// NewTestProject returns an on-track IT project in Execution with a
// unique numeric ID.
func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:              fmt.Sprint(testIDCounter.Add(1)),
		Name:            name,
		Department:      "IT",
		Portfolio:       "Core",
		Status:          domain.StatusOnTrack,
		Lifecycle:       domain.StageExecution,
		Manager:         "inayatullahm@Maaden.com.sa",
		PlannedProgress: 0.5,
		ActualProgress:  0.4,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// SamplePortfolio is a small mixed portfolio used across packages.
func SamplePortfolio() []domain.Project {
	return []domain.Project{
		NewTestProject("ERP Upgrade", WithID("1")),
		NewTestProject("Data Lake", WithID("2"), WithStatus(domain.StatusDelayed), WithStage(domain.StageProcurement)),
		NewTestProject("HR Portal", WithID("3"), WithDepartment("HR"), WithStatus(domain.StatusSlightlyDelayed), WithManager("ChakraborttyG@x.com")),
		NewTestProject("Mine Safety", WithID("4"), WithDepartment("Operations"), WithPortfolio(""), WithStatus(domain.StatusOnHold), WithStage(domain.StageInitiation)),
		NewTestProject("Legacy Sunset", WithID("5"), WithStatus(domain.StatusClosing), WithStage(domain.StageClosing)),
	}
}
