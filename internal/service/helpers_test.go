package service

import (
	"context"
	"errors"
	"sync"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

type stubLoader struct {
	mu    sync.Mutex
	pf    domain.Portfolio
	err   error
	calls int
}

func newStubLoader(projects ...domain.Project) *stubLoader {
	return &stubLoader{pf: domain.Portfolio{
		Source:   "stub.json",
		Projects: projects,
		Filters: domain.FilterOptions{
			BusinessUnits: []string{domain.All, "IT", "HR", "Operations"},
			Portfolios:    []string{domain.All, "Core"},
		},
	}}
}

func (s *stubLoader) Name() string { return "stub.json" }

func (s *stubLoader) Load(ctx context.Context) (*domain.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	pf := s.pf
	pf.Projects = append([]domain.Project(nil), s.pf.Projects...)
	return &pf, nil
}

func (s *stubLoader) set(projects []domain.Project, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pf.Projects = projects
	s.err = err
}

var errStubLoad = errors.New("stub load failed")

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) named(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
