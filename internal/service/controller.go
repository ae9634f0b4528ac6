package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/metrics"
)

// FilterChangeListener is notified after every filter change with the
// re-derived view.
type FilterChangeListener interface {
	OnFilterChange(key domain.FilterKey, value string, view app.DashboardView)
}

// FilterChangeFunc adapts a function to FilterChangeListener.
type FilterChangeFunc func(key domain.FilterKey, value string, view app.DashboardView)

func (f FilterChangeFunc) OnFilterChange(key domain.FilterKey, value string, view app.DashboardView) {
	f(key, value, view)
}

// Controller owns the filter selection and active tab. SetFilter is the
// only path that changes the selection; every change re-derives the whole
// view from the current snapshot.
type Controller struct {
	data     *DashboardService
	observer UseCaseObserver

	mu        sync.Mutex
	state     domain.FilterState
	tab       domain.Tab
	view      app.DashboardView
	listeners map[int]FilterChangeListener
	nextID    int
}

var _ app.DashboardUseCase = (*Controller)(nil)

func NewController(data *DashboardService, initial domain.FilterState, tab domain.Tab, observers ...UseCaseObserver) *Controller {
	if tab == "" {
		tab = domain.TabAll
	}
	c := &Controller{
		data:      data,
		observer:  useCaseObserverOrNoop(observers),
		state:     initial,
		tab:       tab,
		listeners: make(map[int]FilterChangeListener),
	}
	c.view = c.deriveLocked(context.Background())
	return c
}

// Subscribe registers l and returns a function that removes it.
func (c *Controller) Subscribe(l FilterChangeListener) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// View returns the most recently derived view.
func (c *Controller) View() app.DashboardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// State returns the current filter selection.
func (c *Controller) State() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetFilter(ctx context.Context, key, value string) (view app.DashboardView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"key": key, "value": value}
	defer func() {
		observe(ctx, c.observer, UseCaseSetFilter, startedAt, err, fields)
	}()

	k, err := domain.ParseFilterKey(key)
	if err != nil {
		return app.DashboardView{}, &app.DashboardError{Code: app.DashboardErrUnknownFilterKey, Message: err.Error()}
	}

	c.mu.Lock()
	view, listeners, err := c.setFilterLocked(ctx, k, value)
	c.mu.Unlock()
	if err != nil {
		return app.DashboardView{}, err
	}
	fields["filtered"] = len(view.Projects)
	notify(listeners, k, value, view)
	return view, nil
}

func (c *Controller) setFilterLocked(ctx context.Context, key domain.FilterKey, value string) (app.DashboardView, []FilterChangeListener, error) {
	next, err := c.state.With(key, value)
	if err != nil {
		return app.DashboardView{}, nil, &app.DashboardError{Code: app.DashboardErrUnknownFilterKey, Message: err.Error()}
	}
	c.state = next
	c.view = c.deriveLocked(ctx)
	return c.view, c.listenersLocked(), nil
}

// ResetFilters sets every active filter back to All, one SetFilter step
// per key, so listeners see each change.
func (c *Controller) ResetFilters(ctx context.Context) app.DashboardView {
	for _, key := range c.State().Active() {
		_, _ = c.SetFilter(ctx, string(key), domain.All)
	}
	return c.View()
}

func (c *Controller) SetTab(ctx context.Context, tab string) (view app.DashboardView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"tab": tab}
	defer func() {
		observe(ctx, c.observer, UseCaseSetTab, startedAt, err, fields)
	}()

	t, ok := domain.ParseTab(tab)
	if !ok {
		return app.DashboardView{}, &app.DashboardError{
			Code:    app.DashboardErrUnknownTab,
			Message: fmt.Sprintf("unknown tab %q", tab),
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tab = t
	c.view = c.deriveLocked(ctx)
	return c.view, nil
}

// Project looks a project up in the full snapshot, ignoring filters.
func (c *Controller) Project(id string) (*domain.Project, error) {
	pf, _ := c.data.Current()
	if pf == nil {
		return nil, &app.DashboardError{Code: app.DashboardErrNotLoaded, Message: "no dashboard data loaded"}
	}
	p, ok := pf.FindProject(id)
	if !ok {
		return nil, &app.DashboardError{
			Code:    app.DashboardErrProjectNotFound,
			Message: fmt.Sprintf("project %q not found", id),
		}
	}
	cp := *p
	return &cp, nil
}

// Reload loads the source again and re-derives the view with the current
// selection. On failure the previous view is kept.
func (c *Controller) Reload(ctx context.Context) (view app.DashboardView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": c.data.SourceName()}
	defer func() {
		observe(ctx, c.observer, UseCaseReload, startedAt, err, fields)
	}()

	pf, err := c.data.Load(ctx)
	if err != nil {
		return c.View(), err
	}
	fields["load_id"] = pf.LoadID

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.deriveLocked(ctx)
	return c.view, nil
}

func (c *Controller) deriveLocked(ctx context.Context) app.DashboardView {
	startedAt := time.Now().UTC()
	pf, loadedAt := c.data.Current()

	view := app.DashboardView{
		Source:   c.data.SourceName(),
		Tab:      c.tab,
		Filters:  filterViews(pf, c.state),
		Projects: []domain.Project{},
	}
	if pf != nil {
		view.Loaded = true
		view.LoadID = pf.LoadID
		view.LoadedAt = loadedAt
		view.TotalProjects = len(pf.Projects)
		view.Warnings = pf.Warnings
		view.Projects = metrics.Filter(pf.Projects, c.state)
	}
	view.TabProjects = metrics.ApplyTab(view.Projects, c.tab)
	view.Metrics = metrics.Aggregate(view.Projects)

	observe(ctx, c.observer, UseCaseDerive, startedAt, nil, map[string]any{
		"load_id":      view.LoadID,
		"projects":     view.TotalProjects,
		"filtered":     len(view.Projects),
		"tab_projects": len(view.TabProjects),
	})
	return view
}

func (c *Controller) listenersLocked() []FilterChangeListener {
	out := make([]FilterChangeListener, 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if l, ok := c.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

func notify(listeners []FilterChangeListener, key domain.FilterKey, value string, view app.DashboardView) {
	for _, l := range listeners {
		l.OnFilterChange(key, value, view)
	}
}

func filterViews(pf *domain.Portfolio, state domain.FilterState) []app.FilterView {
	var opts domain.FilterOptions
	if pf != nil {
		opts = pf.Filters
	}
	views := make([]app.FilterView, 0, len(domain.FilterKeys()))
	for _, key := range domain.FilterKeys() {
		options := opts.For(key)
		if len(options) == 0 {
			options = []string{domain.All}
		}
		views = append(views, app.FilterView{
			Key:      key,
			Label:    key.Label(),
			Selected: state.Get(key),
			Options:  options,
		})
	}
	return views
}
