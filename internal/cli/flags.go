package cli

import (
	"context"
	"fmt"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/app"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalFlags are the flags needed before the command tree can be built:
// they decide which config and data source the App is wired with.
type GlobalFlags struct {
	Config string
	Source string
	Watch  bool
	Output string
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default tracker.yaml or $TRACKER_CONFIG)")
	fs.String("source", "", "data source: .json, .csv, .db/.sqlite file or a glob such as data/**/*.json")
	fs.Bool("watch", false, "reload the interactive dashboard when the source changes")
	fs.String("output", "", "output format: text, json or yaml")
}

// ParseGlobalFlags extracts the global flags from args ahead of command
// dispatch. Unknown flags and positional arguments are ignored.
func ParseGlobalFlags(args []string) (GlobalFlags, error) {
	fs := pflag.NewFlagSet("tracker", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	registerGlobalFlags(fs)
	fs.BoolP("help", "h", false, "")

	if err := fs.Parse(args); err != nil {
		return GlobalFlags{}, fmt.Errorf("parsing flags: %w", err)
	}

	var g GlobalFlags
	g.Config, _ = fs.GetString("config")
	g.Source, _ = fs.GetString("source")
	g.Watch, _ = fs.GetBool("watch")
	g.Output, _ = fs.GetString("output")
	return g, nil
}

// filterFlagNames maps each filter key to its command-line flag.
var filterFlagNames = map[domain.FilterKey]string{
	domain.FilterBusinessUnit:   "business-unit",
	domain.FilterPortfolio:      "portfolio",
	domain.FilterProjectManager: "manager",
	domain.FilterProjectStatus:  "status",
	domain.FilterLifecycleStage: "stage",
}

// filterFlags is the shared set of filter flags. Only flags set on the
// command line are applied, so "--portfolio=" selects the empty portfolio
// while an absent flag leaves the configured selection alone.
type filterFlags struct {
	fs *pflag.FlagSet
}

func newFilterFlags() *filterFlags {
	fs := pflag.NewFlagSet("filters", pflag.ContinueOnError)
	for _, key := range domain.FilterKeys() {
		fs.String(filterFlagNames[key], "", fmt.Sprintf("filter by %s (%q clears)", key.Label(), domain.All))
	}
	return &filterFlags{fs: fs}
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(f.fs)
}

// apply pushes every flag the user set into the dashboard, in filter key
// order, and returns the resulting view.
func (f *filterFlags) apply(cmd *cobra.Command, dashboard app.DashboardUseCase) (app.DashboardView, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	view := dashboard.View()
	for _, key := range domain.FilterKeys() {
		flag := f.fs.Lookup(filterFlagNames[key])
		if flag == nil || !flag.Changed {
			continue
		}
		var err error
		if view, err = dashboard.SetFilter(ctx, string(key), flag.Value.String()); err != nil {
			return view, err
		}
	}
	return view, nil
}
