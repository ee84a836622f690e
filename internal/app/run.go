package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/buildgrid/internal/ctxlog"
	"github.com/specialistvlad/buildgrid/internal/project"
)

const separator = "-------------------------------------------------------------------------------"

// Run loads the build file and prints the project help listing.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.LoadBuildFile(); err != nil {
		return err
	}
	if err := printProjectHelp(a.outW, a.project); err != nil {
		return fmt.Errorf("failed to print project help: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printProjectHelp lists the visible targets of p. Targets with a
// description are main targets, the others are subtargets.
func printProjectHelp(w io.Writer, p *project.Project) error {
	var mainTargets, subTargets []string
	targets := p.Targets()
	for name, t := range targets {
		if name == "" || t.Hidden() {
			continue
		}
		if t.Description() != "" {
			mainTargets = append(mainTargets, name)
		} else {
			subTargets = append(subTargets, name)
		}
	}
	sort.Strings(mainTargets)
	sort.Strings(subTargets)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if p.Description() != "" {
		fmt.Fprintln(tw, p.Description())
		fmt.Fprintln(tw)
	}
	if def := p.DefaultTarget(); def != "" {
		fmt.Fprintln(tw, "Default target:")
		fmt.Fprintln(tw, separator)
		desc := ""
		if t, ok := targets[def]; ok {
			desc = firstLine(t.Description())
		}
		fmt.Fprintf(tw, " %s\t%s\n", def, desc)
		fmt.Fprintln(tw)
	}
	if len(mainTargets) > 0 {
		fmt.Fprintln(tw, "Main targets:")
		fmt.Fprintln(tw, separator)
		for _, name := range mainTargets {
			fmt.Fprintf(tw, " %s\t%s\n", name, firstLine(targets[name].Description()))
		}
		fmt.Fprintln(tw)
	}
	if len(subTargets) > 0 {
		fmt.Fprintln(tw, "Subtargets:")
		fmt.Fprintln(tw, separator)
		for _, name := range subTargets {
			fmt.Fprintf(tw, " %s\n", name)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
