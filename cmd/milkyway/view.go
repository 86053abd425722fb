package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ulysse71/milky-way/internal/state"
	"github.com/ulysse71/milky-way/internal/ui"
)

func newViewCmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Fly around the star cloud in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("view needs a terminal; use project or snapshot instead")
			}

			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			frame := a.buildFrame()

			session, err := state.NewSession(cat, frame, state.Config{
				Cutoff:    a.cfg.Cutoff,
				Scale:     a.cfg.Scale,
				CacheSize: a.cfg.Viewer.CacheSize,
			})
			if err != nil {
				return err
			}

			// Log lines would corrupt the alternate screen.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			a.log.SetOutput(logOut)
			defer a.log.SetOutput(cmd.ErrOrStderr())

			model := ui.New(session, ui.Options{
				Refresh:      a.cfg.Viewer.Refresh,
				FovY:         a.cfg.Viewer.FovY,
				CutoffFactor: a.cfg.Viewer.CutoffFactor,
				Logger:       a.log.Named("viewer"),
			})

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("running viewer: %w", err)
			}

			snap := session.Snapshot()
			a.metrics.RecordProjection(snap.Points, snap.ProjectTime)
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append log output to this file while the viewer runs")
	return cmd
}
