// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Semior001/newsdigest/app/newsapi"
	"github.com/Semior001/newsdigest/app/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Run is a command to run the terminal client.
type Run struct {
	API struct {
		URL string `long:"url" env:"URL" default:"http://localhost:8000" description:"base url of the news api"`
	} `group:"api" namespace:"api" env-namespace:"API"`

	PageSize  int    `long:"page-size" env:"PAGE_SIZE" default:"10" description:"number of articles on a page"`
	Keyword   string `long:"keyword" env:"KEYWORD" default:"markets" description:"default keyword to fetch articles for"`
	AltScreen bool   `long:"alt-screen" env:"ALT_SCREEN" description:"use the alternate screen buffer"`
}

// OwnsTerminal reports that the command draws to the terminal.
func (r Run) OwnsTerminal() bool { return true }

// Execute runs the command.
func (r Run) Execute(_ []string) error {
	lg := slog.Default()

	// no client-side timeout, requests are canceled only on exit
	cl := newsapi.NewClient(lg.With(slog.String("prefix", "newsapi")), r.API.URL, http.Client{})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)

	app := ui.NewApp(ctx, lg.With(slog.String("prefix", "ui")), cl, ui.Params{
		PageSize: r.PageSize,
		Keyword:  r.Keyword,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}
	if r.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, progOpts...)

	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sig)
		select {
		case sig := <-sig:
			lg.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		defer stop()

		lg.Info("starting terminal client", slog.String("api_url", r.API.URL))
		_, err := p.Run()
		lg.Info("terminal client stopped")

		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
