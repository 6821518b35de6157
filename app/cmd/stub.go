package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/newsdigest/app/revisor"
	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/app/stub"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Stub is a command to run a development server of the news api.
type Stub struct {
	Listen    string `long:"listen" env:"LISTEN" default:":8000" description:"address to listen on"`
	StorePath string `long:"store-path" env:"STORE_PATH" required:"true" description:"parent dir for bolt files"`

	Summary struct {
		TTL     time.Duration `long:"ttl" env:"TTL" default:"24h" description:"how long summaries are cached"`
		MaxKeys int           `long:"max-keys" env:"MAX_KEYS" default:"1000" description:"max number of cached summaries"`
	} `group:"summary" namespace:"summary" env-namespace:"SUMMARY"`

	Paging struct {
		Default int `long:"default" env:"DEFAULT" default:"20" description:"default page size"`
		Max     int `long:"max" env:"MAX" default:"100" description:"max page size"`
	} `group:"page-size" namespace:"page-size" env-namespace:"PAGE_SIZE"`

	Fetch struct {
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"0s" description:"min interval between fetches, 0 to disable"`
		Burst    int           `long:"burst" env:"BURST" default:"3" description:"number of fetches allowed at once"`
		Feeds    []string      `long:"rss-feed" env:"RSS_FEEDS" env-delim:"," description:"rss feeds to search in, synthetic items if empty"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"timeout for feed requests"`
	} `group:"fetch" namespace:"fetch" env-namespace:"FETCH"`
}

// Execute runs the command.
func (s Stub) Execute(_ []string) error {
	lg := slog.Default()

	b, err := store.NewBolt(s.StorePath)
	if err != nil {
		return fmt.Errorf("make store: %w", err)
	}

	defer func() {
		if err := b.Close(); err != nil {
			lg.Error("close bolt store", slog.Any("err", err))
		}
	}()

	var src revisor.Source = revisor.Synthetic{}
	if len(s.Fetch.Feeds) > 0 {
		src = revisor.NewRSS(lg.With(slog.String("prefix", "rss")),
			http.Client{Timeout: s.Fetch.Timeout}, s.Fetch.Feeds)
	}

	srv := &stub.Server{
		Addr: s.Listen,
		Service: revisor.NewService(
			lg.With(slog.String("prefix", "revisor")),
			b, src,
			revisor.NewSummarizer(s.Summary.TTL, s.Summary.MaxKeys),
		),
		DefaultPageSize: s.Paging.Default,
		MaxPageSize:     s.Paging.Max,
		Log:             lg.With(slog.String("prefix", "stub")),
	}

	if s.Fetch.Interval > 0 {
		srv.FetchLimit = rate.NewLimiter(rate.Every(s.Fetch.Interval), s.Fetch.Burst)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
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
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		lg.Warn("server stopped")
		return nil
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
