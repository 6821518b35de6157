// Package main is an entrypoint for application
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/Semior001/newsdigest/app/cmd"
	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

var opts struct {
	Run      cmd.Run  `command:"run" description:"run terminal client"`
	Stub     cmd.Stub `command:"stub" description:"run development news api server"`
	JSONLogs bool     `long:"json-logs" env:"JSON_LOGS" description:"turn on json logs"`
	Debug    bool     `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
	LogFile  string   `long:"log-file" env:"LOG_FILE" description:"write logs to the file instead of stderr"`
}

var version = "unknown"

func getVersion() string {
	v, ok := debug.ReadBuildInfo()
	if !ok || v.Main.Version == "(devel)" {
		return version
	}
	return v.Main.Version
}

// terminalOwner is implemented by commands that draw to the terminal,
// their logs must not go to stderr.
type terminalOwner interface {
	OwnsTerminal() bool
}

func main() {
	fmt.Printf("newsdigest, version: %s\n", getVersion())

	// .env is optional
	_ = godotenv.Load()

	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		owner, ok := command.(terminalOwner)
		closeLog, err := setupLog(ok && owner.OwnsTerminal())
		if err != nil {
			slog.Error("failed to setup logs", slog.Any("err", err))
			os.Exit(1)
		}

		if err := command.Execute(args); err != nil {
			slog.Error("failed to execute command", slog.Any("err", err))
			_ = closeLog()
			os.Exit(1)
		}

		return closeLog()
	}

	// after failure command does not return non-zero code
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			slog.Error("failed to parse flags", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func setupLog(ownsTerminal bool) (closeFn func() error, err error) {
	handler := slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	}

	if opts.Debug {
		handler.Level = slog.LevelDebug
		handler.AddSource = true
	}

	var w io.Writer = os.Stderr
	closeFn = func() error { return nil }

	switch {
	case opts.LogFile != "":
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	case ownsTerminal:
		w = io.Discard
	}

	var h slog.Handler = handler.NewTextHandler(w)
	if opts.JSONLogs {
		h = handler.NewJSONHandler(w)
	}

	slog.SetDefault(slog.New(&logx.Chain{
		Middleware: []logx.Middleware{logx.RequestID},
		Handler:    h,
	}))

	return closeFn, nil
}
