// Package ui contains the terminal application, it mounts one view at a time
// and routes between them.
package ui

import (
	"context"
	"strings"

	"github.com/Semior001/newsdigest/app/ui/detail"
	"github.com/Semior001/newsdigest/app/ui/listing"
	"github.com/Semior001/newsdigest/app/ui/route"
	"github.com/Semior001/newsdigest/app/ui/style"
	"github.com/Semior001/newsdigest/app/ui/trigger"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// API is the set of remote operations the views need.
type API interface {
	listing.Lister
	detail.Client
	trigger.Fetcher
}

// Params defines parameters of the application.
type Params struct {
	PageSize int
	Keyword  string
}

// mountedMsg is a message produced by the view mounted under the given id.
type mountedMsg struct {
	mount uint64
	msg   tea.Msg
}

// App is the root model.
type App struct {
	ctx    context.Context
	log    *slog.Logger
	router *route.Router
	quit   key.Binding

	path    string
	current tea.Model
	mount   uint64
	size    *tea.WindowSizeMsg
}

// NewApp makes a new App with the list of articles mounted.
func NewApp(ctx context.Context, lg *slog.Logger, api API, params Params) App {
	router := route.NewRouter(func(p route.Params) tea.Model { return newNotFound(p.Get("path")) }).
		Add(route.PathArticles, func(route.Params) tea.Model { return listing.New(ctx, api, params.PageSize) }).
		Add(route.PathArticle, func(p route.Params) tea.Model { return detail.New(ctx, api, p.Get("id")) }).
		Add(route.PathFetch, func(route.Params) tea.Model { return trigger.New(ctx, api, params.Keyword) })

	a := App{
		ctx:    ctx,
		log:    lg,
		router: router,
		quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
	a.path = route.PathArticles
	a.current = router.Match(a.path)
	a.mount = 1
	return a
}

// Path returns the path of the mounted view.
func (a App) Path() string { return a.path }

// Current returns the mounted view.
func (a App) Current() tea.Model { return a.current }

// Init initializes the mounted view.
func (a App) Init() tea.Cmd { return wrap(a.mount, a.current.Init()) }

// Update routes messages to the mounted view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.size = &msg
	case route.NavigateMsg:
		return a.navigate(msg.Path)
	case mountedMsg:
		if msg.mount != a.mount {
			a.log.DebugCtx(a.ctx, "dropped message of unmounted view",
				slog.Uint64("mount", msg.mount), slog.Uint64("current", a.mount))
			return a, nil
		}

		switch inner := msg.msg.(type) {
		case route.NavigateMsg:
			return a.navigate(inner.Path)
		case tea.QuitMsg:
			return a, tea.Quit
		}
		return a.forward(msg.msg)
	}

	return a.forward(msg)
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, wrap(a.mount, cmd)
}

// navigate unmounts the current view and mounts a fresh one for the path.
func (a App) navigate(path string) (tea.Model, tea.Cmd) {
	a.mount++
	a.path = path
	a.current = a.router.Match(path)

	a.log.DebugCtx(a.ctx, "navigate", slog.String("path", path), slog.Uint64("mount", a.mount))

	cmds := []tea.Cmd{wrap(a.mount, a.current.Init())}
	if a.size != nil {
		var cmd tea.Cmd
		a.current, cmd = a.current.Update(*a.size)
		cmds = append(cmds, wrap(a.mount, cmd))
	}

	return a, tea.Batch(cmds...)
}

// View renders the navigation bar and the mounted view.
func (a App) View() string {
	b := &strings.Builder{}

	b.WriteString(style.Title.Render("News Summarizer"))
	b.WriteString("  ")
	b.WriteString(tab("Articles", a.path != route.PathFetch))
	b.WriteString(" ")
	b.WriteString(tab("Fetch News", a.path == route.PathFetch))
	b.WriteString("\n\n")
	b.WriteString(a.current.View())
	b.WriteString("\n")

	return b.String()
}

func tab(label string, active bool) string {
	return lo.Ternary(active, style.Highlight.Render(label), style.Info.Render(label))
}

// wrap tags every message produced by cmd with the mount id.
func wrap(mount uint64, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}

	return func() tea.Msg {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			return tea.BatchMsg(lo.Map(msg, func(c tea.Cmd, _ int) tea.Cmd { return wrap(mount, c) }))
		}
		return mountedMsg{mount: mount, msg: msg}
	}
}
