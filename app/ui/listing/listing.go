// Package listing implements the paginated list of collected articles.
package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Semior001/newsdigest/app/newsapi"
	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/app/ui/route"
	"github.com/Semior001/newsdigest/app/ui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate moq -out mock_lister.go . Lister

// Lister lists articles page by page.
type Lister interface {
	ListArticles(ctx context.Context, page, pageSize int) (store.ArticlePage, error)
}

// DefaultPageSize is the number of articles on a single page.
const DefaultPageSize = 10

// Status is a state of the page request.
type Status int

// Page request states.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

type pageLoadedMsg struct {
	gen  uint64
	page store.ArticlePage
	err  error
}

// KeyMap defines key bindings of the list view.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Fetch  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Fetch:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fetch articles")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// Model is the list view. It is mounted in loading state for the first page.
type Model struct {
	ctx      context.Context
	api      Lister
	keys     KeyMap
	help     help.Model
	pageSize int

	page   int
	status Status
	data   store.ArticlePage
	err    error
	cursor int

	// incremented on every page request, responses of older requests are dropped
	gen uint64
}

// New makes a list view for the first page.
func New(ctx context.Context, api Lister, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return Model{
		ctx:      ctx,
		api:      api,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		pageSize: pageSize,
		page:     1,
		status:   StatusLoading,
		gen:      1,
	}
}

// Init requests the first page.
func (m Model) Init() tea.Cmd { return m.fetch() }

// Page returns the current page number.
func (m Model) Page() int { return m.page }

// Status returns the state of the current page request.
func (m Model) Status() Status { return m.status }

// Err returns the error of the last page request.
func (m Model) Err() error { return m.err }

// Data returns the last loaded page.
func (m Model) Data() store.ArticlePage { return m.data }

// TotalPages returns the number of pages for the last loaded total.
func (m Model) TotalPages() int { return store.TotalPages(m.data.Total, m.pageSize) }

// CanPrev reports whether the "Previous" control is enabled.
func (m Model) CanPrev() bool { return m.page > 1 }

// CanNext reports whether the "Next" control is enabled.
func (m Model) CanNext() bool { return m.page < m.TotalPages() }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.status = StatusFailed
			m.err = msg.err
			return m, nil
		}
		m.status = StatusLoaded
		m.data = msg.page
		m.cursor = 0
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loaded := m.status == StatusLoaded

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fetch):
		return m, route.Navigate(route.PathFetch)
	case key.Matches(msg, m.keys.Reload):
		if m.status == StatusLoading {
			return m, nil
		}
		return m.setPage(m.page)
	case key.Matches(msg, m.keys.Prev):
		if !loaded || !m.CanPrev() {
			return m, nil
		}
		return m.setPage(m.page - 1)
	case key.Matches(msg, m.keys.Next):
		if !loaded || !m.CanNext() {
			return m, nil
		}
		return m.setPage(m.page + 1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if loaded && m.cursor < len(m.data.Results)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if !loaded || len(m.data.Results) == 0 {
			return m, nil
		}
		return m, route.Navigate(route.ArticlePath(m.data.Results[m.cursor].ID))
	}
	return m, nil
}

// setPage enters loading state for the page.
func (m Model) setPage(page int) (tea.Model, tea.Cmd) {
	m.page = page
	m.status = StatusLoading
	m.err = nil
	m.gen++
	return m, m.fetch()
}

func (m Model) fetch() tea.Cmd {
	ctx, api, gen, page, size := m.ctx, m.api, m.gen, m.page, m.pageSize
	return func() tea.Msg {
		res, err := api.ListArticles(ctx, page, size)
		return pageLoadedMsg{gen: gen, page: res, err: err}
	}
}

// View renders the list.
func (m Model) View() string {
	b := &strings.Builder{}

	switch m.status {
	case StatusIdle, StatusLoading:
		b.WriteString(style.Info.Render("Loading articles..."))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Fetch, m.keys.Quit}))
		return b.String()
	case StatusFailed:
		b.WriteString(style.Error.Render(newsapi.Message(m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Reload, m.keys.Fetch, m.keys.Quit}))
		return b.String()
	}

	if len(m.data.Results) == 0 {
		b.WriteString(style.Box.Render("No articles yet. Press " +
			style.Highlight.Render("f") + " to fetch some articles first."))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Fetch, m.keys.Reload, m.keys.Quit}))
		return b.String()
	}

	b.WriteString(style.Title.Render(fmt.Sprintf("Articles (%d)", m.data.Total)))
	b.WriteString("\n")

	for i, a := range m.data.Results {
		title := "  " + a.Title
		if i == m.cursor {
			title = style.Selected.Render("> " + a.Title)
		}
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(style.Info.Render(fmt.Sprintf("  %s · %s", a.Source, style.Date(a.PublishedAt))))
		b.WriteString("\n")
		if a.Description != nil && *a.Description != "" {
			b.WriteString("  " + *a.Description)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "%s  Page %d of %d  %s\n\n",
		style.Button("Previous", m.CanPrev()),
		m.page, m.TotalPages(),
		style.Button("Next", m.CanNext()),
	)
	b.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.Prev, m.keys.Next, m.keys.Up, m.keys.Down,
		m.keys.Open, m.keys.Fetch, m.keys.Reload, m.keys.Quit,
	}))

	return b.String()
}
