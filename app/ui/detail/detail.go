// Package detail implements the article view with an on-demand summary.
package detail

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
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//go:generate moq -out mock_client.go . Client

// Client provides the article and its summary.
type Client interface {
	GetArticle(ctx context.Context, id string) (store.Article, error)
	GetSummary(ctx context.Context, id string) (store.Summary, error)
}

// ArticleStatus is a state of the article request.
type ArticleStatus int

// Article request states.
const (
	ArticleLoading ArticleStatus = iota
	ArticleLoaded
	ArticleFailed
)

// SummaryStatus is a state of the summary request.
type SummaryStatus int

// Summary request states.
const (
	SummaryIdle SummaryStatus = iota
	SummaryGenerating
	SummarySucceeded
	SummaryFailed
)

type articleLoadedMsg struct {
	gen     uint64
	article store.Article
	err     error
}

type summaryLoadedMsg struct {
	gen     uint64
	summary store.Summary
	err     error
}

// KeyMap defines key bindings of the detail view.
type KeyMap struct {
	Summarize key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Summarize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summarize")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back to list")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// Model is the detail view of a single article.
// Article and summary are requested independently, each under its own generation.
type Model struct {
	ctx     context.Context
	api     Client
	id      string
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	width   int

	articleStatus ArticleStatus
	article       store.Article
	articleErr    error
	articleGen    uint64

	summaryStatus SummaryStatus
	summary       store.Summary
	summaryErr    error
	summaryGen    uint64
}

// New makes a detail view of the article with the given id.
func New(ctx context.Context, api Client, id string) Model {
	return Model{
		ctx:           ctx,
		api:           api,
		id:            id,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		articleStatus: ArticleLoading,
		articleGen:    1,
	}
}

// Init requests the article.
func (m Model) Init() tea.Cmd {
	ctx, api, id, gen := m.ctx, m.api, m.id, m.articleGen
	return func() tea.Msg {
		a, err := api.GetArticle(ctx, id)
		return articleLoadedMsg{gen: gen, article: a, err: err}
	}
}

// ArticleStatus returns the state of the article request.
func (m Model) ArticleStatus() ArticleStatus { return m.articleStatus }

// SummaryStatus returns the state of the summary request.
func (m Model) SummaryStatus() SummaryStatus { return m.summaryStatus }

// Summary returns the last received summary.
func (m Model) Summary() store.Summary { return m.summary }

// SummaryErr returns the error of the last summary request.
func (m Model) SummaryErr() error { return m.summaryErr }

// CanSummarize reports whether the summary action is available.
func (m Model) CanSummarize() bool {
	return m.articleStatus == ArticleLoaded &&
		m.article.HasContent() &&
		m.summaryStatus != SummaryGenerating
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case articleLoadedMsg:
		if msg.gen != m.articleGen {
			return m, nil
		}
		if msg.err != nil {
			m.articleStatus = ArticleFailed
			m.articleErr = msg.err
			return m, nil
		}
		m.articleStatus = ArticleLoaded
		m.article = msg.article
		return m, nil
	case summaryLoadedMsg:
		if msg.gen != m.summaryGen {
			return m, nil
		}
		if msg.err != nil {
			m.summaryStatus = SummaryFailed
			m.summaryErr = msg.err
			return m, nil
		}
		m.summaryStatus = SummarySucceeded
		m.summary = msg.summary
		return m, nil
	case spinner.TickMsg:
		if m.summaryStatus != SummaryGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, route.Navigate(route.PathArticles)
		case key.Matches(msg, m.keys.Summarize):
			return m.summarize()
		}
	}
	return m, nil
}

func (m Model) summarize() (tea.Model, tea.Cmd) {
	if !m.CanSummarize() {
		return m, nil
	}

	m.summaryGen++
	m.summaryStatus = SummaryGenerating
	m.summary = store.Summary{}
	m.summaryErr = nil

	ctx, api, id, gen := m.ctx, m.api, m.article.ID, m.summaryGen
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		s, err := api.GetSummary(ctx, id)
		return summaryLoadedMsg{gen: gen, summary: s, err: err}
	})
}

// View renders the article.
func (m Model) View() string {
	b := &strings.Builder{}

	switch m.articleStatus {
	case ArticleLoading:
		b.WriteString(style.Info.Render("Loading article..."))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit}))
		return b.String()
	case ArticleFailed:
		b.WriteString(style.Error.Render(newsapi.Message(m.articleErr)))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit}))
		return b.String()
	}

	a := m.article
	b.WriteString(style.Title.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(style.Info.Render(fmt.Sprintf("%s · %s", a.Source, style.Date(a.PublishedAt))))
	b.WriteString("\n")
	if a.URL != "" {
		b.WriteString(style.Info.Render(a.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.summaryView())
	b.WriteString("\n\n")

	b.WriteString(style.Heading.Render("Content"))
	b.WriteString("\n")
	if a.HasContent() {
		b.WriteString(m.wrap(*a.Content))
	} else {
		b.WriteString(style.Info.Render("No content available (scraping failed)."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Summarize, m.keys.Back, m.keys.Quit}))
	return b.String()
}

func (m Model) summaryView() string {
	b := &strings.Builder{}

	label := "Generate Summary"
	if m.summaryStatus == SummaryGenerating {
		label = "Generating..."
	}
	b.WriteString(style.Button(label, m.CanSummarize()))

	switch m.summaryStatus {
	case SummaryGenerating:
		b.WriteString(" " + m.spinner.View())
	case SummaryFailed:
		b.WriteString("\n")
		if newsapi.Classify(m.summaryErr) == newsapi.FailureNoContent {
			b.WriteString(style.Info.Render(newsapi.Message(m.summaryErr)))
			break
		}
		b.WriteString(style.Error.Render(newsapi.Message(m.summaryErr)))
	case SummarySucceeded:
		b.WriteString("\n")
		b.WriteString(style.Heading.Render("AI Summary") + " " + style.Badge(m.summary.Cached))
		b.WriteString("\n")
		b.WriteString(style.Box.Render(m.wrap(m.summary.Text)))
	}

	return b.String()
}

func (m Model) wrap(s string) string {
	if m.width <= 4 {
		return s
	}
	return lipgloss.NewStyle().Width(m.width - 4).Render(s)
}
