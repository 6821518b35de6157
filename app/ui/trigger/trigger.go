// Package trigger implements the form that starts ingestion of new articles.
package trigger

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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate moq -out mock_fetcher.go . Fetcher

// Fetcher starts ingestion for a keyword.
type Fetcher interface {
	TriggerFetch(ctx context.Context, keyword string) (store.FetchResult, error)
}

// DefaultKeyword is put into the form when nothing else is configured.
const DefaultKeyword = "markets"

// Status is a state of the fetch request.
type Status int

// Fetch request states.
const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

type fetchedMsg struct {
	gen uint64
	res store.FetchResult
	err error
}

// KeyMap defines key bindings of the form.
type KeyMap struct {
	Submit key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fetch now")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
	}
}

// Model is the fetch form.
type Model struct {
	ctx     context.Context
	api     Fetcher
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	status Status
	result *store.FetchResult
	err    error
	gen    uint64
}

// New makes a form prefilled with the keyword.
func New(ctx context.Context, api Fetcher, keyword string) Model {
	if keyword == "" {
		keyword = DefaultKeyword
	}

	in := textinput.New()
	in.Placeholder = "Enter keyword"
	in.Prompt = "Keyword: "
	in.CharLimit = 100
	in.SetValue(keyword)
	in.Focus()

	return Model{
		ctx:     ctx,
		api:     api,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   in,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Keyword returns the current value of the form, trimmed.
func (m Model) Keyword() string { return strings.TrimSpace(m.input.Value()) }

// Status returns the state of the fetch request.
func (m Model) Status() Status { return m.status }

// Result returns counts of the last successful fetch, nil if there is none.
func (m Model) Result() *store.FetchResult { return m.result }

// Err returns the error of the last fetch.
func (m Model) Err() error { return m.err }

// CanSubmit reports whether the submit action is available.
func (m Model) CanSubmit() bool { return m.Keyword() != "" && m.status != StatusSubmitting }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.status = StatusFailed
			m.err = msg.err
			return m, nil
		}
		m.status = StatusSucceeded
		res := msg.res
		m.result = &res
		return m, nil
	case spinner.TickMsg:
		if m.status != StatusSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, route.Navigate(route.PathArticles)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.CanSubmit() {
		return m, nil
	}

	m.gen++
	m.status = StatusSubmitting
	m.result = nil
	m.err = nil

	ctx, api, kw, gen := m.ctx, m.api, m.Keyword(), m.gen
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := api.TriggerFetch(ctx, kw)
		return fetchedMsg{gen: gen, res: res, err: err}
	})
}

// View renders the form.
func (m Model) View() string {
	b := &strings.Builder{}

	b.WriteString(style.Title.Render("Fetch New Articles"))
	b.WriteString("\n")
	b.WriteString(style.Info.Render("Fetch the latest articles for a keyword. Duplicates are skipped."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	label := "Fetch Now"
	if m.status == StatusSubmitting {
		label = "Fetching..."
	}
	b.WriteString(style.Button(label, m.CanSubmit()))
	if m.status == StatusSubmitting {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.status == StatusFailed:
		b.WriteString(style.Error.Render(newsapi.Message(m.err)))
		b.WriteString("\n\n")
	case m.result != nil:
		b.WriteString(style.Box.Render(strings.Join([]string{
			style.Heading.Render("Fetch Complete"),
			style.Status.Render(fmt.Sprintf("Fetched: %d new articles", m.result.Fetched)),
			style.Info.Render(fmt.Sprintf("Skipped: %d (already in database)", m.result.Skipped)),
			style.Error.Render(fmt.Sprintf("Failed: %d", m.result.Failed)),
		}, "\n")))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Back}))
	return b.String()
}
