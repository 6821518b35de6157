package ui

import (
	"github.com/Semior001/newsdigest/app/ui/route"
	"github.com/Semior001/newsdigest/app/ui/style"
	tea "github.com/charmbracelet/bubbletea"
)

type notFound struct{ path string }

func newNotFound(path string) notFound { return notFound{path: path} }

func (m notFound) Init() tea.Cmd { return nil }

func (m notFound) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return m, route.Navigate(route.PathArticles)
	}
	return m, nil
}

func (m notFound) View() string {
	return style.Error.Render("Page not found: "+m.path) + "\n\n" + style.Info.Render("esc back to list")
}
