package route

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	name   string
	params Params
}

func (v view) Init() tea.Cmd                       { return nil }
func (v view) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v view) View() string                        { return v.name }

func named(name string) Factory {
	return func(p Params) tea.Model { return view{name: name, params: p} }
}

func TestRouter_Match(t *testing.T) {
	rtr := NewRouter(named("not found")).
		Add(PathArticles, named("list")).
		Add(PathArticle, named("detail")).
		Add(PathFetch, named("fetch"))

	tests := []struct {
		path   string
		name   string
		params Params
	}{
		{path: "/", name: "list", params: Params{}},
		{path: "", name: "list", params: Params{}},
		{path: "/fetch", name: "fetch", params: Params{}},
		{path: "/fetch/", name: "fetch", params: Params{}},
		{path: "/articles/42", name: "detail", params: Params{"id": "42"}},
		{path: ArticlePath("a b/c"), name: "detail", params: Params{"id": "a b/c"}},
		{path: "/articles", name: "not found", params: Params{"path": "/articles"}},
		{path: "/articles/42/summary", name: "not found", params: Params{"path": "/articles/42/summary"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, ok := rtr.Match(tt.path).(view)
			require.True(t, ok)
			assert.Equal(t, tt.name, v.name)
			assert.Equal(t, tt.params, v.params)
		})
	}
}

func TestNavigate(t *testing.T) {
	msg := Navigate("/fetch")()
	assert.Equal(t, NavigateMsg{Path: "/fetch"}, msg)
}
