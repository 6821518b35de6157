// Package route contains definitions for routing between views.
package route

import (
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Known paths.
const (
	PathArticles = "/"
	PathArticle  = "/articles/{id}"
	PathFetch    = "/fetch"
)

// ArticlePath returns the path of the article detail view.
func ArticlePath(id string) string { return "/articles/" + url.PathEscape(id) }

// NavigateMsg asks the router to mount the view for Path.
type NavigateMsg struct{ Path string }

// Navigate returns a command that navigates to the path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Params contains values of the named path segments.
type Params map[string]string

// Get returns the value of the named segment.
func (p Params) Get(name string) string { return p[name] }

// Factory builds a fresh view for the matched path.
type Factory func(Params) tea.Model

type entry struct {
	pattern  string
	segments []string
	factory  Factory
}

// Router maps paths to view factories.
// Patterns are matched segment by segment, "{name}" matches any single segment.
type Router struct {
	entries  []entry
	notFound Factory
}

// NewRouter makes a new Router, notFound is used when no pattern matches,
// its params contain the requested "path".
func NewRouter(notFound Factory) *Router {
	return &Router{notFound: notFound}
}

// Add adds a factory for the pattern.
func (r *Router) Add(pattern string, f Factory) *Router {
	r.entries = append(r.entries, entry{pattern: pattern, segments: split(pattern), factory: f})
	return r
}

// Match returns the view for the path.
func (r *Router) Match(path string) tea.Model {
	segments := split(path)

	for _, e := range r.entries {
		if params, ok := e.match(segments); ok {
			return e.factory(params)
		}
	}

	return r.notFound(Params{"path": path})
}

func (e entry) match(segments []string) (Params, bool) {
	if len(segments) != len(e.segments) {
		return nil, false
	}

	params := Params{}
	for i, seg := range e.segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			v, err := url.PathUnescape(segments[i])
			if err != nil || v == "" {
				return nil, false
			}
			params[seg[1:len(seg)-1]] = v
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}

	return params, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
