package trigger

import (
	"context"
	"errors"
	"testing"

	"github.com/Semior001/newsdigest/app/newsapi"
	"github.com/Semior001/newsdigest/app/store"
	"github.com/Semior001/newsdigest/app/ui/route"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyEnter = tea.KeyMsg{Type: tea.KeyEnter}

func submit(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	upd, cmd := m.Update(keyEnter)
	return upd.(Model), cmd
}

// finish runs the submit command and passes the result to the model.
func finish(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		msg := c()
		if _, tick := msg.(spinner.TickMsg); tick {
			continue
		}
		upd, _ := m.Update(msg)
		m = upd.(Model)
	}
	return m
}

func TestModel_Defaults(t *testing.T) {
	m := New(context.Background(), &FetcherMock{}, "")
	assert.Equal(t, DefaultKeyword, m.Keyword())
	assert.Equal(t, StatusIdle, m.Status())
	assert.True(t, m.CanSubmit())
	assert.Nil(t, m.Result())

	v := m.View()
	assert.Contains(t, v, "Fetch Now")
	assert.Contains(t, v, "markets")

	m = New(context.Background(), &FetcherMock{}, "gold")
	assert.Equal(t, "gold", m.Keyword())
}

func TestModel_BlankKeyword(t *testing.T) {
	for _, kw := range []string{"", "   ", "\t"} {
		api := &FetcherMock{TriggerFetchFunc: func(context.Context, string) (store.FetchResult, error) {
			t.Fatal("fetch must not be triggered")
			return store.FetchResult{}, nil
		}}

		m := New(context.Background(), api, DefaultKeyword)
		m.input.SetValue(kw)
		assert.False(t, m.CanSubmit())

		m, cmd := submit(t, m)
		assert.Nil(t, cmd)
		assert.Equal(t, StatusIdle, m.Status())
		assert.Empty(t, api.TriggerFetchCalls())
	}
}

func TestModel_Submit(t *testing.T) {
	results := []store.FetchResult{{Fetched: 5, Skipped: 3, Failed: 1}, {Fetched: 0, Skipped: 9, Failed: 0}}
	api := &FetcherMock{TriggerFetchFunc: func(context.Context, string) (store.FetchResult, error) {
		res := results[0]
		results = results[1:]
		return res, nil
	}}

	m := New(context.Background(), api, DefaultKeyword)
	m.input.SetValue("  markets ")

	m, cmd := submit(t, m)
	assert.Equal(t, StatusSubmitting, m.Status())
	assert.False(t, m.CanSubmit())
	assert.Contains(t, m.View(), "Fetching...")

	_, again := submit(t, m)
	assert.Nil(t, again, "no second submit while submitting")

	m = finish(t, m, cmd)
	require.Len(t, api.TriggerFetchCalls(), 1)
	assert.Equal(t, "markets", api.TriggerFetchCalls()[0].Keyword)
	assert.Equal(t, StatusSucceeded, m.Status())
	assert.Equal(t, &store.FetchResult{Fetched: 5, Skipped: 3, Failed: 1}, m.Result())

	v := m.View()
	assert.Contains(t, v, "Fetched: 5 new articles")
	assert.Contains(t, v, "Skipped: 3 (already in database)")
	assert.Contains(t, v, "Failed: 1")

	m, cmd = submit(t, m)
	assert.Nil(t, m.Result(), "submit clears the previous result")

	m = finish(t, m, cmd)
	assert.Equal(t, &store.FetchResult{Fetched: 0, Skipped: 9, Failed: 0}, m.Result(), "counts replace, not add")
	assert.Contains(t, m.View(), "Skipped: 9 (already in database)")
}

func TestModel_Failure(t *testing.T) {
	fail := false
	api := &FetcherMock{TriggerFetchFunc: func(context.Context, string) (store.FetchResult, error) {
		if fail {
			return store.FetchResult{}, &newsapi.RequestFailedError{Op: newsapi.OpTriggerFetch, Err: errors.New("connection refused")}
		}
		return store.FetchResult{Fetched: 1}, nil
	}}

	m := New(context.Background(), api, DefaultKeyword)
	m, cmd := submit(t, m)
	m = finish(t, m, cmd)
	require.NotNil(t, m.Result())

	fail = true
	m, cmd = submit(t, m)
	m = finish(t, m, cmd)

	assert.Equal(t, StatusFailed, m.Status())
	assert.Nil(t, m.Result(), "failure discards the prior result")
	assert.Error(t, m.Err())
	v := m.View()
	assert.Contains(t, v, "Failed to trigger fetch: connection refused")
	assert.NotContains(t, v, "Fetched: 1 new articles")
	assert.True(t, m.CanSubmit())
}

func TestModel_StaleResult(t *testing.T) {
	m := New(context.Background(), &FetcherMock{}, DefaultKeyword)
	m.gen = 3
	m.status = StatusSubmitting

	upd, _ := m.Update(fetchedMsg{gen: 2, res: store.FetchResult{Fetched: 7}})
	m = upd.(Model)
	assert.Equal(t, StatusSubmitting, m.Status())
	assert.Nil(t, m.Result())
}

func TestModel_Back(t *testing.T) {
	m := New(context.Background(), &FetcherMock{}, DefaultKeyword)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, route.NavigateMsg{Path: route.PathArticles}, cmd())
}
