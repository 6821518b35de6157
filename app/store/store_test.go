package store

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{total: 0, pageSize: 10, want: 0},
		{total: 1, pageSize: 10, want: 1},
		{total: 10, pageSize: 10, want: 1},
		{total: 11, pageSize: 10, want: 2},
		{total: 15, pageSize: 10, want: 2},
		{total: 25, pageSize: 10, want: 3},
		{total: 7, pageSize: 1, want: 7},
		{total: 5, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize), "total=%d size=%d", tt.total, tt.pageSize)
	}
}

func TestArticle_HasContent(t *testing.T) {
	assert.False(t, Article{}.HasContent())
	assert.False(t, Article{Content: lo.ToPtr("")}.HasContent())
	assert.True(t, Article{Content: lo.ToPtr(" \n\t")}.HasContent(), "whitespace is present content")
	assert.True(t, Article{Content: lo.ToPtr("body")}.HasContent())
}

func TestSummary_Badge(t *testing.T) {
	assert.Equal(t, "Cached", Summary{Cached: true}.Badge())
	assert.Equal(t, "Fresh", Summary{Cached: false}.Badge())
}
