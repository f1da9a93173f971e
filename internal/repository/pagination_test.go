package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination_Defaults(t *testing.T) {
	p, err := ParsePagination("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePagination_Explicit(t *testing.T) {
	p, err := ParsePagination("3", "25")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset())
}

func TestParsePagination_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		page  string
		limit string
	}{
		{"non-numeric page", "abc", ""},
		{"non-numeric limit", "", "ten"},
		{"zero page", "0", ""},
		{"negative page", "-1", ""},
		{"zero limit", "", "0"},
		{"negative limit", "", "-5"},
		{"limit above cap", "", "101"},
		{"float page", "1.5", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePagination(tc.page, tc.limit)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestPagination_Pages(t *testing.T) {
	p := Pagination{Page: 1, Limit: 10}
	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(1))
	assert.Equal(t, 1, p.Pages(10))
	assert.Equal(t, 2, p.Pages(11))
}
