package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Filter)
	assert.Empty(t, filter.Sort)
}

func TestParseFilterPagination(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("limit", "50")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 100, filter.Offset)
}

func TestParseFilterCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "9999")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)
}

func TestParseFilterFieldsAndSort(t *testing.T) {
	values := url.Values{}
	values.Set("search", "forklift")
	values.Set("filter[stage]", "NEW")
	values.Set("sort[created_at]", "desc")
	values.Set("sort[subject]", "sideways")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, "forklift", filter.Search)
	assert.Equal(t, "NEW", filter.Filter["stage"])
	assert.Equal(t, "desc", filter.Sort["created_at"])
	_, ok := filter.Sort["subject"]
	assert.False(t, ok)
}

func TestParseFilterIgnoresBadNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("page", "abc")
	values.Set("limit", "-5")

	filter := ParseFilterFromQuery(values)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultLimit, filter.Limit)
}

func TestParseDateLayouts(t *testing.T) {
	for _, raw := range []string{"2026-09-01", "2026-09-01T15:04", "2026-09-01T15:04:05Z"} {
		value := raw
		parsed, err := ParseDate(&value)
		assert.NoError(t, err, raw)
		assert.True(t, parsed.Valid, raw)
	}
}

func TestParseDateNilAndEmptyAreNull(t *testing.T) {
	parsed, err := ParseDate(nil)
	assert.NoError(t, err)
	assert.False(t, parsed.Valid)

	empty := ""
	parsed, err = ParseDate(&empty)
	assert.NoError(t, err)
	assert.False(t, parsed.Valid)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	garbage := "next tuesday"
	_, err := ParseDate(&garbage)
	assert.Error(t, err)
}
