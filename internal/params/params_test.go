package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("event id", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5", "99999999999999999999"} {
		_, err := ParseID("event id", raw)
		assert.Error(t, err, "raw %q", raw)
	}

	_, err = ParseID("event id", "")
	assert.EqualError(t, err, "event id is required")
}

func TestQueryID(t *testing.T) {
	id, err := QueryID(url.Values{"place_id": {"7"}}, "place_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = QueryID(url.Values{}, "place_id")
	assert.EqualError(t, err, "place_id is required")
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("rating", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ParseInt("rating", "five")
	assert.EqualError(t, err, "rating must be an integer")
}
