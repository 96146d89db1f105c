package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	id := func(path ...string) TestID { return TestID{Path: path} }

	t.Run("no patterns", func(t *testing.T) {
		var f RegexFilters
		assert.True(t, f.AsFilter(id("anything")))
	})

	t.Run("must match", func(t *testing.T) {
		var f RegexFilters
		require.NoError(t, f.MustMatch.Set("^species"))
		require.NoError(t, f.MustMatch.Set("pet$"))
		assert.True(t, f.AsFilter(id("species", "has data")))
		assert.True(t, f.AsFilter(id("petstore", "create pet")))
		assert.False(t, f.AsFilter(id("petstore")))
	})

	t.Run("must not match wins", func(t *testing.T) {
		var f RegexFilters
		require.NoError(t, f.MustMatch.Set("species"))
		require.NoError(t, f.MustNotMatch.Set("no data"))
		assert.True(t, f.AsFilter(id("species", "has data")))
		assert.False(t, f.AsFilter(id("species", "has no data")))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		var f RegexFilters
		assert.Error(t, f.MustMatch.Set("["))
		assert.False(t, f.MustMatch.IsDefined())
	})
}

func TestRegexListString(t *testing.T) {
	var r RegexList
	require.NoError(t, r.Set("a"))
	require.NoError(t, r.Set("b.c"))
	assert.Equal(t, `"a" or "b.c"`, r.String())
}

func TestPrintFilterDescription(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("species"))

	var buf bytes.Buffer
	PrintFilterDescription(&buf, f, map[string]string{
		"species":  "https://species.example",
		"petstore": "https://pets.example",
	})

	assert.Equal(t, "Some tests will be skipped based on the filter criteria for this test run:\n"+
		"  skip any not matching \"species\"\n"+
		"\n"+
		"Target APIs:\n"+
		"  petstore: https://pets.example\n"+
		"  species: https://species.example\n"+
		"\n", buf.String())
}

func TestPrintFilterDescriptionWithNoFilters(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{}, nil)
	assert.Empty(t, buf.String())
}
