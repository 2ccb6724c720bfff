package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/memelab/pkg/errors"
)

func TestEmbeddedTable(t *testing.T) {
	require.NoError(t, Err())

	cats := All()
	require.Len(t, cats, 14)
	assert.Equal(t, "trending", cats[0].ID)
	assert.Equal(t, "ai", cats[len(cats)-1].ID)

	for _, c := range cats {
		assert.NotEmpty(t, c.Name, c.ID)
		assert.NotEmpty(t, c.Query, c.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cats := All()
	cats[0].Query = "changed"
	assert.Equal(t, "trending memes 2025", All()[0].Query)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("dark-humor")
	require.True(t, ok)
	assert.Equal(t, "Dark Humor", c.Name)
	assert.Equal(t, "dark humor memes edgy memes", c.Query)

	c, ok = Lookup("ai")
	require.True(t, ok)
	assert.Equal(t, "AI", c.Name)

	_, ok = Lookup("unknown-key")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	c, err := Resolve("funny")
	require.NoError(t, err)
	assert.Equal(t, "Funny", c.Name)

	_, err = Resolve("unknown-key")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidCategory))
	assert.Equal(t, "Invalid category", errors.UserMessage(err))
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"funny":      "Funny",
		"dark-humor": "Dark Humor",
		"a-b-c":      "A B C",
		"":           "",
		"trailing-":  "Trailing ",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayName(in), in)
	}
}

func TestParse(t *testing.T) {
	cats, err := Parse([]byte("- id: x-y\n  query: q\n"))
	require.NoError(t, err)
	assert.Equal(t, "X Y", cats[0].Name)

	_, err = Parse([]byte("- id: x\n"))
	assert.Error(t, err, "missing query")

	_, err = Parse([]byte("- id: x\n  query: a\n- id: x\n  query: b\n"))
	assert.Error(t, err, "duplicate id")

	_, err = Parse([]byte("not: [a list"))
	assert.Error(t, err)
}
