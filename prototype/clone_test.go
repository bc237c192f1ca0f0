package prototype_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kata/patterns/prototype"
)

type document struct {
	Title    string            `json:"title"`
	Tags     []string          `json:"tags"`
	Metadata map[string]string `json:"metadata"`
}

func TestClone_Isolation(t *testing.T) {
	src := document{
		Title:    "draft",
		Tags:     []string{"a", "b"},
		Metadata: map[string]string{"owner": "alice"},
	}

	tgt, err := prototype.Clone(src)
	require.NoError(t, err)
	assert.Equal(t, src, tgt)

	// Mutating the clone must not leak into the original.
	tgt.Tags[0] = "z"
	tgt.Metadata["owner"] = "bob"
	assert.Equal(t, "a", src.Tags[0])
	assert.Equal(t, "alice", src.Metadata["owner"])
}

func TestClone_Pointer(t *testing.T) {
	src := &document{Title: "draft", Tags: []string{"a"}}
	tgt, err := prototype.Clone(src)
	require.NoError(t, err)
	require.NotNil(t, tgt)
	assert.NotSame(t, src, tgt)
	assert.Equal(t, *src, *tgt)

	data, err := jsoniter.Marshal(tgt)
	require.NoError(t, err)
	ja := jsonassert.New(t)
	ja.Assertf(string(data), `{"title": "draft", "tags": ["a"], "metadata": null}`)
}

type counter struct {
	Hits   int `json:"hits"`
	cloned int
}

func (c *counter) Clone() *counter {
	return &counter{Hits: c.Hits, cloned: c.cloned + 1}
}

func TestClone_CloneableOverride(t *testing.T) {
	src := &counter{Hits: 7}
	tgt, err := prototype.Clone(src)
	require.NoError(t, err)
	assert.Equal(t, 7, tgt.Hits)
	// The unexported field proves the Cloneable path ran, not the JSON one.
	assert.Equal(t, 1, tgt.cloned)
}

func TestRegistry(t *testing.T) {
	registry := prototype.NewRegistry[document]()
	registry.Register("report", document{Title: "weekly report", Tags: []string{"internal"}})

	clone, err := registry.Create("report")
	require.NoError(t, err)
	assert.Equal(t, "weekly report", clone.Title)

	clone.Tags[0] = "public"
	again, err := registry.Create("report")
	require.NoError(t, err)
	assert.Equal(t, "internal", again.Tags[0])

	_, err = registry.Create("missing")
	assert.ErrorIs(t, err, prototype.ErrUnknownPrototype)
}
