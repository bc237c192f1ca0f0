package builder_test

import (
	"context"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kata/patterns/builder"
)

func TestDirector(t *testing.T) {
	ctx := context.Background()
	director := builder.NewDirector(builder.NewPartsBuilder())

	minimal, err := director.BuildMinimalViableProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PartA1"}, minimal.Parts)
	assert.Equal(t, "Product parts: PartA1", minimal.List())

	full, err := director.BuildFullFeaturedProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PartA1", "PartB1", "PartC1"}, full.Parts)
}

func TestPartsBuilder_Reset(t *testing.T) {
	ctx := context.Background()
	b := builder.NewPartsBuilder()

	custom, err := b.PartA().PartC().Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PartA1", "PartC1"}, custom.Parts)

	// Build hands the product over, the next product starts from scratch.
	next, err := b.PartB().Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"PartB1"}, next.Parts)
}

func TestProduct_JSON(t *testing.T) {
	ctx := context.Background()
	full, err := builder.NewDirector(builder.NewPartsBuilder()).BuildFullFeaturedProduct(ctx)
	require.NoError(t, err)

	data, err := jsoniter.Marshal(full)
	require.NoError(t, err)
	ja := jsonassert.New(t)
	ja.Assertf(string(data), `{"parts": ["PartA1", "PartB1", "PartC1"]}`)
}

func TestFunc(t *testing.T) {
	b := builder.Func[int](func(context.Context) (int, error) {
		return 42, nil
	})
	got, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}
