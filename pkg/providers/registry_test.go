package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_providers "github.com/matzehuels/memelab/internal/mocks/providers"
	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/providers"
)

func TestNew(t *testing.T) {
	r := providers.New(providers.Credentials{Serper: "k1", Tavily: "k2"}, cache.NewMemoryCache(), nil)

	assert.Equal(t, []string{"serper", "serpapi"}, r.Tier(providers.Primary))
	assert.Equal(t, []string{"brave", "tavily"}, r.Tier(providers.Secondary))
	assert.Equal(t, []string{"giphy", "pixabay"}, r.Tier(providers.Tertiary))
	assert.Equal(t, []string{"serper", "serpapi", "brave", "tavily", "giphy", "pixabay"}, r.Default())

	assert.Equal(t, []string{"serper", "tavily"}, r.Configured())
	assert.Equal(t, []string{"serper", "tavily", "imgflip"}, r.Sources())

	require.NotNil(t, r.Catalog())
	assert.Equal(t, "imgflip", r.Catalog().Name())

	p, ok := r.Get("serpapi")
	require.True(t, ok)
	assert.False(t, p.Configured())

	_, ok = r.Get("imgflip")
	assert.False(t, ok, "the catalog is not a tiered provider")

	assert.True(t, r.Known("imgflip"))
	assert.True(t, r.Known("pixabay"))
	assert.False(t, r.Known("bing"))
}

func TestNew_NoCredentials(t *testing.T) {
	r := providers.New(providers.Credentials{}, cache.NewNullCache(), cache.NewDefaultKeyer())

	assert.Empty(t, r.Configured())
	assert.Equal(t, []string{"imgflip"}, r.Sources())
	assert.Len(t, r.Default(), 6)
}

func TestRegistry_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := mock_providers.NewMockCatalog(ctrl)
	catalog.EXPECT().Name().Return("imgflip").AnyTimes()

	newProvider := func(name string) *mock_providers.MockProvider {
		p := mock_providers.NewMockProvider(ctrl)
		p.EXPECT().Name().Return(name).AnyTimes()
		return p
	}

	r := providers.NewRegistry(catalog)
	require.NoError(t, r.Register(providers.Secondary, newProvider("a")))
	require.NoError(t, r.Register(providers.Primary, newProvider("b")))

	assert.Error(t, r.Register(providers.Primary, newProvider("a")), "duplicate name")
	assert.Error(t, r.Register(providers.Tertiary, newProvider("imgflip")), "catalog name")
	assert.Error(t, r.Register(providers.Tier(7), newProvider("c")), "invalid tier")

	// Default follows tier order, not registration order.
	assert.Equal(t, []string{"b", "a"}, r.Default())
	assert.Nil(t, r.Tier(providers.Tier(-1)))
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock_providers.NewMockProvider(ctrl)
	p.EXPECT().Name().Return("dup").AnyTimes()
	p.EXPECT().Configured().Return(false).AnyTimes()

	r := providers.NewRegistry(nil)
	r.MustRegister(providers.Primary, p)
	assert.Panics(t, func() { r.MustRegister(providers.Primary, p) })
	assert.Nil(t, r.Catalog())
	assert.Empty(t, r.Sources(), "unconfigured providers are not listed")
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "primary", providers.Primary.String())
	assert.Equal(t, "secondary", providers.Secondary.String())
	assert.Equal(t, "tertiary", providers.Tertiary.String())
	assert.Equal(t, "tier(9)", providers.Tier(9).String())
}
