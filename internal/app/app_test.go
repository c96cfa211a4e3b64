package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepaklokare24/travel-agent/internal/ai"
	"github.com/deepaklokare24/travel-agent/internal/config"
	"github.com/deepaklokare24/travel-agent/internal/search"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.LLM.Provider = config.LLMOpenAI
	cfg.Search.Provider = config.SearchTavily
	cfg.Keys.OpenAI = "sk-test"
	cfg.Keys.GoogleMaps = "maps-key"
	cfg.Keys.OpenWeatherMap = "owm"
	cfg.Keys.Tavily = "tvly"
	cfg.Keys.SerpAPI = "serp"
	return cfg
}

func TestNewSearcher(t *testing.T) {
	cfg := testConfig()
	assert.IsType(t, &search.Tavily{}, NewSearcher(cfg))

	cfg.Search.Provider = config.SearchSerpAPI
	assert.IsType(t, &search.SerpAPI{}, NewSearcher(cfg))
}

func TestNewGenerator_OpenAI(t *testing.T) {
	gen, closeFn, err := NewGenerator(context.Background(), testConfig())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &ai.OpenAIGenerator{}, gen)
}

func TestNewGenerator_MissingKey(t *testing.T) {
	cfg := testConfig()
	cfg.Keys.OpenAI = ""
	_, _, err := NewGenerator(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewComposer(t *testing.T) {
	svc, closeFn, err := NewComposer(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, svc)
}
