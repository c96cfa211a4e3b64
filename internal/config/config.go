// README: Config loader: .env, environment and defaults for HTTP, providers, LLM and rate limiting.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingCredentials = errors.New("missing required credentials")

const (
	LLMOpenAI = "openai"
	LLMGemini = "gemini"

	SearchTavily  = "tavily"
	SearchSerpAPI = "serpapi"
)

type Config struct {
	Env      string
	LogLevel string
	HTTP     struct {
		Addr            string
		CORSOrigins     []string
		RateLimitPerMin int
	}
	Redis struct {
		Addr string
	}
	Timeouts struct {
		Provider   time.Duration
		Generation time.Duration
	}
	LLM struct {
		Provider    string
		Model       string
		Temperature float64
	}
	Search struct {
		Provider string
	}
	Keys struct {
		OpenAI         string
		Gemini         string
		GoogleMaps     string
		OpenWeatherMap string
		Tavily         string
		SerpAPI        string
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads envFiles (default ".env") when present, then the environment.
// Every missing credential is reported in a single error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("TRAVEL_HTTP_ADDR", ":8000")
	v.SetDefault("TRAVEL_ENV", "development")
	v.SetDefault("TRAVEL_LOG_LEVEL", "info")
	v.SetDefault("TRAVEL_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TRAVEL_RATE_LIMIT_PER_MIN", 60)
	v.SetDefault("TRAVEL_REDIS_ADDR", "")
	v.SetDefault("TRAVEL_PROVIDER_TIMEOUT", "15s")
	v.SetDefault("TRAVEL_GENERATION_TIMEOUT", "90s")
	v.SetDefault("TRAVEL_LLM_PROVIDER", LLMOpenAI)
	v.SetDefault("TRAVEL_LLM_MODEL", "")
	v.SetDefault("TRAVEL_LLM_TEMPERATURE", 0.5)
	v.SetDefault("TRAVEL_SEARCH_PROVIDER", SearchTavily)

	var cfg Config
	cfg.Env = v.GetString("TRAVEL_ENV")
	cfg.LogLevel = v.GetString("TRAVEL_LOG_LEVEL")
	cfg.HTTP.Addr = v.GetString("TRAVEL_HTTP_ADDR")
	cfg.HTTP.CORSOrigins = splitList(v.GetString("TRAVEL_CORS_ORIGINS"))
	cfg.HTTP.RateLimitPerMin = v.GetInt("TRAVEL_RATE_LIMIT_PER_MIN")
	cfg.Redis.Addr = v.GetString("TRAVEL_REDIS_ADDR")
	cfg.Timeouts.Provider = v.GetDuration("TRAVEL_PROVIDER_TIMEOUT")
	cfg.Timeouts.Generation = v.GetDuration("TRAVEL_GENERATION_TIMEOUT")
	cfg.LLM.Provider = strings.ToLower(v.GetString("TRAVEL_LLM_PROVIDER"))
	cfg.LLM.Model = v.GetString("TRAVEL_LLM_MODEL")
	cfg.LLM.Temperature = v.GetFloat64("TRAVEL_LLM_TEMPERATURE")
	cfg.Search.Provider = strings.ToLower(v.GetString("TRAVEL_SEARCH_PROVIDER"))
	cfg.Keys.OpenAI = v.GetString("OPENAI_API_KEY")
	cfg.Keys.Gemini = v.GetString("GEMINI_API_KEY")
	cfg.Keys.GoogleMaps = v.GetString("GOOGLE_MAPS_API_KEY")
	cfg.Keys.OpenWeatherMap = v.GetString("OPENWEATHERMAP_API_KEY")
	cfg.Keys.Tavily = v.GetString("TAVILY_API_KEY")
	cfg.Keys.SerpAPI = v.GetString("SERPAPI_API_KEY")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	need := func(key, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, key)
		}
	}

	switch c.LLM.Provider {
	case LLMOpenAI:
		need("OPENAI_API_KEY", c.Keys.OpenAI)
	case LLMGemini:
		need("GEMINI_API_KEY", c.Keys.Gemini)
	default:
		return fmt.Errorf("TRAVEL_LLM_PROVIDER: unknown provider %q", c.LLM.Provider)
	}
	switch c.Search.Provider {
	case SearchTavily:
		need("TAVILY_API_KEY", c.Keys.Tavily)
	case SearchSerpAPI:
		need("SERPAPI_API_KEY", c.Keys.SerpAPI)
	default:
		return fmt.Errorf("TRAVEL_SEARCH_PROVIDER: unknown provider %q", c.Search.Provider)
	}
	need("GOOGLE_MAPS_API_KEY", c.Keys.GoogleMaps)
	need("OPENWEATHERMAP_API_KEY", c.Keys.OpenWeatherMap)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
