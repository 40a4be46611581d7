package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/llm"
)

// chdirTemp moves into an empty directory so stray .env or coursegen.yaml
// files do not leak into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, llm.ProviderCerebras, cfg.LLM.Primary.Provider)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Generation.MaxChapters)
	assert.Equal(t, 4, cfg.Generation.MaxWorkers)
	assert.Equal(t, 8, cfg.Generation.MaxLessons)
	assert.Equal(t, 0.5, cfg.Search.Tavily.MinScore)
	assert.Equal(t, "pennapps", cfg.Search.Pinecone.Namespace)
	assert.Equal(t, 3, cfg.Search.Pinecone.TopK)
	assert.Equal(t, int64(5), cfg.Search.YouTube.MaxResults)
	assert.Equal(t, 24*time.Hour, cfg.Search.Redis.TTL)
	assert.Equal(t, 0.7, cfg.Grading.PassThreshold)
	assert.Equal(t, 50, cfg.Grading.FallbackScore)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
db:
  path: /tmp/courses.db
llm:
  primary:
    provider: anthropic
    api_key: from-file
  secondary:
    provider: openrouter
    api_key: sk-or
  timeout: 30s
generation:
  max_workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("COURSEGEN_LLM_PRIMARY_API_KEY", "from-env")
	t.Setenv("COURSEGEN_GENERATION_MAX_CHAPTERS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/courses.db", cfg.DB.Path)
	assert.Equal(t, "anthropic", cfg.LLM.Primary.Provider)
	assert.Equal(t, "from-env", cfg.LLM.Primary.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2, cfg.Generation.MaxWorkers)
	assert.Equal(t, 3, cfg.Generation.MaxChapters)

	lc := cfg.LLMSettings()
	assert.True(t, lc.HasSecondary())
	assert.Equal(t, "sk-or", lc.Secondary.APIKey)
	assert.Equal(t, 2.0, lc.Retry.Multiplier)
	assert.NoError(t, lc.Validate())
}

func TestLoadProviderNativeEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CEREBRAS_API_KEY", "csk-123")
	t.Setenv("TAVILY_API_KEY", "tvly-123")
	t.Setenv("YOUTUBE_API_KEY", "yt-123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "csk-123", cfg.LLM.Primary.APIKey)
	assert.Equal(t, "tvly-123", cfg.Search.Tavily.APIKey)
	assert.Equal(t, "yt-123", cfg.Search.YouTube.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COURSEGEN_HTTP_ADDR=:9999\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("COURSEGEN_HTTP_ADDR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, err := Load("/nonexistent/coursegen.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero chapters", map[string]string{"COURSEGEN_GENERATION_MAX_CHAPTERS": "0"}},
		{"zero workers", map[string]string{"COURSEGEN_GENERATION_MAX_WORKERS": "0"}},
		{"inverted lesson range", map[string]string{"COURSEGEN_GENERATION_MIN_LESSONS": "9"}},
		{"threshold above one", map[string]string{"COURSEGEN_GRADING_PASS_THRESHOLD": "1.5"}},
		{"negative fallback score", map[string]string{"COURSEGEN_GRADING_FALLBACK_SCORE": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
