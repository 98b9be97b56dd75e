package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/vitrina/internal/analysis"
)

func TestConfigStore_SetGet(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("greeting", "hello"))
	require.NoError(t, s.Set("count", int64(42)))
	require.NoError(t, s.Set("ratio", 0.75))
	require.NoError(t, s.Set("enabled", true))

	assert.Equal(t, "hello", s.GetString("greeting"))
	assert.Equal(t, 42, s.GetInt("count"))
	assert.Equal(t, 0.75, s.GetFloat("ratio"))
	assert.True(t, s.GetBool("enabled"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", s.GetString("nope"))
	assert.Equal(t, 0, s.GetInt("nope"))
	assert.Equal(t, 0.0, s.GetFloat("nope"))
	assert.False(t, s.GetBool("nope"))

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set("staleness_hours", int64(12)))

	s2, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, s2.GetInt("staleness_hours"))
}

func TestConfigStore_GetFloatFromInteger(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Set("threshold", int64(1)))

	assert.Equal(t, 1.0, s.GetFloat("threshold"))
}

func TestConfigStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestEngineParams_Defaults(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, analysis.DefaultParams(), EngineParams(s))
	assert.Equal(t, analysis.DefaultParams(), EngineParams(nil))
}

func TestEngineParams_Overrides(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Set("category_similarity", 0.8))
	require.NoError(t, s.Set("pattern_similarity", 0.9))
	require.NoError(t, s.Set("min_cooccurrence", int64(4)))
	require.NoError(t, s.Set("staleness_hours", int64(6)))

	params := EngineParams(s)

	assert.Equal(t, 0.8, params.CategorySimilarity)
	assert.Equal(t, 0.9, params.PatternSimilarity)
	assert.Equal(t, 4, params.MinCooccurrence)
	assert.Equal(t, 6*time.Hour, params.StalenessWindow)
}
