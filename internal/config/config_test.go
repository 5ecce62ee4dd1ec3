package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tabuada/internal/quiz"
)

// isolate points every lookup at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{
		"TABUADA_CONFIG", "TABUADA_DB", "TABUADA_LOG", "TABUADA_LOG_LEVEL",
		"TABUADA_DIFFICULTY", "TABUADA_MAX_LIVES", "TABUADA_LEADERBOARD_SIZE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tabuada.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"difficulty: Hard\nmax_lives: 3\nleaderboard_size: 10\ndb_path: /tmp/games.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, quiz.DifficultyHard, cfg.Difficulty)
	assert.Equal(t, 3, cfg.MaxLives)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, "/tmp/games.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tabuada.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: hard\nmax_lives: 3\n"), 0o644))
	t.Setenv("TABUADA_DIFFICULTY", "easy")
	t.Setenv("TABUADA_MAX_LIVES", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, quiz.DifficultyEasy, cfg.Difficulty)
	assert.Equal(t, 8, cfg.MaxLives)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("TABUADA_LOG_LEVEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TABUADA_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TABUADA_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"difficulty", map[string]string{"TABUADA_DIFFICULTY": "insane"}},
		{"lives range", map[string]string{"TABUADA_MAX_LIVES": "0"}},
		{"lives number", map[string]string{"TABUADA_MAX_LIVES": "many"}},
		{"log level", map[string]string{"TABUADA_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_lives: [\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}
