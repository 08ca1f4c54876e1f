package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./res/courses.csv", cfg.CoursesFile)
	assert.Equal(t, "timetable.csv", cfg.ExportFile)
	assert.Equal(t, 3000, cfg.ElectiveAttempts)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.GroupByBasket)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TIMETABLE_SEED", "1234")
	t.Setenv("TIMETABLE_ELECTIVE_ATTEMPTS", "500")
	t.Setenv("TIMETABLE_GROUP_BY_BASKET", "true")
	t.Setenv("TIMETABLE_COURSES_FILE", "/tmp/other.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 500, cfg.ElectiveAttempts)
	assert.True(t, cfg.GroupByBasket)
	assert.Equal(t, "/tmp/other.csv", cfg.CoursesFile)
}

func TestLoggerBuilds(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"
	logger, err = cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
