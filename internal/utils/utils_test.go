package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("SBSONG_TEST_A", "alpha")
	t.Setenv("SBSONG_TEST_B", "beta")

	env, err := LoadEnv([]string{"SBSONG_TEST_A", "SBSONG_TEST_B"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"SBSONG_TEST_A": "alpha", "SBSONG_TEST_B": "beta"}, env)
}

func TestLoadEnv_Missing(t *testing.T) {
	t.Setenv("SBSONG_TEST_EMPTY", "")

	_, err := LoadEnv([]string{"SBSONG_TEST_EMPTY"})
	require.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "SBSONG_TEST_EMPTY")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SBSONG_TEST_SET", " value ")
	t.Setenv("SBSONG_TEST_BLANK", "  ")

	assert.Equal(t, "value", EnvOr("SBSONG_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", EnvOr("SBSONG_TEST_BLANK", "fallback"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"sukalov", "olakotr"}, SplitList(" sukalov, ,olakotr,"))
	assert.Nil(t, SplitList(""))
}
