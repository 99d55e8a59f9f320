package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("fallback when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnv("TEASHOP_TEST_UNSET", "fallback"))
	})

	t.Run("env wins over fallback", func(t *testing.T) {
		t.Setenv("TEASHOP_TEST_SET", "from-env")
		assert.Equal(t, "from-env", getEnv("TEASHOP_TEST_SET", "fallback"))
	})

	t.Run("empty env value wins", func(t *testing.T) {
		t.Setenv("TEASHOP_TEST_EMPTY", "")
		assert.Equal(t, "", getEnv("TEASHOP_TEST_EMPTY", "fallback"))
	})
}
