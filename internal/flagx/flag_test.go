package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-c", "conf.json", "-x", "other"}, []string{"-c"})
	assert.Equal(t, []string{"-c", "conf.json"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-v"}, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-c", "-v"}, []string{"-c"})
	assert.Equal(t, []string{"-c"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "1", "-b"}, []string{"-c"})
	assert.Empty(t, got)
}
