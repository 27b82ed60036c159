package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN_AllowsEmptyPassword(t *testing.T) {
	dsn, err := buildDSN("root", "", "", "", "health_tracker")

	require.NoError(t, err)
	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/health_tracker?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestBuildDSN_RequiresUserAndName(t *testing.T) {
	_, err := buildDSN("", "secret", "db", "3306", "health_tracker")
	assert.Error(t, err)

	_, err = buildDSN("root", "secret", "db", "3306", "")
	assert.Error(t, err)
}

func TestBuildDSN_DefaultsHostAndPort(t *testing.T) {
	dsn, err := buildDSN("root", "secret", "", "", "health_tracker")

	require.NoError(t, err)
	assert.Contains(t, dsn, "@tcp(127.0.0.1:3306)/")
}
