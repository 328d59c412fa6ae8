package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvision(t *testing.T) {
	cmd := Provision()

	require.NotNil(t, cmd)
	assert.Equal(t, "provision", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestProvision_Flags(t *testing.T) {
	cmd := Provision()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	manualFlag := cmd.Flags().Lookup("manual")
	require.NotNil(t, manualFlag)
	assert.Equal(t, "false", manualFlag.DefValue)
}

func TestListCommands_RequireSiteFlag(t *testing.T) {
	assets := Assets()
	require.NotNil(t, assets.Flags().Lookup("site"))

	meters := Meters()
	require.NotNil(t, meters.Flags().Lookup("site"))
}
