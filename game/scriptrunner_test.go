package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrainerScripts(t *testing.T) {
	err := RunGameScriptTests("../test/trainer-scripts", "")
	require.NoError(t, err)
}

func TestRunSingleScript(t *testing.T) {
	err := RunGameScriptTests("../test/trainer-scripts", "split-aces")
	require.NoError(t, err)
}

func TestRunMissingScript(t *testing.T) {
	err := RunGameScriptTests("../test/trainer-scripts", "no-such-script")
	assert.Error(t, err)
}
