package paths

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	got, err := Expand("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Expand("/app//downloads/")
	require.NoError(t, err)
	assert.Equal(t, "/app/downloads", got)

	home, err := homedir.Dir()
	require.NoError(t, err)

	got, err = Expand("~/videos")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "videos"), got)
}
