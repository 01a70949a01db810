package qr

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"ytd/internal/domain/errconsts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestWriteCreatesPNG(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "link_qr.png")
	require.NoError(t, Writer{}.Write("https://www.youtube.com/watch?v=abc", p))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestWriteRejectsEmptyURL(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "x.png")
	err := Writer{}.Write("  ", p)
	assert.ErrorIs(t, err, errconsts.ErrInvalidInput)
	assert.NoFileExists(t, p)
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "My_Video_Title_qr.png", FileName("My Video: Title!"))
	assert.Equal(t, "qr_code_qr.png", FileName("???"))
	assert.Equal(t, "qr_code_qr.png", FileName(""))
	assert.Equal(t, "/d/a_qr.png", PathFor("/d", "a"))
}
