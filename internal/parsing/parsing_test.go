package parsing

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigValueKeyForms(t *testing.T) {
	v := viper.New()
	v.Set("download_dir", "/data")
	v.Set("debug", "3")

	s, ok := GetConfigValue[string](v, "download-dir")
	require.True(t, ok)
	assert.Equal(t, "/data", s)

	n, ok := GetConfigValue[int](v, "debug")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = GetConfigValue[string](v, "missing-key")
	assert.False(t, ok)
}

func TestLoadViperIntoStruct(t *testing.T) {
	type target struct {
		Dir     string `viper:"download-dir"`
		Level   int    `viper:"debug"`
		Audio   bool   `viper:"audio"`
		Keep    string `viper:"unset-key"`
		Ignored string
	}

	v := viper.New()
	v.Set("download-dir", "/tmp/x")
	v.Set("debug", 2)
	v.Set("audio", "yes")

	out := target{Keep: "default"}
	require.NoError(t, LoadViperIntoStruct(v, &out))
	assert.Equal(t, "/tmp/x", out.Dir)
	assert.Equal(t, 2, out.Level)
	assert.True(t, out.Audio)
	assert.Equal(t, "default", out.Keep)

	assert.Error(t, LoadViperIntoStruct(v, out))
}

func TestFormatUploadDate(t *testing.T) {
	got, err := FormatUploadDate("20091025")
	require.NoError(t, err)
	assert.Equal(t, "Oct 25, 2009", got)

	_, err = FormatUploadDate("")
	assert.Error(t, err)

	assert.Equal(t, "2009-10-25", HyphenateYyyyMmDd("20091025"))
	assert.Equal(t, "2009", HyphenateYyyyMmDd("2009"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3:32", FormatDuration(212))
	assert.Equal(t, "1:01:05", FormatDuration(3665))
	assert.Equal(t, "0:00", FormatDuration(-4))
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Hello, World!", 50, "Hello_World"},
		{"  spaced   out - title ", 50, "spaced_out_title"},
		{"abcdefghij", 5, "abcde"},
		{"!!!", 50, ""},
		{"Café Ñandú", 50, "Café_Ñandú"},
		{"日本語のタイトル", 50, "日本語のタイトル"},
		{"Привет, мир!", 50, "Привет_мир"},
		{"日本語のタイトル", 3, "日本語"},
		{"Track\u00a0２", 50, "Track_２"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeName(tt.in, tt.max), tt.in)
	}
}

func TestEnsureExtAndStem(t *testing.T) {
	assert.Equal(t, "clip.mp4", EnsureExt("clip", ".mp4"))
	assert.Equal(t, "clip.MP4", EnsureExt("clip.MP4", ".mp4"))
	assert.Equal(t, "clip", Stem("clip.mp4"))
	assert.Equal(t, ".hidden", Stem(".hidden"))
}
