package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Yes", true},
		{"on", true},
		{" on ", true},
		{"", false},
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.input))
		})
	}
}

func TestAutoConfirm(t *testing.T) {
	t.Setenv("SENDCAST_YES", "")
	assert.False(t, AutoConfirm())

	t.Setenv("SENDCAST_YES", "1")
	assert.True(t, AutoConfirm())

	t.Setenv("SENDCAST_YES", "off")
	assert.False(t, AutoConfirm())
}

func TestDirOverride(t *testing.T) {
	t.Setenv("SENDCAST_CONFIG_DIR", "/tmp/sendcast-test")
	dir, err := Dir()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/sendcast-test", dir)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("SENDCAST_CONFIG_DIR", t.TempDir())

	s := &Settings{BaseURL: "https://staging.sendcast.io/v1", ConfirmThreshold: 25, SampleSize: 5}
	assert.NoError(t, Save(s))

	got, err := LoadSettings()
	assert.NoError(t, err)
	assert.Equal(t, s, got)
}
