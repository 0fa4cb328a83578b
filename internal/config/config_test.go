package config

import (
	"testing"

	"github.com/hoppxi/zbacklight/pkg/backlightinfo"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := New()

	assert.Equal(t, backlightinfo.DefaultPaths(), PathsFrom(v))
	assert.Equal(t, "warn", v.GetString(KeyLogLevel))
}

func TestPathsOverride(t *testing.T) {
	v := New()
	v.Set(KeyTargetPath, "/tmp/brightness")

	p := PathsFrom(v)
	assert.Equal(t, "/tmp/brightness", p.Target)
	assert.Equal(t, backlightinfo.CurrentBrightness, p.Current)
}

func TestLoadIsShared(t *testing.T) {
	assert.Same(t, Config.Load(), Config.Load())
	assert.Equal(t, backlightinfo.MaxBrightness, Config.Paths().Max)
}
