package config

import (
	"sync"

	"github.com/hoppxi/zbacklight/pkg/backlightinfo"
	"github.com/spf13/viper"
)

const (
	KeyCurrentPath = "backlight.current_path"
	KeyMaxPath     = "backlight.max_path"
	KeyTargetPath  = "backlight.target_path"
	KeyLogLevel    = "log.level"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load returns the process settings. Only built-in defaults are used; no
// config file or environment is consulted.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = New()
	})

	return v
}

func New() *viper.Viper {
	nv := viper.New()
	SetDefaults(nv)
	return nv
}

func SetDefaults(nv *viper.Viper) {
	paths := backlightinfo.DefaultPaths()
	nv.SetDefault(KeyCurrentPath, paths.Current)
	nv.SetDefault(KeyMaxPath, paths.Max)
	nv.SetDefault(KeyTargetPath, paths.Target)
	nv.SetDefault(KeyLogLevel, "warn")
}

func (c *ConfigManager) Paths() backlightinfo.Paths {
	return PathsFrom(c.Load())
}

func PathsFrom(nv *viper.Viper) backlightinfo.Paths {
	return backlightinfo.Paths{
		Current: nv.GetString(KeyCurrentPath),
		Max:     nv.GetString(KeyMaxPath),
		Target:  nv.GetString(KeyTargetPath),
	}
}
