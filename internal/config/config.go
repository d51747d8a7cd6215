package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Dicklesworthstone/feo/internal/errors"
)

// Flag and viper keys. Each may be overridden by FEO_<KEY> in the environment.
const (
	EnvPrefix = "FEO"
	KeyDelay  = "delay"
	KeyGPU    = "gpu"
	KeyColor  = "color"
)

// DefaultDelay is used when a delay of 0 is requested.
const DefaultDelay = 2

// Config carries runtime options for feo.
type Config struct {
	Delay int    // seconds between frames; 0 means DefaultDelay
	GPU   bool   // sample GPU temperature via vcgencmd
	Theme string // color theme selector: w, b or s
}

func Default() Config {
	return Config{
		Delay: DefaultDelay,
		GPU:   false,
		Theme: "s",
	}
}

// RegisterFlags adds the feo flags to fs with defaults from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.IntP(KeyDelay, "d", def.Delay, "set the delay between updates, in whole seconds")
	fs.BoolP(KeyGPU, "g", def.GPU, "monitor the GPU temperature (only available for Raspberry Pi)")
	fs.StringP(KeyColor, "c", def.Theme, "select color-scheme for monitor: 'w' for white, 'b' for black, 's' for standard")
}

// Load resolves the config from fs and FEO_* environment variables.
// Flags given on the command line win over the environment.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to bind command-line flags", "")
	}

	delay, err := cast.ToIntE(v.Get(KeyDelay))
	if err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid delay %q", v.GetString(KeyDelay)),
			"Set the delay to a whole number of seconds")
	}
	gpu, err := cast.ToBoolE(v.Get(KeyGPU))
	if err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid gpu setting %q", v.GetString(KeyGPU)),
			"Use true or false")
	}

	cfg := Config{
		Delay: delay,
		GPU:   gpu,
		Theme: v.GetString(KeyColor),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Delay < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Delay must not be negative, got %d", c.Delay),
			"Pass a delay of 0 or more seconds")
	}
	return nil
}

// DelaySeconds returns the sampling interval in whole seconds, mapping 0 to DefaultDelay.
func (c Config) DelaySeconds() int {
	if c.Delay == 0 {
		return DefaultDelay
	}
	return c.Delay
}

// EffectiveDelay is DelaySeconds as a duration.
func (c Config) EffectiveDelay() time.Duration {
	return time.Duration(c.DelaySeconds()) * time.Second
}
