package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"PowerPong/core"

	"github.com/fsnotify/fsnotify"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const FrontendTerminal = "terminal"
const FrontendWindow = "window"

type Properties struct {
	Frontend string
	Width    int
	Height   int
	TickRate int
	Seed     int64
	ThemeKey rune
	Watch    bool
	Palette  core.Palette
}

// Flags declares the command line. env and config-dir pick the file, the rest override its keys.
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("env", "local", "properties file under <config-dir>/properties")
	flags.String("config-dir", "./", "directory holding logger.properties and properties/")
	flags.String("frontend", FrontendTerminal, "terminal or window")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flags.Int("tick-rate", core.DefaultTickRate, "simulation ticks per second")
	flags.Bool("watch", false, "reload the palette when the properties file changes")
	return flags
}

// bindings maps properties keys to flag names.
var bindings = map[string]string{
	"frontend": "frontend",
	"seed":     "seed",
	"tickRate": "tick-rate",
	"watch":    "watch",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", FrontendTerminal)
	v.SetDefault("width", core.DefaultWidth)
	v.SetDefault("height", core.DefaultHeight)
	v.SetDefault("tickRate", core.DefaultTickRate)
	v.SetDefault("seed", 0)
	v.SetDefault("themeKey", string(core.DefaultThemeKey))
	v.SetDefault("watch", false)

	v.SetDefault("paddleColor", "#ffffff")
	v.SetDefault("paddleAltColor", "#ff0000")
	v.SetDefault("ballColor", "#ffffff")
	v.SetDefault("ballAltColor", "#ffff00")
	v.SetDefault("powerUpColor", "#008000")
	v.SetDefault("textColor", "#ffffff")
	v.SetDefault("backgroundColor", "#000000")
}

// ReadProperties loads <dir>/properties/<env>.properties from fs, applying flag overrides
// when flags is not nil. A missing file yields the defaults.
func ReadProperties(fs afero.Fs, dir, env string, flags *pflag.FlagSet) (*Properties, *viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	setDefaults(v)

	if flags != nil {
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	p, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	return p, v, nil
}

func Decode(v *viper.Viper) (*Properties, error) {
	p := &Properties{
		Frontend: cast.ToString(v.Get("frontend")),
		Width:    cast.ToInt(v.Get("width")),
		Height:   cast.ToInt(v.Get("height")),
		TickRate: cast.ToInt(v.Get("tickRate")),
		Seed:     cast.ToInt64(v.Get("seed")),
		Watch:    cast.ToBool(v.Get("watch")),
	}

	switch p.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return nil, fmt.Errorf("unknown frontend %q", p.Frontend)
	}

	// 畫布要放得下球拍跟道具
	if p.Width <= 2*core.PowerUpMargin || p.Height <= core.PaddleHeight {
		return nil, fmt.Errorf("surface %dx%d too small", p.Width, p.Height)
	}
	if p.TickRate <= 0 {
		return nil, fmt.Errorf("tickRate must be positive, got %d", p.TickRate)
	}

	key := cast.ToString(v.Get("themeKey"))
	if utf8.RuneCountInString(key) != 1 {
		return nil, fmt.Errorf("themeKey must be a single character, got %q", key)
	}
	p.ThemeKey, _ = utf8.DecodeRuneInString(key)

	palette, err := ParsePalette(v)
	if err != nil {
		return nil, err
	}
	p.Palette = palette
	return p, nil
}

func ParsePalette(v *viper.Viper) (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		key string
		dst *core.RGB
	}{
		{"paddleColor", &p.Paddle[core.TintWhite]},
		{"paddleAltColor", &p.Paddle[core.TintAlternate]},
		{"ballColor", &p.Ball[core.TintWhite]},
		{"ballAltColor", &p.Ball[core.TintAlternate]},
		{"powerUpColor", &p.PowerUp},
		{"textColor", &p.Text},
		{"backgroundColor", &p.Background},
	}
	for _, f := range fields {
		c, err := ParseColor(cast.ToString(v.Get(f.key)))
		if err != nil {
			return core.Palette{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseColor reads a #rrggbb hex color.
func ParseColor(hex string) (core.RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.RGB{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}

// Watch re-parses the palette every time viper sees the properties file change.
// onChange runs on viper's watcher goroutine.
func Watch(v *viper.Viper, onChange func(file string, p core.Palette, err error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		p, err := ParsePalette(v)
		onChange(e.Name, p, err)
	})
	v.WatchConfig()
}
