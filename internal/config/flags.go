package config

import (
	"flag"
	"strconv"
)

// int64Flag remembers whether it was set, so zero can be passed
// explicitly.
type int64Flag struct {
	set   bool
	value int64
}

func (f *int64Flag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatInt(f.value, 10)
}

func (f *int64Flag) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "World width in blocks")
	flagHeight  = flag.Int("height", 0, "World height in blocks")
	flagDepth   = flag.Int("depth", 0, "World depth in blocks")
	flagMap     = flag.Bool("map", false, "Print a top-down map after generating")
	flagMetrics = flag.Bool("metrics", false, "Print collected metrics on exit")
	flagSeed    = &int64Flag{}
)

func init() {
	flag.Var(flagSeed, "seed", "Terrain seed")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagSeed.set {
		cfg.Terrain.Seed = flagSeed.value
	}
	if *flagWidth > 0 {
		cfg.World.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.World.Height = *flagHeight
	}
	if *flagDepth > 0 {
		cfg.World.Depth = *flagDepth
	}
	if *flagMap {
		cfg.Output.Map = true
	}
	if *flagMetrics {
		cfg.Output.Metrics = true
	}
}
