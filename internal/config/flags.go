package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagResolution = flag.Int("resolution", 0, "Heightmap grid side length")
	flagSkirt      = flag.Float64("skirt", -1, "Skirt drop in world units")
	flagOutDir     = flag.String("out", "", "Output directory")
	flagOBJ        = flag.Bool("obj", false, "Also write a Wavefront OBJ dump")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses flags from an explicit argument list, leaving positional
// arguments in flag.Args(). Used by subcommand CLIs.
func ParseArgs(args []string) {
	_ = flag.CommandLine.Parse(args)
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
	if *flagResolution > 0 {
		cfg.Build.Resolution = *flagResolution
	}
	if *flagSkirt >= 0 {
		cfg.Build.SkirtHeight = float32(*flagSkirt)
	}
	if *flagOutDir != "" {
		cfg.Output.Dir = *flagOutDir
	}
	if *flagOBJ {
		cfg.Output.WriteOBJ = true
	}
}
