package config

import (
	"errors"
	"fmt"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"spritegen/internal/sprite"
)

const DefaultOutDir = "assets/obstacles"

type Options struct {
	OutDir string   `long:"out-dir" env:"SPRITEGEN_OUT_DIR" default:"assets/obstacles" description:"Directory the sprite PNGs are written to"`
	Icons  []string `long:"icon" description:"Generate only the named icon (repeatable): obstacle, gravity_device, speed_boost, damage_boost"`
	Debug  bool     `long:"debug" env:"SPRITEGEN_DEBUG" description:"Enable verbose debug output"`
}

// ParseOptions loads .env if present, then parses args (os.Args[1:] when nil).
func ParseOptions(args []string) (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	parser := flags.NewParser(&opts, flags.Default)
	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		return Options{}, err
	}
	opts.OutDir = strings.TrimSpace(opts.OutDir)
	return opts, nil
}

func Validate(opts Options) error {
	if opts.OutDir == "" {
		return errors.New("output directory is required")
	}
	if _, err := SelectedKinds(opts); err != nil {
		return err
	}
	return nil
}

// SelectedKinds resolves --icon filters, defaulting to every kind. Duplicates are dropped.
func SelectedKinds(opts Options) ([]sprite.Kind, error) {
	if len(opts.Icons) == 0 {
		return sprite.Kinds(), nil
	}
	seen := map[sprite.Kind]bool{}
	kinds := make([]sprite.Kind, 0, len(opts.Icons))
	for _, name := range opts.Icons {
		kind, err := sprite.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("--icon: %w", err)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
