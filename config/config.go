/*Package config loads a simulator setup from an INI file, for batch and
scripted runs where the observational parameters live next to the data
rather than in code.

The file carries one [instrument] section:

	[instrument]
	xs = 64
	ys = 64
	vs = 1000
	cellsize = 1.0
	dv = 10
	beam = 4, 2, 30
	lsf = 20
	nsamps = 250000
	seed = 100, 101, 102, 103
	cleanout = false
	hugebeam = false
	verbose = true

Missing keys fall back to the zero values, so kinms.New applies the same
defaults and validation as for a Config built in code.*/
package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/takafumi291/kinms"
)

// Load reads the instrument section of the INI file at path into a
// simulator configuration.
func Load(path string) (kinms.Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return kinms.Config{}, fmt.Errorf("loading instrument config: %w", err)
	}

	sec := file.Section("instrument")
	cfg := kinms.Config{
		XS:       sec.Key("xs").MustFloat64(0),
		YS:       sec.Key("ys").MustFloat64(0),
		VS:       sec.Key("vs").MustFloat64(0),
		CellSize: sec.Key("cellsize").MustFloat64(0),
		DV:       sec.Key("dv").MustFloat64(0),
		LSFWidth: sec.Key("lsf").MustFloat64(0),
		NSamps:   sec.Key("nsamps").MustInt(0),
		CleanOut: sec.Key("cleanout").MustBool(false),
		HugeBeam: sec.Key("hugebeam").MustBool(false),
		Verbose:  sec.Key("verbose").MustBool(false),
	}

	if s := sec.Key("beam").String(); s != "" {
		cfg.BeamSize = sec.Key("beam").Float64s(",")
	}
	if s := sec.Key("seed").String(); s != "" {
		seed := sec.Key("seed").Uint64s(",")
		if len(seed) != 4 {
			return kinms.Config{}, fmt.Errorf(
				"instrument config: seed needs four values, got %d", len(seed),
			)
		}
		copy(cfg.Seed[:], seed)
	}

	return cfg, nil
}
