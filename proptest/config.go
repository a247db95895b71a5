package proptest

import (
	"strconv"

	"github.com/lischenko/quicktheories/inifile"
)

// ConfigFile is the ini file LoadConfig reads from the working
// directory.
//
//	[check]
//	trials = 200
//	seed = 42
//	verbose = true
//
//	[corpus]
//	path = .quicktheories/corpus.db
const ConfigFile = "quicktheories.ini"

// LoadConfig reads proptest defaults from quicktheories.ini. A missing
// file or key falls back to DefaultConfig; malformed values are
// ignored rather than failing the run.
func LoadConfig() Config {
	return loadConfigFile(ConfigFile)
}

func loadConfigFile(path string) Config {
	cfg := DefaultConfig()

	f, err := inifile.ParseFile(path)
	if err != nil {
		return cfg
	}

	if v := f.Get("check", "trials"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Trials = n
		}
	}
	if v := f.Get("check", "seed"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := f.Get("check", "verbose"); v != "" {
		cfg.Verbose = v == "true" || v == "1"
	}
	if v := f.Get("corpus", "path"); v != "" {
		cfg.CorpusPath = v
	}

	return cfg
}
