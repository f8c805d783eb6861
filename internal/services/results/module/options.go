package module

import (
	"bankocr/internal/platform/config"
	"bankocr/internal/services/results/repo"
)

// Options holds configuration settings for the results module
type Options struct {
	HardLimit int
	CHTable   string
}

// FromConfig reads CORE_RESULTS_*
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_RESULTS_")
	return Options{
		HardLimit: rc.MayInt("HARD_LIMIT", 100),
		CHTable:   rc.MayString("CH_TABLE", repo.DefaultCHTable),
	}
}
