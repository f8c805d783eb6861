package module

import "bankocr/internal/platform/config"

// Options holds configuration settings for the OCR API module
type Options struct {
	MaxImages int
	MaxBody   int64
}

// FromConfig reads CORE_API_MAX_IMAGES and CORE_API_MAX_BODY
func FromConfig(cfg config.Conf) Options {
	ac := cfg.Prefix("CORE_API_")
	return Options{
		MaxImages: ac.MayInt("MAX_IMAGES", 500),
		MaxBody:   int64(ac.MayInt("MAX_BODY", 4<<20)),
	}
}
