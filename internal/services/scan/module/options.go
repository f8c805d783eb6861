package module

import (
	"time"

	"bankocr/internal/adapters/ingest/scanfile"
	"bankocr/internal/platform/config"
	"bankocr/internal/services/scan/guardrails"
)

// Options holds the scan settings read from CORE_SCAN_*
type Options struct {
	Workers       int
	ChunkSize     int
	PadShortLines bool
	FoldWidth     bool
	MaxRecords    int
	RunTimeout    time.Duration
	SinkTimeout   time.Duration
}

// FromConfig reads Options from cfg
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("CORE_SCAN_")
	return Options{
		Workers:       sc.MayInt("WORKERS", 4),
		ChunkSize:     sc.MayInt("CHUNK_SIZE", 256),
		PadShortLines: sc.MayBool("PAD_SHORT_LINES", true),
		FoldWidth:     sc.MayBool("FOLD_WIDTH", true),
		MaxRecords:    sc.MayInt("MAX_RECORDS", 0),
		RunTimeout:    sc.MayDuration("RUN_TIMEOUT", 0),
		SinkTimeout:   sc.MayDuration("SINK_TIMEOUT", 30*time.Second),
	}
}

func (o Options) reader() scanfile.Options {
	return scanfile.Options{
		PadShortLines: o.PadShortLines,
		FoldWidth:     o.FoldWidth,
		MaxRecords:    o.MaxRecords,
	}
}

func (o Options) timeouts() guardrails.Timeouts {
	return guardrails.Timeouts{Run: o.RunTimeout, Sink: o.SinkTimeout}
}
