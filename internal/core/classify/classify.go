// Package classify turns a decoded reading into its final disposition and output line
package classify

import (
	"strings"

	"bankocr/internal/core/checksum"
	"bankocr/internal/core/correct"
	"bankocr/internal/core/decoder"
	"bankocr/internal/platform/logger"
)

var log = func() *logger.Logger { return logger.Named("classify") }

// Disposition is the final state of one image
type Disposition uint8

const (
	// Clean readings pass the checksum as decoded
	Clean Disposition = iota
	// Corrected readings have exactly one valid single-symbol repair
	Corrected
	// Illegible readings have unknown positions that could not be repaired
	Illegible
	// Errored readings are fully legible, fail the checksum and have no repair
	Errored
	// Ambiguous readings have several valid repairs
	Ambiguous
)

var dispositionNames = [...]string{
	Clean:     "clean",
	Corrected: "corrected",
	Illegible: "illegible",
	Errored:   "error",
	Ambiguous: "ambiguous",
}

// String returns the lower case name stored with results
func (d Disposition) String() string {
	if int(d) < len(dispositionNames) {
		return dispositionNames[d]
	}
	return "invalid"
}

// ParseDisposition is the inverse of String
func ParseDisposition(s string) (Disposition, bool) {
	for d, name := range dispositionNames {
		if name == s {
			return Disposition(d), true
		}
	}
	return 0, false
}

// Marker returns the output suffix for d, empty for clean and corrected
func (d Disposition) Marker() string {
	switch d {
	case Illegible:
		return "ILL"
	case Errored:
		return "ERR"
	case Ambiguous:
		return "AMB"
	}
	return ""
}

// Result is the outcome for one image
type Result struct {
	Decoded     decoder.Number
	Disposition Disposition
	// Account is the emitted number: the decoded reading, or the repair when Corrected
	Account    string
	Candidates []correct.Candidate
}

// Line renders the result on the output format
//
//	123456789
//	123456788 ERR
//	12345678? ILL
//	888888888 AMB [888886888, 888888880, 888888988]
func (r Result) Line() string {
	switch r.Disposition {
	case Clean, Corrected:
		return r.Account
	case Ambiguous:
		return r.Account + " " + r.Disposition.Marker() + " [" + strings.Join(correct.Strings(r.Candidates), ", ") + "]"
	default:
		return r.Account + " " + r.Disposition.Marker()
	}
}

// Classify settles decoded; it never fails
// the search only runs for readings with at most one unknown position, and an
// image the search cannot split yields no repairs
func Classify(img decoder.Image, decoded decoder.Number) Result {
	switch u := decoded.Unknowns(); {
	case u == 0:
		if ok, err := checksum.ValidNumber(decoded); err == nil && ok {
			return Resolve(decoded, true, nil)
		}
	case u > 1:
		return Resolve(decoded, false, nil)
	}
	cands, err := correct.Candidates(img, decoded)
	if err != nil {
		l := log()
		l.Debug().Err(err).Str("decoded", decoded.String()).Msg("no repairs searched")
		cands = nil
	}
	return Resolve(decoded, false, cands)
}

// ClassifyImage decodes img then classifies it; only a malformed image fails
func ClassifyImage(img decoder.Image) (Result, error) {
	n, err := decoder.Decode(img)
	if err != nil {
		return Result{}, err
	}
	return Classify(img, n), nil
}

// Resolve applies the disposition table to a reading, its checksum state and the
// repairs found for it; cands must already be sorted and unique
func Resolve(decoded decoder.Number, valid bool, cands []correct.Candidate) Result {
	r := Result{Decoded: decoded, Account: decoded.String()}
	unknown := decoded.Unknowns()
	switch {
	case unknown == 0 && valid:
		r.Disposition = Clean
	case unknown > 1:
		r.Disposition = Illegible
	case len(cands) == 1:
		r.Disposition = Corrected
		r.Account = cands[0].String()
		r.Candidates = cands
	case len(cands) > 1:
		r.Disposition = Ambiguous
		r.Candidates = cands
	case unknown == 1:
		r.Disposition = Illegible
	default:
		r.Disposition = Errored
	}
	return r
}
