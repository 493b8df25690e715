package steam

import "fmt"

// ErrorKind classifies scrape failures so callers can tell a network fault
// from a malformed payload. Both are recovered locally with safe defaults;
// the kind only decides what gets logged and whether a pass stops.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ScrapeError wraps a failure on one fetch or parse step.
type ScrapeError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) *ScrapeError {
	return &ScrapeError{Kind: KindTransport, Op: op, Err: err}
}

func parseErr(op string, err error) *ScrapeError {
	return &ScrapeError{Kind: KindParse, Op: op, Err: err}
}
