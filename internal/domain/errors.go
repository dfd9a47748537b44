package domain

import "errors"

// FetchError wraps a quote API failure with the operation that issued it.
// It propagates exactly one level: the cache store returns it to the
// caller, and nothing above retries.
type FetchError struct {
	Op  string // e.g. "gainers_losers", "overview:AAPL"
	Err error
}

func (e *FetchError) Error() string {
	return "fetch " + e.Op + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps err for the given operation.
func NewFetchError(op string, err error) *FetchError {
	return &FetchError{Op: op, Err: err}
}

var (
	// ErrRateLimited is returned when the quote API reports its daily
	// request quota (25/day on the free tier) as exhausted.
	ErrRateLimited = errors.New("daily request quota exhausted")

	// ErrNoData is returned when the API answers successfully but the
	// payload carries no usable data for the requested symbol.
	ErrNoData = errors.New("no data available")
)

// IsRateLimited reports whether err stems from quota exhaustion.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
