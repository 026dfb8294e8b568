package customerrors

import "errors"

var (
	ErrNoSnapshot    = errors.New("no screener data fetched yet. Trigger a refresh first")
	ErrUnknownMetric = errors.New("unknown performance metric")
)
