package compactmmr

import "errors"

// The three synchronous, non-retryable error kinds the core can return.
var (
	ErrStartGreaterThanEnd  = errors.New("start index is greater than end index")
	ErrInvalidNumberOfPeaks = errors.New("invalid number of peaks for the given range")
	ErrMergeError           = errors.New("error merging mmrs")
)
