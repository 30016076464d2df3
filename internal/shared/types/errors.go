package types

import (
	"errors"
	"fmt"
)

var (
	ErrAuthentication        = errors.New("unable to resolve AWS credentials")
	ErrAPI                   = errors.New("AWS API call failed")
	ErrMalformedARN          = errors.New("malformed ARN")
	ErrIO                    = errors.New("unable to write report")
	ErrUnsupportedReportType = errors.New("unsupported report type")
)

// MalformedARNError indica um ARN com menos de 4 segmentos separados por ':'.
type MalformedARNError struct {
	ARN string
}

func (e *MalformedARNError) Error() string {
	return fmt.Sprintf("%s: %q has fewer than 4 colon-delimited segments", ErrMalformedARN, e.ARN)
}

func (e *MalformedARNError) Unwrap() error {
	return ErrMalformedARN
}
