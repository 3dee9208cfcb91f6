package domain

import "fmt"

// InvalidTermsError reports loan terms the amortization generator refuses.
type InvalidTermsError struct {
	Field  string
	Reason string
}

func (e *InvalidTermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s %s", e.Field, e.Reason)
}

// InvalidParameterError reports a bad projection horizon, date range or limit.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %s %s", e.Field, e.Reason)
}
