package workload

import "errors"

var (
	// ErrUnknownVariant indicates the variant field is not dynamic, monotonic or static.
	ErrUnknownVariant = errors.New("workload: unknown variant")
	// ErrUnknownNumeric indicates the numeric field is not int or float.
	ErrUnknownNumeric = errors.New("workload: unknown numeric kind")
	// ErrNoLines indicates the workload has no lines.
	ErrNoLines = errors.New("workload: no lines")
	// ErrBadNumber indicates a line or query value does not parse as the numeric kind.
	ErrBadNumber = errors.New("workload: malformed number")
	// ErrMismatch indicates a container disagreed with the brute-force oracle.
	ErrMismatch = errors.New("workload: result mismatch")
)
