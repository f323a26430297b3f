// Package workload reads envelope workloads from YAML and runs them through
// one of the envelope containers. It backs the hull CLI.
//
// A workload names the container variant, the numeric kind, a batch of lines
// and a list of query positions:
//
//	variant: monotonic
//	numeric: int
//	strict: true
//	lines:
//	  - [-1, 10]
//	  - [0, 5]
//	  - [2, 0]
//	queries: [0, 3, 10]
//
// Numbers are kept as their YAML text until the numeric kind is known, so
// int workloads round-trip 64-bit values exactly.
package workload
