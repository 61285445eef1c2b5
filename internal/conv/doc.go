// Package conv provides safe integer conversion and arithmetic utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// in capacity computations, which multiply element counts by strides in
// uintptr space and convert the results back to int.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
