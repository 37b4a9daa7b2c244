// Package summator sums a stream of integers into two buckets, alternating by
// line, and reports each bucket divided by a fixed [Divisor].
//
// Values at even 0-based positions (0, 2, 4, ...) are summed into the "even"
// bucket, values at odd positions into the "odd" bucket. Arithmetic is
// arbitrary precision. See [Summarize] for the line-oriented entry point, and
// [Accumulator] for the underlying state.
package summator
