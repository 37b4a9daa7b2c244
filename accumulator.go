package summator

import (
	"math/big"
)

// Divisor is applied to both sums, regardless of how many values were summed.
const Divisor = 10

type (
	// Accumulator models the running state, i.e. the two sums and the
	// alternator, which determines the bucket for the next value.
	//
	// The zero value is ready to use. Accumulator is not safe for concurrent
	// use.
	Accumulator struct {
		even  big.Int
		odd   big.Int
		lines int
		// oddTurn is the alternator, false (even) for the first value
		oddTurn bool
	}

	// Result is a snapshot of an Accumulator, see also Accumulator.Result.
	Result struct {
		// Even is the sum of values at 0-based positions 0, 2, 4, ...
		Even *big.Int
		// Odd is the sum of values at 0-based positions 1, 3, 5, ...
		Odd *big.Int
		// Lines is the number of values that were summed.
		Lines int
	}
)

// Add sums v into the bucket for the current position, then advances the
// position. A nil v is treated as zero, but still advances the position.
func (x *Accumulator) Add(v *big.Int) {
	if v != nil {
		if x.oddTurn {
			x.odd.Add(&x.odd, v)
		} else {
			x.even.Add(&x.even, v)
		}
	}
	x.advance()
}

// AddInt64 is a convenience variant of Add.
func (x *Accumulator) AddInt64(v int64) {
	var b big.Int
	x.Add(b.SetInt64(v))
}

// Lines returns the number of values added so far.
func (x *Accumulator) Lines() int {
	return x.lines
}

// OddTurn reports whether the next value will be summed into the odd bucket.
func (x *Accumulator) OddTurn() bool {
	return x.oddTurn
}

// Result returns a snapshot of the current state. The returned value does not
// share memory with the Accumulator.
func (x *Accumulator) Result() *Result {
	return &Result{
		Even:  new(big.Int).Set(&x.even),
		Odd:   new(big.Int).Set(&x.odd),
		Lines: x.lines,
	}
}

func (x *Accumulator) advance() {
	x.lines++
	x.oddTurn = !x.oddTurn
}
