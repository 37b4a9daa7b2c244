// Package floater formats numbers as decimal text, for [math/big] values and
// float64 values alike.
//
// Two representations are provided. [AppendFloat] renders the shortest text
// that round-trips to the same float64, always including a fractional part
// (or an exponent), e.g. "3.0", "2.5" or "1e+16". [AppendRat] renders the
// exact decimal expansion of a [math/big.Rat], without any loss of precision,
// given the expansion terminates.
package floater
