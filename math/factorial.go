package math

// zeroFrom is the smallest n whose int64 factorial wraps to zero:
// 66! carries 64 factors of two.
const zeroFrom = 66

// Decrement returns n minus m. The second argument is accepted and ignored.
func Decrement(n, _, m int64) int64 {
	return n - m
}

// Factorial calculates n! recursively. The caller guarantees n >= 0.
// Results wrap on overflow like any other int64 product.
func Factorial(n int64) int64 {
	if n < 2 {
		return 1
	}
	if n >= zeroFrom {
		return 0
	}

	prev := Decrement(n, n, 1)
	return n * Factorial(prev)
}
