package valuespace

import "math/big"

// Count is the size of a value set: a non-negative integer or infinite.
// The zero Count is zero.
type Count struct {
	n        *big.Int
	infinite bool
}

// Infinite is the count of an infinite set.
var Infinite = Count{infinite: true}

// Finite returns a finite count of n. The argument is copied.
func Finite(n *big.Int) Count {
	if n == nil || n.Sign() <= 0 {
		return Count{}
	}
	return Count{n: new(big.Int).Set(n)}
}

// CountOf returns a finite count of n.
func CountOf(n int64) Count {
	if n <= 0 {
		return Count{}
	}
	return Count{n: big.NewInt(n)}
}

// IsInfinite reports whether c counts an infinite set.
func (c Count) IsInfinite() bool {
	return c.infinite
}

// IsZero reports whether c counts the empty set.
func (c Count) IsZero() bool {
	return !c.infinite && (c.n == nil || c.n.Sign() == 0)
}

// Int returns a copy of the finite count, or nil when infinite.
func (c Count) Int() *big.Int {
	if c.infinite {
		return nil
	}
	if c.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.n)
}

// Int64 returns the count when it is finite and fits in an int64.
func (c Count) Int64() (int64, bool) {
	if c.infinite {
		return 0, false
	}
	if c.n == nil {
		return 0, true
	}
	if !c.n.IsInt64() {
		return 0, false
	}
	return c.n.Int64(), true
}

// Add returns c + o.
func (c Count) Add(o Count) Count {
	if c.infinite || o.infinite {
		return Infinite
	}
	sum := c.Int()
	return Finite(sum.Add(sum, o.Int()))
}

// Cmp compares two counts; infinite is larger than every finite count.
func (c Count) Cmp(o Count) int {
	switch {
	case c.infinite && o.infinite:
		return 0
	case c.infinite:
		return 1
	case o.infinite:
		return -1
	}
	return c.Int().Cmp(o.Int())
}

// String renders the count in decimal, or "infinite".
func (c Count) String() string {
	if c.infinite {
		return "infinite"
	}
	return c.Int().String()
}
