package filter

// Each divisibility predicate reports whether v is a multiple of its
// divisor, including v == divisor itself and v == 0.

// DivisibleBy2 reports whether v is even.
func DivisibleBy2(v uint64) bool { return v&1 == 0 }

// DivisibleBy3 reports whether v is a multiple of 3.
func DivisibleBy3(v uint64) bool { return v%3 == 0 }

// DivisibleBy5 reports whether the last decimal digit of v is 0 or 5.
func DivisibleBy5(v uint64) bool { return v%10 == 0 || v%10 == 5 }

// DivisibleBy7 reports whether v is a multiple of 7.
func DivisibleBy7(v uint64) bool { return v%7 == 0 }

// DivisibleBy11 reports whether v is a multiple of 11.
func DivisibleBy11(v uint64) bool { return v%11 == 0 }

// DivisibleBy13 reports whether v is a multiple of 13.
func DivisibleBy13(v uint64) bool { return v%13 == 0 }

// DivisibleBy17 reports whether v is a multiple of 17.
func DivisibleBy17(v uint64) bool { return v%17 == 0 }

// DivisibleBy19 reports whether v is a multiple of 19.
func DivisibleBy19(v uint64) bool { return v%19 == 0 }

// Filter is one link of a divisibility chain.
type Filter struct {
	Divisor uint64
	Test    func(uint64) bool
}

// Standard is the chain applied below the large-number threshold.
var Standard = []Filter{
	{2, DivisibleBy2},
	{3, DivisibleBy3},
	{5, DivisibleBy5},
	{7, DivisibleBy7},
	{11, DivisibleBy11},
	{13, DivisibleBy13},
}

// Large extends Standard with 17 and 19.
var Large = append(append([]Filter(nil), Standard...),
	Filter{17, DivisibleBy17},
	Filter{19, DivisibleBy19},
)

// Passes reports whether v survives every filter in chain. A value equal to
// one of the divisors passes, since its only factor in the chain is itself.
func Passes(chain []Filter, v uint64) bool {
	for _, f := range chain {
		if v == f.Divisor {
			return true
		}
		if f.Test(v) {
			return false
		}
	}
	return true
}

// PossiblyPrime reports false when v is even or divisible by 3, 5, 7, 11 or
// 13 (other than being that prime). Values below 2 are never prime.
func PossiblyPrime(v uint64) bool {
	return v >= 2 && Passes(Standard, v)
}

// PossiblyPrimeLarge is PossiblyPrime extended with 17 and 19.
func PossiblyPrimeLarge(v uint64) bool {
	return v >= 2 && Passes(Large, v)
}
