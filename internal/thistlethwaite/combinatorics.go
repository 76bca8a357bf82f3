package thistlethwaite

// binomialTable[n][k] = C(n, k) for 0 <= n, k <= 12, precomputed once via
// Pascal's triangle. 12 covers the largest combination this package ranks
// (choosing 4 edge positions out of 12).
var binomialTable [13][13]uint32

func init() {
	for n := 0; n <= 12; n++ {
		binomialTable[n][0] = 1
		for k := 1; k <= n; k++ {
			binomialTable[n][k] = binomialTable[n-1][k-1] + binomialTable[n-1][k]
		}
	}
}

func binomial(n, k int) uint32 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return binomialTable[n][k]
}

// rankCombination computes the combinatorial index of the k-subset
// `positions` (strictly ascending, values in [0, n)) among all C(n, k)
// subsets of an n-element set, using the standard combinatorial number
// system: for each chosen position, count how many smaller unchosen slots
// it skips over and weight that by the number of ways to fill the
// remaining choices.
func rankCombination(positions []int, n, k int) uint32 {
	var rank uint32
	prev := -1
	for i := 0; i < k; i++ {
		for j := prev + 1; j < positions[i]; j++ {
			rank += binomial(n-j-1, k-i-1)
		}
		prev = positions[i]
	}
	return rank
}
