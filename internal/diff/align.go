package diff

// alignedPair is one output slot of a Needleman-Wunsch alignment: an index
// into the "before" and/or "after" sequence, or -1 for a gap on that side.
type alignedPair struct {
	BeforeIdx int
	AfterIdx  int
}

// alignSequences aligns two sequences with match score +1, mismatch 0, and
// gap score 0, reconstructing the path through a flat (m+1)x(n+1) DP table
// indexed as i*(n+1)+j. Ties are broken diagonal-first, then insertion
// (gap in before), then deletion (gap in after).
func alignSequences(before, after []string) []alignedPair {
	m, n := len(before), len(after)
	dp := make([]int, (m+1)*(n+1))
	at := func(i, j int) int { return i*(n+1) + j }

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			match := 0
			if before[i-1] == after[j-1] {
				match = 1
			}
			diag := dp[at(i-1, j-1)] + match
			up := dp[at(i-1, j)]
			left := dp[at(i, j-1)]
			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			dp[at(i, j)] = best
		}
	}

	var pairs []alignedPair
	i, j := m, n
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && before[i-1] == after[j-1] && dp[at(i, j)] == dp[at(i-1, j-1)]+1 {
			pairs = append(pairs, alignedPair{BeforeIdx: i - 1, AfterIdx: j - 1})
			i--
			j--
			continue
		}
		if j > 0 && (i == 0 || dp[at(i, j-1)] >= dp[at(i-1, j)]) {
			pairs = append(pairs, alignedPair{BeforeIdx: -1, AfterIdx: j - 1})
			j--
			continue
		}
		pairs = append(pairs, alignedPair{BeforeIdx: i - 1, AfterIdx: -1})
		i--
	}

	// Reverse into forward order.
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}
