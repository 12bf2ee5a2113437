package editdist

// DamerauLevenshtein returns the unrestricted Damerau–Levenshtein distance
// between the code points of a and b: the minimum number of insertions,
// deletions, substitutions and adjacent transpositions, where transposed
// substrings may be edited again.
//
// Unlike OSA this is a true metric — the triangle inequality holds — and it
// is never larger: DamerauLevenshtein("ca", "abc") is 2 (swap to "ac", then
// insert 'b' between the swapped tokens) where OSA reports 3.
//
// Algorithm outline (Lowrance–Wagner):
//  1. Trim the common prefix and suffix; they never change the distance.
//  2. Build a (N+2)×(M+2) table with an +∞ sentinel border so the
//     transposition lookback never needs bounds checks.
//  3. Track, per token value, the last row where it occurred in a, and
//     within each row the last column matched in b. A transposition then
//     bridges from that earlier cell, paying for every token skipped over
//     in between.
//
// Complexity: O(N·M) time, O(N·M) memory plus an O(alphabet) map.
func DamerauLevenshtein(a, b string) int {
	if a == b {
		return 0
	}

	return DamerauLevenshteinOf([]rune(a), []rune(b))
}

// DamerauLevenshteinOf is DamerauLevenshtein over arbitrary comparable
// token sequences.
func DamerauLevenshteinOf[T comparable](a, b []T) int {
	// 1. Shared affixes only shift the table's equal diagonal; drop them.
	a, b = trimCommonAffix(a, b)
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// 2. Addressing: cell (i,j) covers prefixes a[:i-1], b[:j-1], with an
	//    extra sentinel row/column at index 0. inf exceeds any reachable
	//    distance, so sentinel cells never win the min.
	width := lb + 2
	d := make([]int, (la+2)*width)
	inf := la + lb
	d[0] = inf
	for i := 0; i <= la; i++ {
		d[(i+1)*width] = inf
		d[(i+1)*width+1] = i
	}
	for j := 0; j <= lb; j++ {
		d[j+1] = inf
		d[width+j+1] = j
	}

	// lastRow[t] is the most recent row index whose a-token equals t.
	lastRow := make(map[T]int, la)

	for i := 1; i <= la; i++ {
		// lastCol is the most recent column in THIS row where the tokens
		// matched; together with lastRow it pins the transposition bridge.
		lastCol := 0
		for j := 1; j <= lb; j++ {
			row := lastRow[b[j-1]] // zero when b[j-1] never occurred in a

			ins := d[i*width+j+1] + 1
			del := d[(i+1)*width+j] + 1
			// Bridge from the cell before the matched pair, paying one for
			// the swap and one per token skipped on either side.
			tr := d[row*width+lastCol] + (i - row - 1) + 1 + (j - lastCol - 1)
			sub := d[i*width+j] + 1
			if a[i-1] == b[j-1] {
				lastCol = j
				sub--
			}

			d[(i+1)*width+j+1] = min(sub, ins, del, tr)
		}
		lastRow[a[i-1]] = i
	}

	return d[(la+1)*width+lb+1]
}

// NormalizedDamerauLevenshtein rescales DamerauLevenshtein into [0,1]:
// 1 - distance/max(N,M) over code-point lengths, with two empty strings
// scoring 1.0.
func NormalizedDamerauLevenshtein(a, b string) float64 {
	if a == b {
		return 1
	}

	return NormalizedDamerauLevenshteinOf([]rune(a), []rune(b))
}

// NormalizedDamerauLevenshteinOf is NormalizedDamerauLevenshtein over token
// sequences.
func NormalizedDamerauLevenshteinOf[T comparable](a, b []T) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	return 1 - float64(DamerauLevenshteinOf(a, b))/float64(max(len(a), len(b)))
}

// trimCommonAffix strips the longest shared prefix and suffix from both
// sequences. Safe for every metric in this package: an optimal edit script
// never touches tokens that already agree at the same offset.
func trimCommonAffix[T comparable](a, b []T) ([]T, []T) {
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}

	return a, b
}
