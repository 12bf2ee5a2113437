package editdist

import "fmt"

// DistanceOf computes the minimum total cost of transforming sequence a into
// sequence b under the cost policy in opts.
//
// Contract: the result is d[len(a)][len(b)] of the table
//
//	d[0][j] = j·InsertCost
//	d[i][0] = i·DeleteCost
//	d[i][j] = min( d[i-1][j]   + DeleteCost,
//	               d[i][j-1]   + InsertCost,
//	               d[i-1][j-1] + (0 if a[i-1]==b[j-1] else SubstituteCost) )
//
// and, when opts.Transpositions is set and a[i-1]==b[j-2] && a[i-2]==b[j-1],
// additionally min'ed with d[i-2][j-2] + TransposeCost. That extra step is
// the optimal-string-alignment rule: a transposed pair is consumed whole and
// cannot overlap a later edit.
//
// Edge cases: an empty a costs len(b)·InsertCost, an empty b costs
// len(a)·DeleteCost, two empty sequences cost 0. The function is total —
// the only error is ErrNegativeCost for an invalid cost policy.
//
// Complexity: O(N·M) time, O(min(N,M)) memory (two rolling rows, or three
// when the transposition lookback is enabled).
func DistanceOf[T comparable](a, b []T, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, fmt.Errorf("%w: insert=%d delete=%d substitute=%d transpose=%d",
			ErrNegativeCost, opts.InsertCost, opts.DeleteCost, opts.SubstituteCost, opts.TransposeCost)
	}

	return distanceOf(a, b, opts), nil
}

// Distance is DistanceOf over the code points of two strings.
func Distance(a, b string, opts Options) (int, error) {
	return DistanceOf([]rune(a), []rune(b), opts)
}

// distanceOf runs the kernel recurrence. Callers validate opts first.
func distanceOf[T comparable](a, b []T, o Options) int {
	// 1. Keep the longer sequence on the outer axis so the rolling rows stay
	//    at O(min(N,M)). Swapping the operands swaps the roles of insertion
	//    and deletion, so those two costs swap with them; the transposition
	//    condition is symmetric and needs no adjustment.
	if len(b) > len(a) {
		a, b = b, a
		o.InsertCost, o.DeleteCost = o.DeleteCost, o.InsertCost
	}
	la, lb := len(a), len(b)

	// 2. With b empty the only edit script is deleting all of a.
	if lb == 0 {
		return la * o.DeleteCost
	}

	// 3. Rolling storage: prev is row i-1, curr is row i, prev2 is row i-2
	//    and exists only for the transposition lookback.
	var prev2 []int
	if o.Transpositions {
		prev2 = make([]int, lb+1)
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	// 4. Base row: the empty prefix of a turns into b[:j] by j insertions.
	for j := 1; j <= lb; j++ {
		prev[j] = j * o.InsertCost
	}

	// 5. Fill row by row.
	for i := 1; i <= la; i++ {
		// Base column: a[:i] turns into the empty prefix by i deletions.
		curr[0] = i * o.DeleteCost
		for j := 1; j <= lb; j++ {
			best := prev[j] + o.DeleteCost // drop a[i-1]
			if ins := curr[j-1] + o.InsertCost; ins < best {
				best = ins // emit b[j-1]
			}
			sub := prev[j-1] // keep or replace the current pair
			if a[i-1] != b[j-1] {
				sub += o.SubstituteCost
			}
			if sub < best {
				best = sub
			}
			// Adjacent swap: needs the row/column from two steps back.
			if o.Transpositions && i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := prev2[j-2] + o.TransposeCost; tr < best {
					best = tr
				}
			}
			curr[j] = best
		}
		// 6. Rotate: curr becomes prev, prev drops back to the lookback
		//    slot, and the stale lookback row is reused as the next curr.
		if o.Transpositions {
			prev2, prev, curr = prev, curr, prev2
		} else {
			prev, curr = curr, prev
		}
	}

	// 7. After the final rotation prev holds row len(a).
	return prev[lb]
}
