// Package candidate builds the lazy candidate-phrase generator: cartesian
// expansion across per-position word groups, permutations, plausible
// row/column reorderings, and insertion of unknown words at chosen
// positions. Every producer here is a pull iterator — a closure of type
// func() (T, bool) — so composing them never materializes an intermediate
// list.
package candidate

// Seq is a pull iterator: each call returns the next element and true, or
// a zero value and false once exhausted.
type Seq[T any] func() (T, bool)

// FlatMap chains an outer sequence with a per-element inner sequence,
// yielding every inner element in turn before advancing the outer one.
// This is how Iterate composes Reorder/Combine/Extend without ever
// holding more than one inner sequence's state at a time.
func FlatMap[A, B any](outer Seq[A], inner func(A) Seq[B]) Seq[B] {
	var cur Seq[B]
	return func() (B, bool) {
		for {
			if cur != nil {
				if v, ok := cur(); ok {
					return v, true
				}
				cur = nil
			}
			a, ok := outer()
			if !ok {
				var zero B
				return zero, false
			}
			cur = inner(a)
		}
	}
}

// Combine yields the cartesian product over groups, in lexicographic order
// over group indices with the first group varying slowest.
func Combine[T any](groups [][]T) Seq[[]T] {
	n := len(groups)
	if n == 0 {
		done := false
		return func() ([]T, bool) {
			if done {
				var zero []T
				return zero, false
			}
			done = true
			return []T{}, true
		}
	}
	for _, g := range groups {
		if len(g) == 0 {
			return func() ([]T, bool) {
				var zero []T
				return zero, false
			}
		}
	}

	idx := make([]int, n)
	done := false
	return func() ([]T, bool) {
		if done {
			var zero []T
			return zero, false
		}
		out := make([]T, n)
		for i, g := range groups {
			out[i] = g[idx[i]]
		}
		for i := n - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(groups[i]) {
				break
			}
			idx[i] = 0
			if i == 0 {
				done = true
			}
		}
		return out, true
	}
}

// Permute yields every permutation of seq in canonical "remove-i, recurse"
// order, so the input order is the first yield.
func Permute[T any](seq []T) Seq[[]T] {
	n := len(seq)
	if n == 0 {
		done := false
		return func() ([]T, bool) {
			if done {
				var zero []T
				return zero, false
			}
			done = true
			return []T{}, true
		}
	}

	i := 0
	removeAt := func(k int) []T {
		out := make([]T, 0, n-1)
		out = append(out, seq[:k]...)
		out = append(out, seq[k+1:]...)
		return out
	}
	var sub Seq[[]T]
	sub = Permute(removeAt(i))

	return func() ([]T, bool) {
		for {
			if i >= n {
				var zero []T
				return zero, false
			}
			if tail, ok := sub(); ok {
				out := make([]T, 0, n)
				out = append(out, seq[i])
				out = append(out, tail...)
				return out, true
			}
			i++
			if i < n {
				sub = Permute(removeAt(i))
			}
		}
	}
}

// Reorder yields the "plausible misreadings" family: for jump from 1 to
// len(seq), the sequence read by starting at each offset s in [0,jump) and
// stepping by jump. jump=1 reproduces the identity and is the first yield.
func Reorder[T any](seq []T) Seq[[]T] {
	n := len(seq)
	jump := 0
	return func() ([]T, bool) {
		jump++
		if jump > n {
			var zero []T
			return zero, false
		}
		out := make([]T, 0, n)
		for s := 0; s < jump; s++ {
			for m := 0; s+m*jump < n; m++ {
				out = append(out, seq[s+m*jump])
			}
		}
		return out, true
	}
}

// Extend inserts missing elements drawn from alphabet into prefix until the
// result has length targetLen. The positions available for insertion are
// drawn from openPositions; when there are more candidate positions than
// missing slots, every size-(targetLen-len(prefix)) subset of openPositions
// is tried, in lexicographic order of the positions' places in
// openPositions (ascending-position order when openPositions is sorted;
// openPositions is not sorted here), crossed with every alphabet
// assignment to the chosen positions in odometer order (rightmost position
// varies fastest). When len(prefix) already equals targetLen, prefix is
// yielded unchanged exactly once, regardless of openPositions.
func Extend[T any](prefix []T, alphabet []T, targetLen int, openPositions []int) Seq[[]T] {
	missing := targetLen - len(prefix)
	if missing <= 0 {
		done := false
		return func() ([]T, bool) {
			if done {
				var zero []T
				return zero, false
			}
			done = true
			out := make([]T, len(prefix))
			copy(out, prefix)
			return out, true
		}
	}

	positions := append([]int(nil), openPositions...)
	combos := combinations(positions, missing)
	if len(combos) == 0 || len(alphabet) == 0 {
		return func() ([]T, bool) {
			var zero []T
			return zero, false
		}
	}

	comboIdx := 0
	digits := make([]int, missing)

	return func() ([]T, bool) {
		if comboIdx >= len(combos) {
			var zero []T
			return zero, false
		}
		combo := combos[comboIdx]

		out := make([]T, targetLen)
		used := make(map[int]bool, missing)
		for i, pos := range combo {
			out[pos] = alphabet[digits[i]]
			used[pos] = true
		}
		pi := 0
		for pos := 0; pos < targetLen; pos++ {
			if used[pos] {
				continue
			}
			out[pos] = prefix[pi]
			pi++
		}

		carry := true
		for i := missing - 1; i >= 0 && carry; i-- {
			digits[i]++
			if digits[i] < len(alphabet) {
				carry = false
			} else {
				digits[i] = 0
			}
		}
		if carry {
			comboIdx++
			digits = make([]int, missing)
		}
		return out, true
	}
}

// combinations returns every size-k subset of the (already position-sorted)
// input, as ascending-index slices, in lexicographic order.
func combinations(items []int, k int) [][]int {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		for i, x := range idx {
			combo[i] = items[x]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// Iterate is the top-level candidate stream: optionally reorders the
// per-position groups, expands the cartesian product across them, then
// extends each combination to targetLen by inserting fillAlphabet letters
// at openPositions.
func Iterate(groups [][]string, reorderFlag bool, fillAlphabet []string, targetLen int, openPositions []int) Seq[[]string] {
	extendOf := func(c []string) Seq[[]string] {
		return Extend(c, fillAlphabet, targetLen, openPositions)
	}
	if !reorderFlag {
		return FlatMap(Combine(groups), extendOf)
	}
	combineOf := func(r [][]string) Seq[[]string] {
		return Combine(r)
	}
	stage1 := FlatMap(Reorder(groups), combineOf)
	return FlatMap(stage1, extendOf)
}
