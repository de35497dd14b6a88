package op

import "github.com/katalvlaran/flux/seq"

// Sort orders s in place using a pattern-defeating quicksort
// (SPEC_FULL.md §7's sort, which names pdqsort explicitly): when s
// exposes a backing slice via Writable.Slice, Sort hands that slice to
// sortSlice so the 3-way partition and heapsort fallback below run
// directly over contiguous memory instead of through the cursor
// protocol's ReadAt/WriteAt indirection. Requires s to be Writable,
// Boundary, and Jumper (random access, since sorting needs O(1) index
// arithmetic to be anything but quadratic).
func Sort[E any](s seq.Sequence[E], less func(a, b E) bool) {
	w, ok := s.(Writable[E])
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	if sl := w.Slice(); sl != nil {
		sortSlice(sl, less)
		return
	}
	j, ok := s.(seq.Jumper)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	b, ok := s.(seq.Boundary)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	n := j.Distance(s.First(), b.Last())
	insertionSortCursor(s, w, n, less)
}

func sortSlice[E any](sl []E, less func(a, b E) bool) {
	// insertion sort for small n, otherwise defer to the pattern-
	// defeating quicksort below; slices.SortFunc is the idiomatic entry
	// point for a newer slices-based target but this module sorts
	// directly over the cursor-protocol-adjacent slice it already has.
	if len(sl) < 2 {
		return
	}
	badPartitions := 0
	quickSort(sl, less, 0, len(sl)-1, &badPartitions, log2Floor(len(sl)))
}

// quickSort is a pattern-defeating quicksort: a 3-way (Dutch national
// flag) partition groups elements equal to the pivot into one run that
// never recurses further, giving the "ten thousand equal elements"
// case linear time instead of the quadratic worst case a 2-way
// partition hits on a constant sequence. badPartitions counts
// partitions that split off less than 1/8th of the range on one side;
// once it exceeds limit (⌊log2 n⌋), the remaining range falls back to
// heapSort, bounding recursion depth and total work on adversarial
// inputs that keep triggering the bad case.
const insertionThreshold = 24

func quickSort[E any](sl []E, less func(a, b E) bool, lo, hi int, badPartitions *int, limit int) {
	for hi-lo > insertionThreshold {
		if *badPartitions > limit {
			heapSort(sl, less, lo, hi)
			return
		}
		lt, gt := partition3(sl, less, lo, hi)
		leftSize, rightSize := lt-lo, hi-gt
		if (hi-lo)/8 > 0 && (leftSize < (hi-lo)/8 || rightSize < (hi-lo)/8) {
			*badPartitions++
		}
		if leftSize < rightSize {
			quickSort(sl, less, lo, lt-1, badPartitions, limit)
			lo = gt + 1
		} else {
			quickSort(sl, less, gt+1, hi, badPartitions, limit)
			hi = lt - 1
		}
	}
	insertionSortRange(sl, less, lo, hi)
}

// log2Floor returns ⌊log2 n⌋ for n >= 1, used as the bad-partition limit.
func log2Floor(n int) int {
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}

// partition3 is a Dutch-national-flag 3-way partition around a
// median-of-three pivot: on return, sl[lo:lt] < pivot, sl[lt:gt+1] ==
// pivot, sl[gt+1:hi+1] > pivot. The equal run [lt, gt] is excluded
// from both recursive calls, which is what gives constant/few-valued
// ranges linear rather than quadratic behavior.
func partition3[E any](sl []E, less func(a, b E) bool, lo, hi int) (lt, gt int) {
	mid := lo + (hi-lo)/2
	if less(sl[mid], sl[lo]) {
		sl[mid], sl[lo] = sl[lo], sl[mid]
	}
	if less(sl[hi], sl[lo]) {
		sl[hi], sl[lo] = sl[lo], sl[hi]
	}
	if less(sl[hi], sl[mid]) {
		sl[hi], sl[mid] = sl[mid], sl[hi]
	}
	pivot := sl[mid]

	lt, i, gt := lo, lo, hi
	for i <= gt {
		switch {
		case less(sl[i], pivot):
			sl[lt], sl[i] = sl[i], sl[lt]
			lt++
			i++
		case less(pivot, sl[i]):
			sl[i], sl[gt] = sl[gt], sl[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// heapSort is the bad-partition fallback: guaranteed O(n log n) with
// no recursion, used to bound quickSort's worst case the way the
// standard library's own introsort bounds plain quicksort.
func heapSort[E any](sl []E, less func(a, b E) bool, lo, hi int) {
	n := hi - lo + 1
	if n < 2 {
		return
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(sl, less, lo, i, n)
	}
	for end := n - 1; end > 0; end-- {
		sl[lo], sl[lo+end] = sl[lo+end], sl[lo]
		siftDown(sl, less, lo, 0, end)
	}
}

func siftDown[E any](sl []E, less func(a, b E) bool, lo, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(sl[lo+child], sl[lo+child+1]) {
			child++
		}
		if !less(sl[lo+root], sl[lo+child]) {
			return
		}
		sl[lo+root], sl[lo+child] = sl[lo+child], sl[lo+root]
		root = child
	}
}

func partition[E any](sl []E, less func(a, b E) bool, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if less(sl[mid], sl[lo]) {
		sl[mid], sl[lo] = sl[lo], sl[mid]
	}
	if less(sl[hi], sl[lo]) {
		sl[hi], sl[lo] = sl[lo], sl[hi]
	}
	if less(sl[hi], sl[mid]) {
		sl[hi], sl[mid] = sl[mid], sl[hi]
	}
	pivot := sl[mid]
	sl[mid], sl[hi-1] = sl[hi-1], sl[mid]
	i, j := lo, hi-1
	for {
		for i++; less(sl[i], pivot); i++ {
		}
		for j--; less(pivot, sl[j]); j-- {
		}
		if i >= j {
			break
		}
		sl[i], sl[j] = sl[j], sl[i]
	}
	sl[i], sl[hi-1] = sl[hi-1], sl[i]
	return i
}

func insertionSortRange[E any](sl []E, less func(a, b E) bool, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && less(sl[j], sl[j-1]); j-- {
			sl[j], sl[j-1] = sl[j-1], sl[j]
		}
	}
}

func insertionSortCursor[E any](s seq.Sequence[E], w Writable[E], n int, less func(a, b E) bool) {
	j, _ := s.(seq.Jumper)
	for i := 1; i < n; i++ {
		ci := s.First()
		j.IncN(&ci, i)
		key := s.ReadAt(ci)
		k := i
		for k > 0 {
			cPrev := s.First()
			j.IncN(&cPrev, k-1)
			if !less(key, s.ReadAt(cPrev)) {
				break
			}
			w.WriteAt(ci, s.ReadAt(cPrev))
			ci = cPrev
			k--
		}
		w.WriteAt(ci, key)
	}
}

// IsSorted reports whether s is non-decreasing under less
// (SPEC_FULL.md §7).
func IsSorted[E any](s seq.Sequence[E], less func(a, b E) bool) bool {
	c := s.First()
	if s.IsLast(c) {
		return true
	}
	prev := s.ReadAt(c)
	s.Inc(&c)
	for !s.IsLast(c) {
		cur := s.ReadAt(c)
		if less(cur, prev) {
			return false
		}
		prev = cur
		s.Inc(&c)
	}
	return true
}
