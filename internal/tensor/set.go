package tensor

import "slices"

// Set operations work on the flattened input and return sorted 1-D tensors,
// following numpy.unique, intersect1d, union1d, setdiff1d, setxor1d and in1d.
// They are computed on typed data rather than through the Backend because the
// result size depends on the values.

// Unique returns the sorted unique elements of t.
//
// Example:
//
//	x := tensor.Vector([]int64{10, 10, 20, 20, 30, 30}, backend)
//	tensor.Unique(x) // [10 20 30]
func Unique[T Numeric, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return Vector(uniqueSorted(t.Data()), t.backend)
}

// UniqueCounts returns the sorted unique elements of t and how often each occurs.
func UniqueCounts[T Numeric, B Backend](t *Tensor[T, B]) (*Tensor[T, B], *Tensor[int64, B]) {
	sorted := slices.Clone(t.Data())
	slices.Sort(sorted)

	values := make([]T, 0, len(sorted))
	counts := make([]int64, 0, len(sorted))
	for i, v := range sorted {
		if i > 0 && sameValue(v, sorted[i-1]) {
			counts[len(counts)-1]++
			continue
		}
		values = append(values, v)
		counts = append(counts, 1)
	}
	return Vector(values, t.backend), Vector(counts, t.backend)
}

// Intersect1D returns the sorted unique values present in both a and b.
//
// Example:
//
//	a := tensor.Vector([]int64{0, 10, 20, 40, 60}, backend)
//	b := tensor.Vector([]int64{10, 30, 40}, backend)
//	tensor.Intersect1D(a, b) // [10 40]
func Intersect1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	ua, ub := uniqueSorted(a.Data()), uniqueSorted(b.Data())
	out := make([]T, 0, min(len(ua), len(ub)))
	i, j := 0, 0
	for i < len(ua) && j < len(ub) {
		switch {
		case ua[i] < ub[j]:
			i++
		case ua[i] > ub[j]:
			j++
		default:
			out = append(out, ua[i])
			i++
			j++
		}
	}
	return Vector(out, a.backend)
}

// Union1D returns the sorted unique values present in either a or b.
func Union1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	all := append(slices.Clone(a.Data()), b.Data()...)
	return Vector(uniqueSorted(all), a.backend)
}

// SetDiff1D returns the sorted unique values in a that are not in b.
//
// Example:
//
//	a := tensor.Vector([]int64{0, 10, 20, 40, 60, 80}, backend)
//	b := tensor.Vector([]int64{10, 30, 40, 50, 70, 90}, backend)
//	tensor.SetDiff1D(a, b) // [0 20 60 80]
func SetDiff1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	ub := uniqueSorted(b.Data())
	out := make([]T, 0)
	for _, v := range uniqueSorted(a.Data()) {
		if _, found := slices.BinarySearch(ub, v); !found {
			out = append(out, v)
		}
	}
	return Vector(out, a.backend)
}

// SetXor1D returns the sorted unique values that are in exactly one of a and b.
func SetXor1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[T, B] {
	ua, ub := uniqueSorted(a.Data()), uniqueSorted(b.Data())
	out := make([]T, 0, len(ua)+len(ub))
	i, j := 0, 0
	for i < len(ua) || j < len(ub) {
		switch {
		case j == len(ub) || (i < len(ua) && ua[i] < ub[j]):
			out = append(out, ua[i])
			i++
		case i == len(ua) || ub[j] < ua[i]:
			out = append(out, ub[j])
			j++
		default:
			i++
			j++
		}
	}
	return Vector(out, a.backend)
}

// In1D tests whether each element of a (flattened) is present in b.
//
// Example:
//
//	a := tensor.Vector([]int64{0, 10, 20, 40, 60}, backend)
//	b := tensor.Vector([]int64{0, 40}, backend)
//	tensor.In1D(a, b) // [ True False False  True False]
func In1D[T Numeric, B Backend](a, b *Tensor[T, B]) *Tensor[bool, B] {
	ub := uniqueSorted(b.Data())
	src := a.Data()
	out := make([]bool, len(src))
	for i, v := range src {
		_, out[i] = slices.BinarySearch(ub, v)
	}
	return Vector(out, a.backend)
}

// uniqueSorted returns a sorted copy of data with duplicates removed.
// NaNs compare equal to each other, so at most one survives.
func uniqueSorted[T Numeric](data []T) []T {
	out := slices.Clone(data)
	slices.Sort(out)
	return slices.CompactFunc(out, sameValue[T])
}

// sameValue is == except that NaN equals NaN.
func sameValue[T Numeric](a, b T) bool {
	return a == b || (a != a && b != b)
}
