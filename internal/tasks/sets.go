package tasks

import "github.com/born-ml/numtasks/tensor"

// CommonValues returns the sorted values present in both a and b.
func CommonValues[T tensor.Numeric, B tensor.Backend](a, b *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.Intersect1D(a, b)
}

// UniqueValues returns the sorted distinct values of a.
func UniqueValues[T tensor.Numeric, B tensor.Backend](a *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.Unique(a)
}

// SetDifference returns the sorted values of a that are not in b.
func SetDifference[T tensor.Numeric, B tensor.Backend](a, b *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.SetDiff1D(a, b)
}

// SetExclusiveOr returns the sorted values that are in only one of a and b.
func SetExclusiveOr[T tensor.Numeric, B tensor.Backend](a, b *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.SetXor1D(a, b)
}

// UnionValues returns the sorted values present in a or b.
func UnionValues[T tensor.Numeric, B tensor.Backend](a, b *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.Union1D(a, b)
}

// Membership reports, for every element of a, whether it occurs in b.
func Membership[T tensor.Numeric, B tensor.Backend](a, b *tensor.Tensor[T, B]) *tensor.Tensor[bool, B] {
	return tensor.In1D(a, b)
}
