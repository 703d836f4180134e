package utils

import (
	"golang.org/x/exp/constraints"
)

func Take[T any](l []T, i int) []T {
	if i < 0 {
		i = Max(0, len(l)-1+i)
	} else {
		i = Min(i, len(l))
	}
	return l[:i]
}

func Min[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result > b {
			result = b
		}
	}
	return result
}

func Max[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result < b {
			result = b
		}
	}
	return result
}

func IIf[T any](test bool, ifTrue, ifFalse T) T {
	if test {
		return ifTrue
	} else {
		return ifFalse
	}
}
