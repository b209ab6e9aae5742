package stream

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/alextanhongpin/lambda/types/sets"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrDuplicateKey is returned by ToMap when two elements map to the same key.
var ErrDuplicateKey = errors.New("stream: duplicate key")

// Collector is a terminal reduction of a sequence into an R.
type Collector[T, R any] func(iter.Seq[T]) R

// Collect runs the collector over the stream.
func Collect[T, R any](s *Stream[T], c Collector[T, R]) R {
	return c(s.seq)
}

// ToList collects into a slice. The result is never nil.
func ToList[T any]() Collector[T, []T] {
	return func(seq iter.Seq[T]) []T {
		return FromSeq(seq).Collect()
	}
}

// ToSet collects into a set, dropping duplicates.
func ToSet[T sets.OrderedComparable]() Collector[T, *sets.Set[T]] {
	return sets.Collect[T]
}

// ToMap collects into a map. Unlike a Collector it can fail: two elements with
// the same key yield ErrDuplicateKey.
func ToMap[T any, K comparable, V any](s *Stream[T], key func(T) K, value func(T) V) (map[K]V, error) {
	res := make(map[K]V)
	for v := range s.seq {
		k := key(v)
		if _, ok := res[k]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		res[k] = value(v)
	}

	return res, nil
}

// ToMapMerge collects into a map, resolving key collisions with merge.
func ToMapMerge[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(old, new V) V) Collector[T, map[K]V] {
	return func(seq iter.Seq[T]) map[K]V {
		res := make(map[K]V)
		for v := range seq {
			k := key(v)
			if old, ok := res[k]; ok {
				res[k] = merge(old, value(v))
				continue
			}
			res[k] = value(v)
		}

		return res
	}
}

// GroupingBy groups the elements by key. Each group keeps encounter order.
func GroupingBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T] {
	return GroupingByWith(key, ToList[T]())
}

// GroupingByWith groups the elements by key and reduces each group with
// downstream.
func GroupingByWith[T any, K comparable, R any](key func(T) K, downstream Collector[T, R]) Collector[T, map[K]R] {
	return func(seq iter.Seq[T]) map[K]R {
		groups := make(map[K][]T)
		for v := range seq {
			k := key(v)
			groups[k] = append(groups[k], v)
		}

		res := make(map[K]R, len(groups))
		for k, vs := range groups {
			res[k] = downstream(From(vs).seq)
		}

		return res
	}
}

// GroupingByOrdered groups the elements by key, keeping the keys in the order
// they were first seen.
func GroupingByOrdered[T any, K comparable](key func(T) K) Collector[T, *orderedmap.OrderedMap[K, []T]] {
	return func(seq iter.Seq[T]) *orderedmap.OrderedMap[K, []T] {
		res := orderedmap.New[K, []T]()
		for v := range seq {
			k := key(v)
			vs, _ := res.Get(k)
			res.Set(k, append(vs, v))
		}

		return res
	}
}

// PartitioningBy splits the elements by pred. Both keys are always present.
func PartitioningBy[T any](pred func(T) bool) Collector[T, map[bool][]T] {
	return func(seq iter.Seq[T]) map[bool][]T {
		res := map[bool][]T{
			false: {},
			true:  {},
		}
		for v := range seq {
			k := pred(v)
			res[k] = append(res[k], v)
		}

		return res
	}
}

func Counting[T any]() Collector[T, int] {
	return func(seq iter.Seq[T]) int {
		return FromSeq(seq).Count()
	}
}

// Joining concatenates the elements with sep.
func Joining(sep string) Collector[string, string] {
	return func(seq iter.Seq[string]) string {
		return strings.Join(FromSeq(seq).Collect(), sep)
	}
}

// Mapping adapts downstream to accept T by transforming each element first.
func Mapping[T, U, R any](fn func(T) U, downstream Collector[U, R]) Collector[T, R] {
	return func(seq iter.Seq[T]) R {
		return downstream(Map(FromSeq(seq), fn).seq)
	}
}

// AveragingInt averages the extracted values. It returns 0 when there are no
// elements.
func AveragingInt[T any](fn func(T) int) Collector[T, float64] {
	return func(seq iter.Seq[T]) float64 {
		avg, _ := Average(Map(FromSeq(seq), fn))
		return avg
	}
}

func SummingInt[T any](fn func(T) int) Collector[T, int] {
	return func(seq iter.Seq[T]) int {
		return Sum(Map(FromSeq(seq), fn))
	}
}
