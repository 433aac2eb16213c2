package internal

import (
	"iter"
	"maps"
	"slices"
)

// MergeDefines combines define sequences into one, in key order. When a
// key repeats, the last sequence to define it wins.
func MergeDefines(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	merged := map[string]string{}
	for _, seq := range seqs {
		maps.Insert(merged, seq)
	}

	return func(yield func(key, value string) bool) {
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			if !yield(key, merged[key]) {
				return
			}
		}
	}
}
