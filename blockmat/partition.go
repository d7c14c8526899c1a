// SPDX-License-Identifier: MIT

package blockmat

// Partition splits data into contiguous Groups of the target size; every
// group is full-sized except possibly the last, whose length is the
// remainder. Group.Index equals the group's position in the returned
// slice, and concatenating all groups reproduces data in order. Groups
// alias the input slice — this is pure chunking, no copying.
//
// Returns ErrBlockSize when size ≤ 0. An empty dataset partitions into an
// empty sequence.
//
// Complexity: O(ceil(n/size)) time, O(ceil(n/size)) memory.
func Partition[T any](data []T, size int) ([]Group[T], error) {
	if size <= 0 {
		return nil, ErrBlockSize
	}

	groups := make([]Group[T], 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		groups = append(groups, Group[T]{Index: len(groups), Points: data[start:end]})
	}

	return groups, nil
}
