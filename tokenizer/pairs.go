package tokenizer

// Pair is an ordered pair of adjacent symbol ids.
type Pair struct {
	Left, Right int
}

// Less orders pairs lexicographically by (Left, Right). This is the
// deterministic tie-break used when two pairs share the same frequency
// during training, so identical corpora always learn identical tables.
func (p Pair) Less(q Pair) bool {
	return p.Left < q.Left || (p.Left == q.Left && p.Right < q.Right)
}

// CountPairs returns the number of occurrences of every adjacent pair in
// ids. Overlapping occurrences are counted at each position: a run of k
// equal symbols contributes k-1 pairs. Streams of length 0 or 1 yield an
// empty count.
func CountPairs(ids []int) map[Pair]int {
	counts := make(map[Pair]int)
	for i := 0; i+1 < len(ids); i++ {
		counts[Pair{ids[i], ids[i+1]}]++
	}
	return counts
}

// replacePair rewrites ids left to right, replacing every non-overlapping
// occurrence of pair with newID. A replacement at position i consumes i and
// i+1 and scanning resumes at i+2, so a run of the same symbol merges
// pairwise without re-merging ids produced in the same pass. The rewrite
// compacts in place; the returned slice aliases ids.
func replacePair(ids []int, pair Pair, newID int) []int {
	w := 0
	for i := 0; i < len(ids); {
		if i+1 < len(ids) && ids[i] == pair.Left && ids[i+1] == pair.Right {
			ids[w] = newID
			i += 2
		} else {
			ids[w] = ids[i]
			i++
		}
		w++
	}
	return ids[:w]
}

// bytesToIDs seeds a symbol stream from raw bytes, one literal id per byte.
func bytesToIDs(data []byte) []int {
	ids := make([]int, len(data))
	for i, b := range data {
		ids[i] = int(b)
	}
	return ids
}
