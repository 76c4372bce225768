package tokenizer

// FirstMergeID is the id assigned to the first learned merge. Ids below it
// are literal byte values.
const FirstMergeID = 256

// MergeTable is an insertion-ordered table of learned merges. The position
// of an entry is its rank: rank 0 was learned first and is applied first
// when encoding. The entry at rank r introduces id FirstMergeID+r, so ids
// are strictly increasing in insertion order.
//
// Insertion order is load-bearing for the encoder; the rank map exists only
// to make pair lookup O(1) and never replaces the ordered entry list.
type MergeTable struct {
	entries []Pair
	rank    map[Pair]int
}

// NewMergeTable returns an empty merge table.
func NewMergeTable() *MergeTable {
	return &MergeTable{rank: make(map[Pair]int)}
}

// add appends pair as the lowest-priority merge and returns the id it
// introduces. Callers must not add a pair twice; the trainer cannot
// (replacing every occurrence removes the pair from the stream for good)
// and the model loader rejects duplicates before calling add.
func (t *MergeTable) add(pair Pair) int {
	t.rank[pair] = len(t.entries)
	t.entries = append(t.entries, pair)
	return FirstMergeID + len(t.entries) - 1
}

// Rank returns the priority rank of pair. Lower rank means earlier learned
// and applied first when encoding. ok is false when the pair was never
// learned.
func (t *MergeTable) Rank(pair Pair) (int, bool) {
	r, ok := t.rank[pair]
	return r, ok
}

// ID returns the symbol id assigned to pair, if any.
func (t *MergeTable) ID(pair Pair) (int, bool) {
	r, ok := t.rank[pair]
	if !ok {
		return 0, false
	}
	return FirstMergeID + r, true
}

// At returns the pair at rank r. It panics when r is out of range, matching
// slice indexing.
func (t *MergeTable) At(r int) Pair { return t.entries[r] }

// Len returns the number of learned merges.
func (t *MergeTable) Len() int { return len(t.entries) }

// VocabSize returns the total number of ids the table spans: 256 byte
// literals plus one id per merge.
func (t *MergeTable) VocabSize() int { return FirstMergeID + len(t.entries) }

// Pairs returns the learned pairs in rank order. The slice is a copy.
func (t *MergeTable) Pairs() []Pair {
	out := make([]Pair, len(t.entries))
	copy(out, t.entries)
	return out
}
