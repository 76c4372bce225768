package tokenizer

// Public thin wrappers to keep package boundary small.

// Core is an alias exposing exported methods defined on coreBPE.
type Core = coreBPE

// NewCoreBPE creates a codec over a merge table and its expanded
// vocabulary. The table and vocabulary are treated as immutable; the
// returned Core is safe for concurrent use.
func NewCoreBPE(merges *MergeTable, vocab Vocab) (*Core, error) {
	return newCoreBPE(merges, vocab)
}
