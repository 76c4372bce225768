package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTable reports a merge table entry referencing an id that
	// no earlier entry (or byte literal) introduced.
	ErrMalformedTable = errors.New("malformed merge table")

	// ErrUnknownToken reports a token id with no vocabulary entry, which
	// indicates ids produced with a different merge table.
	ErrUnknownToken = errors.New("unknown token id")
)

// Vocab maps every symbol id in use to its fully expanded byte sequence.
// The index is the id: entries 0-255 hold their single literal byte and
// entry FirstMergeID+r holds the expansion of the merge at rank r.
type Vocab [][]byte

// BuildVocab expands table into a Vocab covering ids 0..255 plus every
// learned id. Expansion runs bottom-up in insertion order: each learned
// id's bytes are the concatenation of the bytes of the two ids it merged,
// which a well-formed table guarantees were resolved by an earlier rank.
// A forward or out-of-range reference means the table is corrupted and
// fails hard with ErrMalformedTable.
func BuildVocab(table *MergeTable) (Vocab, error) {
	vocab := make(Vocab, table.VocabSize())
	for b := 0; b < FirstMergeID; b++ {
		vocab[b] = []byte{byte(b)}
	}
	for r := 0; r < table.Len(); r++ {
		pair := table.At(r)
		id := FirstMergeID + r
		if pair.Left < 0 || pair.Left >= id || pair.Right < 0 || pair.Right >= id {
			return nil, fmt.Errorf("%w: rank %d merges (%d, %d) but only ids below %d exist at that point",
				ErrMalformedTable, r, pair.Left, pair.Right, id)
		}
		left, right := vocab[pair.Left], vocab[pair.Right]
		seq := make([]byte, 0, len(left)+len(right))
		seq = append(seq, left...)
		seq = append(seq, right...)
		vocab[id] = seq
	}
	return vocab, nil
}

// Bytes returns the byte sequence for id. ok is false for ids outside the
// vocabulary.
func (v Vocab) Bytes(id int) (b []byte, ok bool) {
	if id < 0 || id >= len(v) || v[id] == nil {
		return nil, false
	}
	return v[id], true
}
