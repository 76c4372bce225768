package minbpe

import (
	"fmt"

	"github.com/euforicio/minbpe-go/tokenizer"
)

// Tokenizer bundles a trained merge table with its expanded vocabulary and
// the codec built over them. Once constructed it is read-only and freely
// shareable across goroutines.
type Tokenizer struct {
	merges *tokenizer.MergeTable
	vocab  tokenizer.Vocab
	core   *tokenizer.Core
}

// New builds a Tokenizer from an existing merge table, expanding its
// vocabulary bottom-up. It fails only when the table is internally
// inconsistent.
func New(table *tokenizer.MergeTable) (*Tokenizer, error) {
	vocab, err := tokenizer.BuildVocab(table)
	if err != nil {
		return nil, fmt.Errorf("build vocabulary: %w", err)
	}
	core, err := tokenizer.NewCoreBPE(table, vocab)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{merges: table, vocab: vocab, core: core}, nil
}

// Train learns a merge table from data until the vocabulary reaches
// vocabSize: 256 byte literals plus vocabSize-256 merges. Training stops
// early once no adjacent pair repeats; the resulting table is simply
// smaller. A vocabSize at or below 256, or empty data, trains no merges.
func Train(data []byte, vocabSize int) (*Tokenizer, error) {
	return New(tokenizer.TrainMerges(data, vocabSize-tokenizer.FirstMergeID))
}

// Load rebuilds a Tokenizer from a model file written by Save.
func Load(path string) (*Tokenizer, error) {
	table, err := tokenizer.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return New(table)
}

// Save writes the merge table to path in the order-preserving model format.
func (t *Tokenizer) Save(path string) error {
	return tokenizer.SaveModel(path, t.merges)
}

// Encode converts text into token ids by applying the learned merges in
// training order. Bytes never seen during training pass through as their
// literal ids.
func (t *Tokenizer) Encode(text []byte) []int { return t.core.Encode(text) }

// EncodeString is Encode over the UTF-8 bytes of s.
func (t *Tokenizer) EncodeString(s string) []int { return t.core.Encode([]byte(s)) }

// Decode expands ids back into the exact byte sequence they encode. It
// fails when an id has no vocabulary entry, which indicates ids produced
// with a different merge table.
func (t *Tokenizer) Decode(ids []int) ([]byte, error) { return t.core.DecodeBytes(ids) }

// DecodeString is Decode returning the bytes as a string.
func (t *Tokenizer) DecodeString(ids []int) (string, error) { return t.core.DecodeUTF8(ids) }

// Merges returns the learned merge table.
func (t *Tokenizer) Merges() *tokenizer.MergeTable { return t.merges }

// Vocab returns the id to byte-sequence mapping.
func (t *Tokenizer) Vocab() tokenizer.Vocab { return t.vocab }

// VocabSize returns the number of distinct ids the tokenizer can emit.
func (t *Tokenizer) VocabSize() int { return t.merges.VocabSize() }
