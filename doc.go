// Package minbpe provides a pure Go implementation of byte-pair encoding:
// it learns a merge table from a raw byte corpus, encodes arbitrary text
// into token ids with the learned merges, and losslessly decodes ids back
// into the original bytes.
//
// The tokenizer is byte-level: ids 0-255 are byte literals and each learned
// merge introduces the next id starting at 256. A trained Tokenizer is
// immutable and safe for concurrent encode and decode calls.
package minbpe
