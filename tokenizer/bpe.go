package tokenizer

import "fmt"

type coreBPE struct {
	merges *MergeTable
	dec    tokenStore
}

func newCoreBPE(merges *MergeTable, vocab Vocab) (*coreBPE, error) {
	dec, err := newTokenStore(vocab)
	if err != nil {
		return nil, err
	}
	return &coreBPE{merges: merges, dec: dec}, nil
}

// Encode seeds a symbol stream from text, one literal id per byte, then
// repeatedly applies the earliest-learned merge whose pair is adjacent
// anywhere in the stream, replacing every non-overlapping occurrence in a
// single left-to-right pass. Applying merges in training order reproduces
// the segmentation training settled on. The loop terminates because each
// round strictly shortens the stream.
func (b *coreBPE) Encode(text []byte) []int {
	if len(text) == 0 {
		return nil
	}
	ids := bytesToIDs(text)
	for len(ids) > 1 {
		pair, ok := b.lowestRankPair(ids)
		if !ok {
			break
		}
		id, _ := b.merges.ID(pair)
		ids = replacePair(ids, pair, id)
	}
	return ids
}

// lowestRankPair scans ids for the adjacent pair with the lowest merge
// rank. ok is false when no adjacent pair is in the table, meaning the
// stream is fully merged.
func (b *coreBPE) lowestRankPair(ids []int) (Pair, bool) {
	var best Pair
	bestRank := -1
	for i := 0; i+1 < len(ids); i++ {
		p := Pair{ids[i], ids[i+1]}
		r, ok := b.merges.Rank(p)
		if !ok {
			continue
		}
		if bestRank == -1 || r < bestRank {
			best, bestRank = p, r
		}
	}
	return best, bestRank != -1
}

func (b *coreBPE) DecodeBytes(tokens []int) ([]byte, error) {
	var out []byte
	if err := b.DecodeBytesInto(&out, tokens); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeBytesInto appends the decoded bytes for the provided tokens
// into dst, avoiding intermediate slice allocations.
func (b *coreBPE) DecodeBytesInto(dst *[]byte, tokens []int) error {
	buf := *dst
	for _, t := range tokens {
		if !b.dec.AppendInto(&buf, t) {
			return fmt.Errorf("%w: %d", ErrUnknownToken, t)
		}
	}
	*dst = buf
	return nil
}

func (b *coreBPE) DecodeUTF8(tokens []int) (string, error) {
	bs, err := b.DecodeBytes(tokens)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// Close releases the decoder's token store.
func (b *coreBPE) Close() { b.dec.Close() }
