package tokenizer

import "log/slog"

// TrainMerges runs the merge learner over data for at most numMerges steps
// and returns the learned table. Each step counts every adjacent pair in
// the current symbol stream, picks the most frequent one (ties broken by
// lexicographically smallest pair), assigns it the next id, and rewrites
// the stream. Learning stops early once no pair occurs more than once;
// that is normal exhaustion, not an error. Empty input or numMerges <= 0
// yields an empty table.
func TrainMerges(data []byte, numMerges int) *MergeTable {
	table := NewMergeTable()
	if numMerges <= 0 || len(data) == 0 {
		return table
	}

	ids := bytesToIDs(data)
	for m := 0; m < numMerges; m++ {
		best, freq := mostFrequentPair(CountPairs(ids))
		if freq < 2 {
			slog.Debug("bpe training exhausted", "merges", m, "max_freq", freq)
			break
		}
		id := table.add(best)
		ids = replacePair(ids, best, id)
		slog.Debug("bpe merge learned",
			"rank", m,
			"left", best.Left,
			"right", best.Right,
			"id", id,
			"freq", freq,
			"stream_len", len(ids))
	}

	if len(ids) > 0 {
		slog.Info("bpe training complete",
			"merges", table.Len(),
			"input_bytes", len(data),
			"stream_len", len(ids),
			"compression", float64(len(data))/float64(len(ids)))
	}
	return table
}

// mostFrequentPair returns the pair with the strictly highest count. Equal
// counts resolve to the lexicographically smallest pair so training output
// is reproducible across runs. freq is 0 when counts is empty.
func mostFrequentPair(counts map[Pair]int) (best Pair, freq int) {
	for p, n := range counts {
		if n > freq || (n == freq && p.Less(best)) {
			best, freq = p, n
		}
	}
	return best, freq
}
