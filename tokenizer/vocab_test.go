package tokenizer

import (
	"errors"
	"testing"
)

func TestBuildVocabIdentity(t *testing.T) {
	vocab, err := BuildVocab(NewMergeTable())
	if err != nil {
		t.Fatalf("BuildVocab: %v", err)
	}
	if len(vocab) != FirstMergeID {
		t.Fatalf("expected %d literal entries, got %d", FirstMergeID, len(vocab))
	}
	for id := 0; id < FirstMergeID; id++ {
		b, ok := vocab.Bytes(id)
		if !ok || len(b) != 1 || b[0] != byte(id) {
			t.Fatalf("id %d: got %v, want its single literal byte", id, b)
		}
	}
}

func TestBuildVocabExpandsChains(t *testing.T) {
	table := NewMergeTable()
	table.add(Pair{97, 97})  // 256 -> "aa"
	table.add(Pair{256, 97}) // 257 -> "aaa"
	table.add(Pair{257, 98}) // 258 -> "aaab"

	vocab, err := BuildVocab(table)
	if err != nil {
		t.Fatalf("BuildVocab: %v", err)
	}
	for id, want := range map[int]string{256: "aa", 257: "aaa", 258: "aaab"} {
		b, ok := vocab.Bytes(id)
		if !ok || string(b) != want {
			t.Fatalf("id %d: got %q, want %q", id, b, want)
		}
	}

	// Invariant: every learned entry is the concatenation of its parts.
	for r, p := range table.Pairs() {
		left, _ := vocab.Bytes(p.Left)
		right, _ := vocab.Bytes(p.Right)
		got, _ := vocab.Bytes(FirstMergeID + r)
		if string(got) != string(left)+string(right) {
			t.Fatalf("rank %d: %q != %q + %q", r, got, left, right)
		}
	}
}

func TestBuildVocabRejectsCorruptTable(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
	}{
		{name: "id never introduced", pair: Pair{300, 65}},
		{name: "forward self reference", pair: Pair{97, 256}},
		{name: "negative id", pair: Pair{-1, 65}},
	}
	for _, tc := range tests {
		table := NewMergeTable()
		table.add(tc.pair)
		if _, err := BuildVocab(table); !errors.Is(err, ErrMalformedTable) {
			t.Fatalf("%s: got %v, want ErrMalformedTable", tc.name, err)
		}
	}
}

func TestVocabBytesUnknownID(t *testing.T) {
	vocab, err := BuildVocab(NewMergeTable())
	if err != nil {
		t.Fatalf("BuildVocab: %v", err)
	}
	if _, ok := vocab.Bytes(256); ok {
		t.Fatalf("expected id 256 to be unknown in a merge-free vocabulary")
	}
	if _, ok := vocab.Bytes(-1); ok {
		t.Fatalf("expected negative ids to be unknown")
	}
}
