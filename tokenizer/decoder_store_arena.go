//go:build goexperiment.arenas

package tokenizer

import "arena"

// Arena-backed token store. All storage lives in a dedicated arena.
// AppendInto copies from the arena blob into the destination to avoid
// leaking arena-backed slices to the heap.
type arenaStore struct {
	a    *arena.Arena
	blob []byte
	off  []uint32
}

func newTokenStore(vocab Vocab) (tokenStore, error) {
	a := arena.NewArena()
	total := 0
	for _, b := range vocab {
		total += len(b)
	}
	blob := arena.MakeSlice[byte](a, total, total)
	off := arena.MakeSlice[uint32](a, len(vocab)+1, len(vocab)+1)
	pos := 0
	for i, b := range vocab {
		off[i] = uint32(pos)
		copy(blob[pos:pos+len(b)], b)
		pos += len(b)
	}
	off[len(vocab)] = uint32(pos)
	return &arenaStore{a: a, blob: blob, off: off}, nil
}

func (s *arenaStore) AppendInto(dst *[]byte, id int) bool {
	if id < 0 || id >= len(s.off)-1 {
		return false
	}
	a := s.off[id]
	b := s.off[id+1]
	if a == b {
		return false
	}
	*dst = append(*dst, s.blob[a:b]...)
	return true
}

func (s *arenaStore) Close() { s.a.Free() }
