//go:build !goexperiment.arenas

package tokenizer

// Heap-backed token store holding direct references to the vocabulary's
// byte slices. This is the default implementation and serves as the
// fallback when arenas are not enabled.

type heapStore struct {
	arr [][]byte // index = token id, value = expanded byte sequence
}

func newTokenStore(vocab Vocab) (tokenStore, error) {
	arr := make([][]byte, len(vocab))
	copy(arr, vocab)
	return &heapStore{arr: arr}, nil
}

func (s *heapStore) AppendInto(dst *[]byte, id int) bool {
	if id < 0 || id >= len(s.arr) {
		return false
	}
	b := s.arr[id]
	if b == nil {
		return false
	}
	*dst = append(*dst, b...)
	return true
}

func (s *heapStore) Close() {}
