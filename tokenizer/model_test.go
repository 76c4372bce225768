package tokenizer

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestModelRoundTrip(t *testing.T) {
	table := TrainMerges([]byte("aaabdaaabac"), 3)
	path := filepath.Join(t.TempDir(), "model.bpe")

	if err := SaveModel(path, table); err != nil {
		t.Fatalf("SaveModel: %v", err)
	}
	loaded, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if !reflect.DeepEqual(loaded.Pairs(), table.Pairs()) {
		t.Fatalf("loaded pairs %v, want %v", loaded.Pairs(), table.Pairs())
	}
}

func TestWriteModelFormat(t *testing.T) {
	table := NewMergeTable()
	table.add(Pair{97, 97})
	table.add(Pair{256, 98})

	var buf bytes.Buffer
	if err := WriteModel(&buf, table); err != nil {
		t.Fatalf("WriteModel: %v", err)
	}
	want := "# minbpe v1\n# merges 2\n97 97\n256 98\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReadModelValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "forward reference",
			input:   "300 65\n",
			wantErr: ErrMalformedTable,
		},
		{
			name:    "reference to own id",
			input:   "97 97\n97 257\n",
			wantErr: ErrMalformedTable,
		},
		{
			name:    "duplicate pair",
			input:   "97 97\n97 97\n",
			wantErr: ErrMalformedTable,
		},
		{
			name:    "negative id",
			input:   "-1 65\n",
			wantErr: ErrMalformedTable,
		},
	}
	for _, tc := range tests {
		_, err := ReadModel(strings.NewReader(tc.input))
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestReadModelRejectsGarbage(t *testing.T) {
	for _, input := range []string{"abc\n", "97 xyz\n", "foo 32\n"} {
		if _, err := ReadModel(strings.NewReader(input)); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestReadModelSkipsCommentsAndBlanks(t *testing.T) {
	input := "# minbpe v1\n\n# merges 1\n97 97\n"
	table, err := ReadModel(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadModel: %v", err)
	}
	if table.Len() != 1 || table.At(0) != (Pair{97, 97}) {
		t.Fatalf("unexpected table: %v", table.Pairs())
	}
}

func TestWriteVocab(t *testing.T) {
	table := NewMergeTable()
	table.add(Pair{104, 105}) // "hi"
	vocab, err := BuildVocab(table)
	if err != nil {
		t.Fatalf("BuildVocab: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteVocab(&buf, vocab); err != nil {
		t.Fatalf("WriteVocab: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != FirstMergeID+1 {
		t.Fatalf("expected %d lines, got %d", FirstMergeID+1, len(lines))
	}
	// "hi" in base64 is aGk=, and it carries the first learned id.
	if last := lines[len(lines)-1]; last != "aGk= 256" {
		t.Fatalf("unexpected final line %q", last)
	}
}
