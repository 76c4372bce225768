package tokenizer

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const modelMagic = "# minbpe v1"

// WriteModel writes table to w in the line-oriented model format:
//
//	# minbpe v1
//	# merges 3
//	97 97
//	97 98
//	256 257
//
// Line order is rank order, so the file preserves merge priority; the
// merge on the r-th data line introduces id FirstMergeID+r. The format
// carries no ids explicitly because they are implied by position.
func WriteModel(w io.Writer, table *MergeTable) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", modelMagic)
	fmt.Fprintf(bw, "# merges %d\n", table.Len())
	for r := 0; r < table.Len(); r++ {
		p := table.At(r)
		fmt.Fprintf(bw, "%d %d\n", p.Left, p.Right)
	}
	return bw.Flush()
}

// SaveModel writes table to a file at path.
func SaveModel(path string, table *MergeTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return WriteModel(f, table)
}

// ReadModel parses the model format from r, validating that every pair
// references only byte literals or merges defined on earlier lines.
func ReadModel(r io.Reader) (*MergeTable, error) {
	table := NewMergeTable()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		sp := strings.IndexByte(line, ' ')
		if sp <= 0 {
			return nil, fmt.Errorf("invalid merge at line %d", lineNo)
		}
		left, err := strconv.Atoi(line[:sp])
		if err != nil {
			return nil, fmt.Errorf("left id at line %d: %w", lineNo, err)
		}
		right, err := strconv.Atoi(strings.TrimSpace(line[sp+1:]))
		if err != nil {
			return nil, fmt.Errorf("right id at line %d: %w", lineNo, err)
		}
		next := FirstMergeID + table.Len()
		if left < 0 || left >= next || right < 0 || right >= next {
			return nil, fmt.Errorf("%w: line %d references an id outside [0, %d)",
				ErrMalformedTable, lineNo, next)
		}
		pair := Pair{left, right}
		if _, ok := table.Rank(pair); ok {
			return nil, fmt.Errorf("%w: duplicate pair at line %d", ErrMalformedTable, lineNo)
		}
		table.add(pair)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadModel reads a model file written by SaveModel.
func LoadModel(path string) (*MergeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	table, err := ReadModel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// WriteVocab writes vocab in tiktoken form: one base64 token and its id
// per line, ordered by id. The file is an export for inspection and
// interop; models round-trip through the merge format above.
func WriteVocab(w io.Writer, vocab Vocab) error {
	bw := bufio.NewWriter(w)
	for id, b := range vocab {
		if b == nil {
			continue
		}
		fmt.Fprintf(bw, "%s %d\n", base64.StdEncoding.EncodeToString(b), id)
	}
	return bw.Flush()
}
