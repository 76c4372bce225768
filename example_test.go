package minbpe_test

import (
	"fmt"

	"github.com/euforicio/minbpe-go"
)

func Example() {
	tok, err := minbpe.Train([]byte("aaabdaaabac"), 259)
	if err != nil {
		panic(err)
	}

	ids := tok.EncodeString("aaabdaaabac")
	text, err := tok.DecodeString(ids)
	if err != nil {
		panic(err)
	}

	fmt.Println(ids)
	fmt.Println(text)
	// Output:
	// [258 100 258 97 99]
	// aaabdaaabac
}
