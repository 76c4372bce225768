package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/euforicio/minbpe-go"
	"github.com/euforicio/minbpe-go/tokenizer"
)

// NewCLI builds the minbpe command tree.
func NewCLI() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "minbpe",
		Short: "Train and run byte-pair encoding tokenizers",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		NewTrainCmd(),
		NewEncodeCmd(),
		NewDecodeCmd(),
		NewInspectCmd(),
	)
	return rootCmd
}

// NewTrainCmd learns a merge table from a corpus file and saves it.
func NewTrainCmd() *cobra.Command {
	var vocabSize int
	var output string

	cmd := &cobra.Command{
		Use:   "train CORPUS",
		Short: "Learn a merge table from a training corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tok, err := minbpe.Train(data, vocabSize)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".bpe"
			}
			if err := tok.Save(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trained %d merges (vocab %d) -> %s\n",
				tok.Merges().Len(), tok.VocabSize(), output)
			return nil
		},
	}
	cmd.Flags().IntVar(&vocabSize, "vocab-size", 512, "Target vocabulary size (256 literals plus merges)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Model output path (default CORPUS.bpe)")
	return cmd
}

// NewEncodeCmd encodes one or more files with a shared read-only model.
// Files are encoded concurrently; output lines keep argument order.
func NewEncodeCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "encode FILE...",
		Short: "Encode files into token ids with a trained model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := minbpe.Load(model)
			if err != nil {
				return err
			}
			results := make([][]int, len(args))
			g, _ := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					results[i] = tok.Encode(data)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, ids := range results {
				fmt.Fprintln(w, formatIDs(ids))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Trained model path")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// NewDecodeCmd decodes whitespace-separated token ids back into raw bytes.
func NewDecodeCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode token ids back into the bytes they encode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := minbpe.Load(model)
			if err != nil {
				return err
			}
			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			ids, err := parseIDs(string(data))
			if err != nil {
				return err
			}
			out, err := tok.Decode(ids)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Trained model path")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// NewInspectCmd prints the highest-priority merges of a trained model and
// optionally dumps the expanded vocabulary.
func NewInspectCmd() *cobra.Command {
	var model, dumpVocab string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the highest-priority merges of a trained model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := minbpe.Load(model)
			if err != nil {
				return err
			}
			if dumpVocab != "" {
				if err := dumpVocabFile(dumpVocab, tok.Vocab()); err != nil {
					return err
				}
			}

			var data [][]string
			for r, p := range tok.Merges().Pairs() {
				if limit > 0 && r >= limit {
					break
				}
				id := tokenizer.FirstMergeID + r
				b, _ := tok.Vocab().Bytes(id)
				data = append(data, []string{
					strconv.Itoa(r),
					strconv.Itoa(id),
					strconv.Itoa(p.Left),
					strconv.Itoa(p.Right),
					printable(b),
				})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"RANK", "ID", "LEFT", "RIGHT", "BYTES"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Trained model path")
	_ = cmd.MarkFlagRequired("model")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum merges to show (0 = all)")
	cmd.Flags().StringVar(&dumpVocab, "dump-vocab", "", "Also write the expanded vocabulary to this path")
	return cmd
}

func dumpVocabFile(path string, vocab tokenizer.Vocab) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tokenizer.WriteVocab(f, vocab); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func formatIDs(ids []int) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

func parseIDs(s string) ([]int, error) {
	fields := strings.Fields(s)
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// printable renders token bytes with control and non-ASCII bytes escaped.
func printable(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c >= 32 && c < 127:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	return sb.String()
}
