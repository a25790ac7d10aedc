package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/glei1339/FinLens/internal/model"
)

// Reviewer runs the interactive suggestion review session: each
// uncategorized transaction is shown with its suggested categories and the
// user picks one, types a different category, skips, or quits.
type Reviewer struct {
	reader *LineReader
	writer io.Writer
}

// NewReviewer creates a reviewer over the given streams, defaulting to
// stdin/stdout.
func NewReviewer(reader io.Reader, writer io.Writer) *Reviewer {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Reviewer{reader: NewLineReader(reader), writer: writer}
}

// ReviewSuggestions prompts for each transaction that has suggestions and
// returns the chosen category per transaction ID. Quitting or EOF ends the
// session early, keeping the choices made so far.
func (v *Reviewer) ReviewSuggestions(ctx context.Context, txns []model.Transaction, suggestions map[int][]string) (map[int]string, error) {
	choices := make(map[int]string)

	for _, t := range txns {
		options, ok := suggestions[t.ID]
		if !ok || len(options) == 0 {
			continue
		}

		fmt.Fprintf(v.writer, "\n%s  %s\n", BoldStyle.Render(t.Description), SubtleStyle.Render(fmt.Sprintf("%s  %.2f", t.Date, t.Amount)))
		for i, s := range options {
			fmt.Fprintf(v.writer, "  %d. %s\n", i+1, s)
		}
		fmt.Fprint(v.writer, FormatPrompt("number to accept, category name, Enter to skip, q to quit"))

		line, err := v.reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
			return choices, nil
		}
		if err != nil {
			return choices, err
		}

		switch {
		case line == "":
			continue
		case line == "q" || line == "Q":
			return choices, nil
		default:
			if n, convErr := strconv.Atoi(line); convErr == nil {
				if n < 1 || n > len(options) {
					fmt.Fprintln(v.writer, FormatWarning(fmt.Sprintf("no suggestion %d, skipping", n)))
					continue
				}
				choices[t.ID] = options[n-1]
				continue
			}
			choices[t.ID] = line
		}
	}
	return choices, nil
}
