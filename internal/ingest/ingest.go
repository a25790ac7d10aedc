// Package ingest orchestrates statement ingestion: routing files to the
// right parser, correcting sign conventions, categorizing, applying user
// rules, and merging the result into the profile's transaction set.
//
// The pipeline is copy-on-write: it never mutates the input state, and a
// batch runs file by file with per-file errors collected rather than
// aborting the whole upload.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/glei1339/FinLens/internal/ai"
	"github.com/glei1339/FinLens/internal/categorize"
	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/csvparse"
	"github.com/glei1339/FinLens/internal/model"
	"github.com/glei1339/FinLens/internal/ofx"
	"github.com/glei1339/FinLens/internal/pdfparse"
)

// Mode selects how a batch combines with the profile's existing set.
type Mode int

const (
	// ModeReplace discards all existing transactions and files first.
	ModeReplace Mode = iota
	// ModeAdd merges the batch into the existing set.
	ModeAdd
)

// DuplicateStrategy decides what happens when an added file name was
// already ingested.
type DuplicateStrategy int

const (
	// DuplicateReject reports the file as an error and leaves the old
	// rows in place.
	DuplicateReject DuplicateStrategy = iota
	// DuplicateOverwrite removes the old file's rows and ingests the new
	// content.
	DuplicateOverwrite
	// DuplicateSkip removes the old file's rows and does not ingest the
	// new content.
	DuplicateSkip
)

// File is one uploaded statement.
type File struct {
	Name string
	Data []byte
}

// Options configures one ingestion batch.
type Options struct {
	Mode       Mode
	Duplicates DuplicateStrategy
	// AI, when non-nil, replaces the deterministic sign and category
	// passes and serves as the PDF extraction fallback. Every AI failure
	// is non-fatal: the deterministic path runs instead and the failure
	// surfaces as a warning.
	AI ai.Capability
	// Progress receives human-readable status messages.
	Progress func(message string)
}

// Result is the outcome of one batch.
type Result struct {
	// State is the new profile state. It is always non-nil, even when
	// every file failed.
	State *model.ProfileState
	// Warnings are non-fatal problems, such as an AI call that fell back
	// to the deterministic path.
	Warnings []string
	// FileErrors records the files that could not be ingested.
	FileErrors []*common.FileError
}

// parsedFile is one successfully parsed statement awaiting sign correction.
type parsedFile struct {
	file  File
	kind  string
	txns  []model.Transaction
	hints categorize.StatementHints
	// signed statements (OFX) skip the sign corrector entirely
	signed bool
}

// Run ingests a batch of files into the profile state and returns the new
// state. The input state is not mutated.
func Run(ctx context.Context, state *model.ProfileState, files []File, opts Options) (*Result, error) {
	result := &Result{State: cloneState(state)}

	if opts.Mode == ModeReplace {
		result.State.Transactions = nil
		result.State.Files = nil
	}

	var parsed []parsedFile
	for i, f := range files {
		opts.progress(fmt.Sprintf("Processing %s (%d of %d)...", f.Name, i+1, len(files)))

		kind, ok := fileKind(f.Name)
		if !ok {
			result.fileError(f.Name, common.NewUserError(
				fmt.Sprintf("unsupported file type: %s", filepath.Ext(f.Name)),
				common.ErrUnsupportedFile))
			continue
		}

		if result.State.HasFile(f.Name) {
			switch opts.Duplicates {
			case DuplicateReject:
				result.fileError(f.Name, fmt.Errorf("%w: file was already ingested", common.ErrDuplicateEntry))
				continue
			case DuplicateSkip:
				result.State.Transactions = model.RemoveBySource(result.State.Transactions, f.Name)
				result.State.Files = removeFile(result.State.Files, f.Name)
				continue
			case DuplicateOverwrite:
				result.State.Transactions = model.RemoveBySource(result.State.Transactions, f.Name)
				result.State.Files = removeFile(result.State.Files, f.Name)
			}
		}

		pf, err := parseFile(ctx, f, kind, opts, result)
		if err != nil {
			result.fileError(f.Name, err)
			continue
		}
		parsed = append(parsed, *pf)
	}

	correctSigns(ctx, parsed, opts, result)

	// Collect the batch, numbering from the current maximum.
	nextID := result.State.NextID()
	var batch []model.Transaction
	for _, pf := range parsed {
		for _, t := range pf.txns {
			t.ID = nextID
			nextID++
			batch = append(batch, t)
		}
		result.State.Files = append(result.State.Files, model.StatementFile{
			Name:    pf.file.Name,
			Kind:    pf.kind,
			Content: pf.file.Data,
		})
	}

	batch = categorizeBatch(ctx, batch, opts, result)
	result.State.Transactions = append(result.State.Transactions, batch...)
	result.State.Transactions = categorize.ApplyUserRules(result.State.Transactions, result.State.Rules)

	slog.Info("Ingestion batch finished",
		"files", len(files),
		"failed", len(result.FileErrors),
		"new_transactions", len(batch),
		"total_transactions", len(result.State.Transactions))

	return result, nil
}

// parseFile routes one file to its parser and returns the parsed
// transactions with the hints the sign corrector needs.
func parseFile(ctx context.Context, f File, kind string, opts Options, result *Result) (*parsedFile, error) {
	switch kind {
	case "csv":
		st, err := csvparse.Parse(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		return &parsedFile{
			file: f,
			kind: kind,
			txns: st.Transactions,
			hints: categorize.StatementHints{
				Institution: st.Institution,
				FromCSV:     true,
			},
		}, nil

	case "pdf":
		st, err := pdfparse.Parse(f.Name, f.Data)
		if st == nil {
			return nil, err
		}
		return resolvePDF(ctx, f, st, err, opts, result)

	case "ofx":
		st, err := ofx.Parse(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		// OFX amounts are already signed correctly
		return &parsedFile{file: f, kind: kind, txns: st.Transactions, signed: true}, nil
	}
	return nil, common.ErrUnsupportedFile
}

// resolvePDF picks between the two PDF extraction paths. When the AI
// capability reads at least one transaction out of the page text, its
// result replaces the layout extraction and the rows are already signed,
// so sign correction does not touch them. Otherwise the layout rows stand,
// with a warning when the AI call itself failed.
func resolvePDF(ctx context.Context, f File, st *pdfparse.Statement, layoutErr error, opts Options, result *Result) (*parsedFile, error) {
	if opts.AI != nil && strings.TrimSpace(st.PageText) != "" {
		if ex, aiErr := opts.AI.ExtractFromText(ctx, st.PageText); aiErr != nil {
			result.warn(fmt.Sprintf("AI extraction failed for %s, using layout extraction: %v", f.Name, aiErr))
		} else if len(ex.Transactions) > 0 {
			return &parsedFile{
				file:   f,
				kind:   "pdf",
				txns:   stampExtraction(ex, st, f.Name),
				signed: true,
			}, nil
		}
	}
	if layoutErr != nil {
		return nil, layoutErr
	}
	return &parsedFile{
		file: f,
		kind: "pdf",
		txns: st.Transactions,
		hints: categorize.StatementHints{
			Institution:           st.Institution,
			PageText:              st.PageText,
			HasDebitCreditColumns: st.HasDebitCreditColumns,
		},
	}, nil
}

// stampExtraction converts an AI extraction into transactions carrying the
// usual per-file metadata, preferring the model's institution/account over
// the layout extractor's guesses.
func stampExtraction(ex *ai.Extraction, st *pdfparse.Statement, fileName string) []model.Transaction {
	inst := ex.Institution
	if inst == "" {
		inst = st.Institution
	}
	last4 := ex.AccountLast4
	if last4 == "" {
		last4 = st.AccountLast4
	}
	txns := make([]model.Transaction, len(ex.Transactions))
	for i, t := range ex.Transactions {
		t.Source = fileName
		t.Institution = inst
		t.AccountLast4 = last4
		txns[i] = t
	}
	return txns
}

// correctSigns applies the sign convention pass to the batch: the AI
// classifier when available, otherwise the per-statement heuristic.
func correctSigns(ctx context.Context, parsed []parsedFile, opts Options, result *Result) {
	var unsigned []*parsedFile
	for i := range parsed {
		if !parsed[i].signed {
			unsigned = append(unsigned, &parsed[i])
		}
	}
	if len(unsigned) == 0 {
		return
	}

	if opts.AI != nil {
		var batch []model.Transaction
		for _, pf := range unsigned {
			batch = append(batch, pf.txns...)
		}
		classified, err := opts.AI.ClassifyDepositsVsPayments(ctx, batch, opts.progressFunc())
		if err == nil {
			for _, pf := range unsigned {
				n := len(pf.txns)
				pf.txns = classified[:n]
				classified = classified[n:]
			}
			return
		}
		result.warn(fmt.Sprintf("AI sign classification failed, using heuristic correction: %v", err))
	}

	for _, pf := range unsigned {
		if categorize.ShouldFlip(pf.txns, pf.hints) {
			slog.Info("Flipping statement sign convention", "file", pf.file.Name)
			pf.txns = categorize.FlipSigns(pf.txns)
		}
	}
}

// categorizeBatch fills in categories for the new transactions: the AI
// categorizer when available, then the keyword engine for anything still
// uncategorized.
func categorizeBatch(ctx context.Context, batch []model.Transaction, opts Options, result *Result) []model.Transaction {
	if len(batch) == 0 {
		return batch
	}

	if opts.AI != nil {
		categorized, err := opts.AI.CategorizeWithModel(ctx, batch, result.State.CategoryNames(), opts.progressFunc())
		if err == nil {
			batch = categorized
		} else {
			result.warn(fmt.Sprintf("AI categorization failed, using keyword categorizer: %v", err))
		}
	}

	return categorize.CategorizeAll(batch)
}

func fileKind(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return "csv", true
	case ".pdf":
		return "pdf", true
	case ".ofx", ".qfx":
		return "ofx", true
	}
	return "", false
}

func cloneState(state *model.ProfileState) *model.ProfileState {
	clone := &model.ProfileState{Profile: state.Profile}
	clone.Transactions = append([]model.Transaction(nil), state.Transactions...)
	clone.Rules = append([]model.Rule(nil), state.Rules...)
	clone.CustomCategories = append([]model.CategoryDefinition(nil), state.CustomCategories...)
	clone.Files = append([]model.StatementFile(nil), state.Files...)
	return clone
}

func removeFile(files []model.StatementFile, name string) []model.StatementFile {
	kept := make([]model.StatementFile, 0, len(files))
	for _, f := range files {
		if f.Name != name {
			kept = append(kept, f)
		}
	}
	return kept
}

func (r *Result) fileError(name string, err error) {
	r.FileErrors = append(r.FileErrors, &common.FileError{File: name, Err: err})
}

func (r *Result) warn(msg string) {
	slog.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}

// CombinedFileError aggregates the batch's per-file failures into one
// human-readable error, or nil when every file parsed.
func (r *Result) CombinedFileError() error {
	return common.CombineFileErrors(r.FileErrors)
}

func (o Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}

func (o Options) progressFunc() ai.ProgressFunc {
	if o.Progress == nil {
		return nil
	}
	return ai.ProgressFunc(o.Progress)
}
