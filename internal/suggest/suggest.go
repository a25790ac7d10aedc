// Package suggest proposes categories for uncategorized transactions by
// training a TF-IDF naive Bayes classifier on the profile's already
// categorized history. Suggestions are advisory: the caller decides whether
// to apply them.
package suggest

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/jbrukh/bayesian"

	"github.com/glei1339/FinLens/internal/model"
)

// ErrTooFewCategories is returned when the profile has fewer than two
// categories with categorized transactions, which is not enough signal to
// train on.
var ErrTooFewCategories = errors.New("need transactions in at least two categories to train suggestions")

const maxSuggestions = 5

// Suggester scores descriptions against the trained category classes.
type Suggester struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// terms tokenizes a description for classification: lowercase, processor
// glyphs stripped, whitespace-separated.
func terms(description string) []string {
	description = strings.ToLower(description)
	description = strings.ReplaceAll(description, "*", " ")
	description = strings.ReplaceAll(description, "#", " ")
	return strings.Fields(description)
}

// NewSuggester trains a classifier on every categorized transaction.
func NewSuggester(txns []model.Transaction) (*Suggester, error) {
	byCategory := make(map[string][][]string)
	for _, t := range txns {
		if t.Category == "" || t.Category == model.Uncategorized {
			continue
		}
		tokens := terms(t.Description)
		if len(tokens) == 0 {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], tokens)
	}
	if len(byCategory) < 2 {
		return nil, ErrTooFewCategories
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	classes := make([]bayesian.Class, len(names))
	for i, name := range names {
		classes[i] = bayesian.Class(name)
	}

	classifier := bayesian.NewClassifierTfIdf(classes...)
	for i, name := range names {
		for _, tokens := range byCategory[name] {
			classifier.Learn(tokens, classes[i])
		}
	}
	classifier.ConvertTermsFreqToTfIdf()

	return &Suggester{classifier: classifier, classes: classes}, nil
}

// Suggest returns the most likely categories for a description, best first.
// Candidates are cut off once the score gap to the previous hit exceeds one
// standard deviation of the full score distribution, so a clear winner
// yields a single suggestion while a muddy match yields several.
func (s *Suggester) Suggest(description string) []string {
	tokens := terms(description)
	if len(tokens) == 0 {
		return nil
	}

	scores, _, _ := s.classifier.LogScores(tokens)

	type scored struct {
		score float64
		pos   int
	}
	pairs := make([]scored, len(scores))
	var mean float64
	for pos, score := range scores {
		pairs[pos] = scored{score, pos}
		mean += score
	}
	mean /= float64(len(scores))

	var stddev float64
	for _, score := range scores {
		diff := score - mean
		stddev += diff * diff
	}
	stddev = math.Sqrt(stddev / float64(len(scores)-1))

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	result := make([]string, 0, maxSuggestions)
	last := pairs[0].score
	for i := 0; i < len(pairs) && i < maxSuggestions; i++ {
		if math.Abs(pairs[i].score-last) > stddev {
			break
		}
		result = append(result, string(s.classes[pairs[i].pos]))
		last = pairs[i].score
	}
	return result
}

// SuggestAll maps each uncategorized transaction's ID to its suggestions.
func (s *Suggester) SuggestAll(txns []model.Transaction) map[int][]string {
	out := make(map[int][]string)
	for _, t := range txns {
		if t.Category != "" && t.Category != model.Uncategorized {
			continue
		}
		if suggestions := s.Suggest(t.Description); len(suggestions) > 0 {
			out[t.ID] = suggestions
		}
	}
	return out
}
