package pdfparse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// letterHeight is the fallback page height when the media box is missing
// or inherited (US Letter in points).
const letterHeight = 792.0

// mergeGap is the maximum horizontal gap, in points, between glyph runs
// that still belong to the same token. Content streams frequently split
// words and numbers into multiple runs; anything tighter than a space's
// width gets stitched back together so amount tokens survive intact.
const mergeGap = 2.0

// ReadPages extracts positioned text fragments from every page of a PDF,
// converting the bottom-up PDF y axis to top-down.
func ReadPages(data []byte) (pages []Page, err error) {
	// The content-stream parser panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		pages = append(pages, fragmentsFromTexts(page.Content().Text, height))
	}
	return pages, nil
}

func pageHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Kind() == pdf.Array && box.Len() == 4 {
		if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
			return h
		}
	}
	return letterHeight
}

// fragmentsFromTexts converts raw glyph runs into merged word fragments.
func fragmentsFromTexts(texts []pdf.Text, height float64) Page {
	var out Page
	var cur *Fragment
	var curEnd float64

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			cur.Text = strings.TrimSpace(cur.Text)
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		y := height - t.Y
		if cur != nil && absFloat(y-cur.Y) <= 0.5 && t.X-curEnd <= mergeGap && t.X >= cur.X {
			cur.Text += t.S
			curEnd = t.X + t.W
			continue
		}
		flush()
		cur = &Fragment{Text: t.S, X: t.X, Y: y}
		curEnd = t.X + t.W
	}
	flush()
	return out
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
