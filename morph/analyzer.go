// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of ANCOR.
//
//  ANCOR is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ANCOR is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ANCOR.  If not, see <https://www.gnu.org/licenses/>.

// Package morph performs per-token morphological analysis. Analyzers
// are lexicon-backed: a word form is looked up in a tagged dictionary
// and its analyzer-specific tag is translated to UD values via the
// matching ud converter. Unknown word forms degrade to an untagged
// analysis rather than failing, since no dictionary is exhaustive.
package morph

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"ancor/ud"
)

// ErrEmptyInput is returned when an analyzer is invoked with an empty
// word form. This is a caller bug and is fatal for a pipeline run.
var ErrEmptyInput = errors.New("cannot analyze an empty word form")

// Analysis is the morphological reading of a single word form,
// already normalized to UD values.
type Analysis struct {
	Lemma string
	Pos   ud.PosTag
	Feats string
}

// Analyzer produces a morphological analysis for a single word form.
type Analyzer interface {
	Analyze(form string) (Analysis, error)
}

// NewAnalyzer creates an analyzer for the given tagset. With an empty
// lexiconPath the embedded default lexicon of the tagset is used.
func NewAnalyzer(kind ud.TagsetKind, lexiconPath string) (Analyzer, error) {
	switch kind {
	case ud.TagsetMystem:
		return newMystemAnalyzer(lexiconPath)
	case ud.TagsetOpenCorpora:
		return newOpenCorporaAnalyzer(lexiconPath)
	}
	return nil, fmt.Errorf("cannot create analyzer: unknown tagset %s", kind)
}

// isPunctOnly tests whether a form contains no letters or digits.
func isPunctOnly(form string) bool {
	for _, r := range form {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// normalizeForm is the lexicon lookup key of a surface form.
func normalizeForm(form string) string {
	return strings.ToLower(form)
}

// punctAnalysis is the fixed reading of a punctuation-only token: the
// surface form is its own lemma.
func punctAnalysis(form string) Analysis {
	return Analysis{Lemma: form, Pos: ud.PosPunct}
}

// unknownAnalysis is the degraded reading of an out-of-lexicon token.
func unknownAnalysis(form string) Analysis {
	return Analysis{Lemma: normalizeForm(form), Pos: ud.PosX}
}
