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

package morph

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"ancor/ud"
)

//go:embed lexicon/mystem.tsv
var dfltMystemLexicon string

//go:embed lexicon/opencorpora.tsv
var dfltOpenCorporaLexicon string

// lexEntry is a single tagged dictionary entry.
type lexEntry struct {
	lemma string
	tag   string
}

// parseLexicon reads a tab-separated lexicon (form, lemma, tag per
// line; blank lines and #-comments skipped). Word forms are stored
// lowercased; a duplicate form keeps its first reading.
func parseLexicon(data string) (map[string]lexEntry, error) {
	entries := make(map[string]lexEntry)
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("lexicon line %d: expected 3 tab-separated fields, found %d", i+1, len(fields))
		}
		form := normalizeForm(fields[0])
		if _, ok := entries[form]; !ok {
			entries[form] = lexEntry{lemma: fields[1], tag: fields[2]}
		}
	}
	return entries, nil
}

// loadLexicon loads a lexicon file, or parses the provided embedded
// fallback when path is empty.
func loadLexicon(path, fallback string) (map[string]lexEntry, error) {
	if path == "" {
		return parseLexicon(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	entries, err := parseLexicon(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	return entries, nil
}

// --------------------------------------------------------------

// mystemAnalyzer looks up word forms in a Mystem-tagged lexicon.
type mystemAnalyzer struct {
	entries map[string]lexEntry
	conv    ud.MystemConverter
}

func newMystemAnalyzer(lexiconPath string) (*mystemAnalyzer, error) {
	entries, err := loadLexicon(lexiconPath, dfltMystemLexicon)
	if err != nil {
		return nil, err
	}
	return &mystemAnalyzer{entries: entries}, nil
}

func (a *mystemAnalyzer) Analyze(form string) (Analysis, error) {
	if form == "" {
		return Analysis{}, ErrEmptyInput
	}
	if isPunctOnly(form) {
		return punctAnalysis(form), nil
	}
	entry, ok := a.entries[normalizeForm(form)]
	if !ok {
		return unknownAnalysis(form), nil
	}
	return Analysis{
		Lemma: entry.lemma,
		Pos:   a.conv.ConvertPos(entry.tag),
		Feats: a.conv.ConvertMorphTags(entry.tag),
	}, nil
}

// --------------------------------------------------------------

// openCorporaAnalyzer looks up word forms in an OpenCorpora-tagged
// lexicon. Tags are parsed into their structured form at load time so
// a malformed dictionary is caught before any article is processed.
type openCorporaAnalyzer struct {
	entries map[string]lexEntry
	tags    map[string]ud.OpenCorporaTag
	conv    ud.OpenCorporaConverter
}

func newOpenCorporaAnalyzer(lexiconPath string) (*openCorporaAnalyzer, error) {
	entries, err := loadLexicon(lexiconPath, dfltOpenCorporaLexicon)
	if err != nil {
		return nil, err
	}
	tags := make(map[string]ud.OpenCorporaTag, len(entries))
	for form, entry := range entries {
		tags[form] = ud.ParseOpenCorporaTag(entry.tag)
	}
	return &openCorporaAnalyzer{entries: entries, tags: tags}, nil
}

func (a *openCorporaAnalyzer) Analyze(form string) (Analysis, error) {
	if form == "" {
		return Analysis{}, ErrEmptyInput
	}
	if isPunctOnly(form) {
		return punctAnalysis(form), nil
	}
	key := normalizeForm(form)
	entry, ok := a.entries[key]
	if !ok {
		return unknownAnalysis(form), nil
	}
	tag := a.tags[key]
	return Analysis{
		Lemma: entry.lemma,
		Pos:   a.conv.ConvertPos(tag),
		Feats: a.conv.ConvertMorphTags(tag),
	}, nil
}
