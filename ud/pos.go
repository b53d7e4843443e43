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

// Package ud translates analyzer-specific morphological tags into
// Universal Dependencies part-of-speech tags and feature strings.
// The mapping tables are static data; converters never fail on input
// they do not recognize - unknown tags degrade to PosX and unknown
// grammemes are silently dropped, since analyzer vocabularies are not
// guaranteed exhaustive.
package ud

import (
	"fmt"
	"sort"
	"strings"
)

// PosTag is a Universal Dependencies part-of-speech tag.
type PosTag string

const (
	PosNoun  PosTag = "NOUN"
	PosPropn PosTag = "PROPN"
	PosVerb  PosTag = "VERB"
	PosAux   PosTag = "AUX"
	PosAdj   PosTag = "ADJ"
	PosAdv   PosTag = "ADV"
	PosPron  PosTag = "PRON"
	PosDet   PosTag = "DET"
	PosAdp   PosTag = "ADP"
	PosNum   PosTag = "NUM"
	PosCconj PosTag = "CCONJ"
	PosSconj PosTag = "SCONJ"
	PosPart  PosTag = "PART"
	PosIntj  PosTag = "INTJ"
	PosPunct PosTag = "PUNCT"
	PosSym   PosTag = "SYM"
	PosX     PosTag = "X"
)

// TagsetKind identifies a supported morphological analyzer vocabulary.
type TagsetKind string

const (
	TagsetMystem      TagsetKind = "mystem"
	TagsetOpenCorpora TagsetKind = "opencorpora"
)

// KnownTagsets lists the tagset identifiers accepted in configuration.
func KnownTagsets() []string {
	return []string{string(TagsetMystem), string(TagsetOpenCorpora)}
}

func (k TagsetKind) Validate() error {
	switch k {
	case TagsetMystem, TagsetOpenCorpora:
		return nil
	}
	return fmt.Errorf("unknown tagset %s", k)
}

// feature is a single UD key=value morphological feature.
type feature struct {
	Key   string
	Value string
}

// formatFeatures renders features as required by the CONLL-U FEATS
// column: key=value pairs ordered alphabetically by key and joined
// with "|". An empty feature list yields an empty string.
func formatFeatures(feats []feature) string {
	if len(feats) == 0 {
		return ""
	}
	items := make([]string, len(feats))
	for i, f := range feats {
		items[i] = f.Key + "=" + f.Value
	}
	sort.Strings(items)
	return strings.Join(items, "|")
}
