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

package ud

import "strings"

// A Mystem tag is a single delimited string, e.g. "S,persn,masc,sing,nom".
// Categories are separated by commas, the lexeme part is separated from
// the form part by "=", and ambiguous form readings are grouped in
// parentheses with "|" between variants ("S,fem,anim=(acc,sg|gen,sg)").
// Only the first variant of an ambiguous reading is considered.
const (
	mystemCategoryDelim = ","
	mystemFormDelim     = "="
	mystemVariantDelim  = "|"
)

var mystemPos = map[string]PosTag{
	"A":      PosAdj,
	"ADV":    PosAdv,
	"ADVPRO": PosAdv,
	"ANUM":   PosAdj,
	"APRO":   PosDet,
	"COM":    PosAdj,
	"CONJ":   PosCconj,
	"INTJ":   PosIntj,
	"NUM":    PosNum,
	"PART":   PosPart,
	"PR":     PosAdp,
	"S":      PosNoun,
	"SPRO":   PosPron,
	"V":      PosVerb,
	"UNKN":   PosX,
}

// Grammemes marking proper names; a noun carrying one of them is
// reported as PROPN rather than NOUN.
var mystemProperName = map[string]bool{
	"persn": true,
	"famn":  true,
	"patrn": true,
	"geo":   true,
}

var mystemFeats = map[string]feature{
	// case
	"nom":  {"Case", "Nom"},
	"gen":  {"Case", "Gen"},
	"dat":  {"Case", "Dat"},
	"acc":  {"Case", "Acc"},
	"ins":  {"Case", "Ins"},
	"abl":  {"Case", "Loc"},
	"loc":  {"Case", "Loc"},
	"part": {"Case", "Par"},
	"voc":  {"Case", "Voc"},
	// number
	"sing": {"Number", "Sing"},
	"pl":   {"Number", "Plur"},
	// gender
	"masc": {"Gender", "Masc"},
	"fem":  {"Gender", "Fem"},
	"neut": {"Gender", "Neut"},
	// animacy
	"anim": {"Animacy", "Anim"},
	"inan": {"Animacy", "Inan"},
	// tense
	"praes":   {"Tense", "Pres"},
	"inpraes": {"Tense", "Pres"},
	"praet":   {"Tense", "Past"},
	// aspect
	"ipf": {"Aspect", "Imp"},
	"pf":  {"Aspect", "Perf"},
	// voice
	"act":  {"Voice", "Act"},
	"pass": {"Voice", "Pass"},
	// person
	"1p": {"Person", "1"},
	"2p": {"Person", "2"},
	"3p": {"Person", "3"},
	// mood
	"indic": {"Mood", "Ind"},
	"imper": {"Mood", "Imp"},
	// degree
	"comp": {"Degree", "Cmp"},
	"supr": {"Degree", "Sup"},
}

// MystemConverter translates Mystem tag strings into UD values.
type MystemConverter struct{}

// splitTag flattens a Mystem tag into its grammemes. The lexeme/form
// separator is treated the same as the category separator and only the
// first variant of an ambiguous grouping survives.
func (c MystemConverter) splitTag(tag string) []string {
	if i := strings.Index(tag, mystemVariantDelim); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.NewReplacer("(", "", ")", "", mystemFormDelim, mystemCategoryDelim).Replace(tag)
	items := strings.Split(tag, mystemCategoryDelim)
	ans := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			ans = append(ans, item)
		}
	}
	return ans
}

// ConvertPos maps the part-of-speech marker of a Mystem tag to a UD
// POS tag. An unrecognized marker yields PosX.
func (c MystemConverter) ConvertPos(tag string) PosTag {
	grammemes := c.splitTag(tag)
	if len(grammemes) == 0 {
		return PosX
	}
	pos, ok := mystemPos[grammemes[0]]
	if !ok {
		return PosX
	}
	if pos == PosNoun {
		for _, g := range grammemes[1:] {
			if mystemProperName[g] {
				return PosPropn
			}
		}
	}
	return pos
}

// ConvertMorphTags maps the grammemes of a Mystem tag to a UD feature
// string. Grammemes without a UD counterpart are dropped; if nothing
// remains, an empty string is returned.
func (c MystemConverter) ConvertMorphTags(tag string) string {
	var feats []feature
	seen := make(map[string]bool)
	for _, g := range c.splitTag(tag) {
		f, ok := mystemFeats[g]
		if !ok || seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		feats = append(feats, f)
	}
	return formatFeatures(feats)
}
