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

// OpenCorporaTag is a structured tag of the OpenCorpora vocabulary.
// Each field holds a single grammeme identifier (e.g. Case "gent") or
// is empty when the category does not apply to the word form.
type OpenCorporaTag struct {
	POS     string
	Animacy string
	Aspect  string
	Case    string
	Gender  string
	Mood    string
	Number  string
	Person  string
	Tense   string
	Voice   string
}

var openCorporaPos = map[string]PosTag{
	"NOUN": PosNoun,
	"ADJF": PosAdj,
	"ADJS": PosAdj,
	"COMP": PosAdv,
	"VERB": PosVerb,
	"INFN": PosVerb,
	"PRTF": PosVerb,
	"PRTS": PosVerb,
	"GRND": PosVerb,
	"NUMR": PosNum,
	"ADVB": PosAdv,
	"NPRO": PosPron,
	"PRED": PosAdv,
	"PREP": PosAdp,
	"CONJ": PosCconj,
	"PRCL": PosPart,
	"INTJ": PosIntj,
	"NUMB": PosNum,
	"ROMN": PosNum,
	"PNCT": PosPunct,
	"SYMB": PosSym,
	"LATN": PosX,
	"UNKN": PosX,
}

var openCorporaAnimacy = map[string]string{
	"anim": "Anim",
	"inan": "Inan",
}

var openCorporaAspect = map[string]string{
	"perf": "Perf",
	"impf": "Imp",
}

var openCorporaCase = map[string]string{
	"nomn": "Nom",
	"gent": "Gen",
	"gen1": "Gen",
	"gen2": "Gen",
	"datv": "Dat",
	"accs": "Acc",
	"acc2": "Acc",
	"ablt": "Ins",
	"loct": "Loc",
	"loc1": "Loc",
	"loc2": "Loc",
	"voct": "Voc",
}

var openCorporaGender = map[string]string{
	"masc": "Masc",
	"femn": "Fem",
	"neut": "Neut",
}

var openCorporaMood = map[string]string{
	"indc": "Ind",
	"impr": "Imp",
}

var openCorporaNumber = map[string]string{
	"sing": "Sing",
	"plur": "Plur",
}

var openCorporaPerson = map[string]string{
	"1per": "1",
	"2per": "2",
	"3per": "3",
}

var openCorporaTense = map[string]string{
	"past": "Past",
	"pres": "Pres",
	"futr": "Fut",
}

var openCorporaVoice = map[string]string{
	"actv": "Act",
	"pssv": "Pass",
}

// OpenCorporaConverter translates OpenCorpora tags into UD values.
type OpenCorporaConverter struct{}

// ConvertPos maps the POS grammeme of an OpenCorpora tag to a UD POS
// tag. An unrecognized (or missing) grammeme yields PosX.
func (c OpenCorporaConverter) ConvertPos(tag OpenCorporaTag) PosTag {
	if pos, ok := openCorporaPos[tag.POS]; ok {
		return pos
	}
	return PosX
}

// ConvertMorphTags maps the category grammemes of an OpenCorpora tag
// to a UD feature string. Unrecognized grammemes are dropped.
func (c OpenCorporaConverter) ConvertMorphTags(tag OpenCorporaTag) string {
	var feats []feature
	categories := []struct {
		key      string
		grammeme string
		table    map[string]string
	}{
		{"Animacy", tag.Animacy, openCorporaAnimacy},
		{"Aspect", tag.Aspect, openCorporaAspect},
		{"Case", tag.Case, openCorporaCase},
		{"Gender", tag.Gender, openCorporaGender},
		{"Mood", tag.Mood, openCorporaMood},
		{"Number", tag.Number, openCorporaNumber},
		{"Person", tag.Person, openCorporaPerson},
		{"Tense", tag.Tense, openCorporaTense},
		{"Voice", tag.Voice, openCorporaVoice},
	}
	for _, cat := range categories {
		if cat.grammeme == "" {
			continue
		}
		if value, ok := cat.table[cat.grammeme]; ok {
			feats = append(feats, feature{cat.key, value})
		}
	}
	return formatFeatures(feats)
}

// ParseOpenCorporaTag builds an OpenCorporaTag from its serialized
// form as found in OpenCorpora dictionaries, e.g. "NOUN,anim,masc
// sing,nomn" (grammemes separated by commas and spaces). Grammemes
// which belong to no known category are ignored, which mirrors the
// converter's treatment of unknown input.
func ParseOpenCorporaTag(s string) OpenCorporaTag {
	var tag OpenCorporaTag
	items := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	for _, g := range items {
		switch {
		case tag.POS == "" && openCorporaPos[g] != "":
			tag.POS = g
		case tag.Animacy == "" && openCorporaAnimacy[g] != "":
			tag.Animacy = g
		case tag.Aspect == "" && openCorporaAspect[g] != "":
			tag.Aspect = g
		case tag.Case == "" && openCorporaCase[g] != "":
			tag.Case = g
		case tag.Gender == "" && openCorporaGender[g] != "":
			tag.Gender = g
		case tag.Mood == "" && openCorporaMood[g] != "":
			tag.Mood = g
		case tag.Number == "" && openCorporaNumber[g] != "":
			tag.Number = g
		case tag.Person == "" && openCorporaPerson[g] != "":
			tag.Person = g
		case tag.Tense == "" && openCorporaTense[g] != "":
			tag.Tense = g
		case tag.Voice == "" && openCorporaVoice[g] != "":
			tag.Voice = g
		}
	}
	return tag
}
