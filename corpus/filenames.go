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

package corpus

import (
	"fmt"
	"path/filepath"
	"regexp"
)

var (
	rawFileReg  = regexp.MustCompile(`^(\d+)_raw\.txt$`)
	metaFileReg = regexp.MustCompile(`^(\d+)_meta\.json$`)
)

// GenRawTextPath returns the path of the raw text file of an article.
func GenRawTextPath(baseDir string, articleID int) string {
	return filepath.Join(baseDir, fmt.Sprintf("%d_raw.txt", articleID))
}

// GenMetaPath returns the path of the metadata file of an article.
func GenMetaPath(baseDir string, articleID int) string {
	return filepath.Join(baseDir, fmt.Sprintf("%d_meta.json", articleID))
}

// GenConlluPath returns the path of the annotated CONLL-U output file
// of an article.
func GenConlluPath(baseDir string, articleID int) string {
	return filepath.Join(baseDir, fmt.Sprintf("%d_sentences.conllu", articleID))
}

// GenCleanedPath returns the path of the cleaned plain-text output
// file of an article.
func GenCleanedPath(baseDir string, articleID int) string {
	return filepath.Join(baseDir, fmt.Sprintf("%d_cleaned.txt", articleID))
}
