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

import "fmt"

// DirectoryNotFoundError signals that the configured dataset path
// does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (err DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("dataset directory %s does not exist", err.Path)
}

// ----------------------------

// NotADirectoryError signals that the configured dataset path exists
// but is not a directory.
type NotADirectoryError struct {
	Path string
}

func (err NotADirectoryError) Error() string {
	return fmt.Sprintf("dataset path %s is not a directory", err.Path)
}

// ----------------------------

// EmptyDirectoryError signals that the dataset directory contains no
// files matching the expected raw/meta naming scheme.
type EmptyDirectoryError struct {
	Path string
}

func (err EmptyDirectoryError) Error() string {
	return fmt.Sprintf("dataset directory %s contains no dataset files", err.Path)
}

// ----------------------------

// InconsistentDatasetError signals that the raw/meta file pairs do not
// form a dense, gapless corpus of non-empty files.
type InconsistentDatasetError struct {
	Reason string
}

func (err InconsistentDatasetError) Error() string {
	return fmt.Sprintf("inconsistent dataset: %s", err.Reason)
}
