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

// Package corpus validates and indexes a directory of raw article
// files paired with metadata files. Validation is eager - a manager is
// either constructed over a fully consistent dataset or not at all, so
// the annotation pipeline never starts over a partial corpus.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// ArticleMeta is the metadata record of an article. Beyond decoding,
// the values are opaque to the pipeline.
type ArticleMeta struct {
	Title   string     `json:"title"`
	Authors AuthorList `json:"author"`
	Date    string     `json:"date"`
	URL     string     `json:"url"`
}

// AuthorList accepts either a single JSON string or an array of
// strings, as both shapes occur in crawler output.
type AuthorList []string

func (a *AuthorList) UnmarshalJSON(data []byte) error {
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*a = multi
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("author must be a string or an array of strings: %w", err)
	}
	*a = AuthorList{single}
	return nil
}

// RawArticle is a single corpus entry: an identifier, the raw article
// text and the decoded metadata record.
type RawArticle struct {
	ID   int
	Text string
	Meta ArticleMeta
}

// Manager validates a dataset directory on construction and exposes
// a read-only index of its articles. The index maps contiguous ids
// 1..N and is safe for concurrent reads.
type Manager struct {
	path     string
	articles map[int]*RawArticle
}

// NewManager builds a Manager over the given dataset directory. It
// fails with DirectoryNotFoundError, NotADirectoryError,
// EmptyDirectoryError or InconsistentDatasetError exactly as the
// dataset violates the corresponding invariant; no partial index is
// ever returned.
func NewManager(path string) (*Manager, error) {
	mgr := &Manager{
		path:     path,
		articles: make(map[int]*RawArticle),
	}
	if err := mgr.validateAndScan(); err != nil {
		return nil, err
	}
	log.Info().
		Str("path", path).
		Int("numArticles", len(mgr.articles)).
		Msg("corpus dataset validated")
	return mgr, nil
}

func (mgr *Manager) validateAndScan() error {
	if !fs.PathExists(mgr.path) {
		return DirectoryNotFoundError{Path: mgr.path}
	}
	isDir, err := fs.IsDir(mgr.path)
	if err != nil {
		return fmt.Errorf("failed to inspect dataset path: %w", err)
	}
	if !isDir {
		return NotADirectoryError{Path: mgr.path}
	}

	entries, err := os.ReadDir(mgr.path)
	if err != nil {
		return fmt.Errorf("failed to list dataset directory: %w", err)
	}
	numRaw, numMeta := 0, 0
	for _, entry := range entries {
		if rawFileReg.MatchString(entry.Name()) {
			numRaw++

		} else if metaFileReg.MatchString(entry.Name()) {
			numMeta++
		}
	}
	if numRaw == 0 && numMeta == 0 {
		return EmptyDirectoryError{Path: mgr.path}
	}
	if numRaw != numMeta {
		return InconsistentDatasetError{
			Reason: fmt.Sprintf("%d raw file(s) vs. %d meta file(s)", numRaw, numMeta),
		}
	}

	for id := 1; id <= numRaw; id++ {
		art, err := mgr.loadArticle(id)
		if err != nil {
			return err
		}
		mgr.articles[id] = art
	}
	return nil
}

// loadArticle checks the raw/meta pair of a single article id and
// loads both files into memory.
func (mgr *Manager) loadArticle(id int) (*RawArticle, error) {
	rawPath := GenRawTextPath(mgr.path, id)
	metaPath := GenMetaPath(mgr.path, id)
	for _, p := range []string{rawPath, metaPath} {
		isFile, err := fs.IsFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect dataset file %s: %w", p, err)
		}
		if !isFile {
			return nil, InconsistentDatasetError{
				Reason: fmt.Sprintf("article %d: missing file %s", id, p),
			}
		}
		size, err := fs.FileSize(p)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect dataset file %s: %w", p, err)
		}
		if size == 0 {
			return nil, InconsistentDatasetError{
				Reason: fmt.Sprintf("article %d: file %s is empty", id, p),
			}
		}
	}

	rawText, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read article %d: %w", id, err)
	}
	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read article %d metadata: %w", id, err)
	}
	var meta ArticleMeta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, InconsistentDatasetError{
			Reason: fmt.Sprintf("article %d: malformed metadata: %s", id, err),
		}
	}
	return &RawArticle{
		ID:   id,
		Text: string(rawText),
		Meta: meta,
	}, nil
}

// Path returns the dataset directory the manager was built over.
func (mgr *Manager) Path() string {
	return mgr.path
}

// Size returns the number of indexed articles.
func (mgr *Manager) Size() int {
	return len(mgr.articles)
}

// Articles returns the article index with contiguous keys 1..Size().
// The returned map must be treated as read-only.
func (mgr *Manager) Articles() map[int]*RawArticle {
	return mgr.articles
}
