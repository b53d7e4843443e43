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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ancor/ud"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltMaxNumConcurrentJobs = 4
	dfltTagset               = ud.TagsetMystem
)

// Conf is a global configuration of the app
type Conf struct {
	// DataDirPath is the dataset directory with <id>_raw.txt and
	// <id>_meta.json pairs produced by an external crawler.
	DataDirPath string `json:"dataDirPath"`

	// OutputDirPath is where per-article .conllu and cleaned-text
	// files are written. Empty means "next to the input data".
	OutputDirPath string `json:"outputDirPath"`

	// Tagset selects the morphological analyzer vocabulary and the
	// matching UD conversion strategy.
	Tagset ud.TagsetKind `json:"tagset"`

	// WithMorphology switches between the basic preprocessing mode
	// (false - annotation columns stay placeholders) and full
	// morphological annotation.
	WithMorphology bool `json:"withMorphology"`

	// LexiconPath optionally overrides the embedded analyzer lexicon.
	LexiconPath string `json:"lexiconPath"`

	MaxNumConcurrentJobs int              `json:"maxNumConcurrentJobs"`
	LogFile              string           `json:"logFile"`
	LogLevel             logging.LogLevel `json:"logLevel"`

	srcPath string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.DataDirPath == "" {
		log.Fatal().Msg("dataDirPath not specified")
		return
	}
	if conf.OutputDirPath == "" {
		conf.OutputDirPath = conf.DataDirPath
		log.Warn().
			Str("path", conf.OutputDirPath).
			Msg("outputDirPath not specified, writing output next to input data")
	}
	if conf.Tagset == "" {
		conf.Tagset = dfltTagset
		log.Warn().Msgf("tagset not specified, using default: %s", dfltTagset)

	} else if !collections.SliceContains(ud.KnownTagsets(), string(conf.Tagset)) {
		log.Fatal().Msgf("unknown tagset %s", conf.Tagset)
		return
	}
	if conf.MaxNumConcurrentJobs == 0 {
		conf.MaxNumConcurrentJobs = dfltMaxNumConcurrentJobs
		log.Warn().Msgf(
			"maxNumConcurrentJobs not specified, using default: %d",
			dfltMaxNumConcurrentJobs,
		)
	}
	if conf.LexiconPath != "" && !conf.WithMorphology {
		log.Warn().Msg("lexiconPath is set but withMorphology is disabled - lexicon will not be used")
	}
}
