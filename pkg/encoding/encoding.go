/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DataBlockEncoding is a column-family data block encoding scheme recognized
// by the upgrade target version.
type DataBlockEncoding string

const (
	// EncodingNone disables data block encoding.
	EncodingNone DataBlockEncoding = "NONE"

	// EncodingPrefix stores only the diffing suffix of each row key.
	EncodingPrefix DataBlockEncoding = "PREFIX"

	// EncodingDiff compresses key fields relative to the previous cell.
	EncodingDiff DataBlockEncoding = "DIFF"

	// EncodingFastDiff is the diff encoding variant optimized for decode speed.
	EncodingFastDiff DataBlockEncoding = "FAST_DIFF"

	// EncodingRowIndexV1 adds an in-block row index for point lookups.
	EncodingRowIndexV1 DataBlockEncoding = "ROW_INDEX_V1"
)

// maxSuggestDistance bounds how far an unknown value may be from a supported
// encoding before Suggest stops offering it as a likely typo.
const maxSuggestDistance = 3

// supported is the closed set of encodings the target version understands.
// PREFIX_TREE was removed in the target version and is deliberately absent.
var supported = map[DataBlockEncoding]struct{}{
	EncodingNone:       {},
	EncodingPrefix:     {},
	EncodingDiff:       {},
	EncodingFastDiff:   {},
	EncodingRowIndexV1: {},
}

// Parse resolves a raw attribute value against the supported encoding set.
// The second return value reports membership; an unknown, empty, or absent
// value is an expected condition for the caller, not an error.
func Parse(s string) (DataBlockEncoding, bool) {
	e := DataBlockEncoding(s)
	if _, ok := supported[e]; ok {
		return e, true
	}
	return "", false
}

// String returns the wire representation of the encoding.
func (e DataBlockEncoding) String() string {
	return string(e)
}

// Supported returns the encodings accepted by the target version.
func Supported() []DataBlockEncoding {
	return []DataBlockEncoding{
		EncodingNone,
		EncodingPrefix,
		EncodingDiff,
		EncodingFastDiff,
		EncodingRowIndexV1,
	}
}

// Suggest returns the supported encoding closest to s by edit distance, if
// one is within maxSuggestDistance. It turns warnings for near-miss values
// such as "FASTDIFF" into actionable hints.
func Suggest(s string) (DataBlockEncoding, bool) {
	if s == "" {
		return "", false
	}

	// Case differences are almost always typos; compare case-folded.
	upper := strings.ToUpper(s)

	best := DataBlockEncoding("")
	bestDist := maxSuggestDistance + 1
	for _, e := range Supported() {
		d := levenshtein.ComputeDistance(upper, string(e))
		if d < bestDist {
			best = e
			bestDist = d
		}
	}

	if bestDist > maxSuggestDistance {
		return "", false
	}
	return best, true
}
