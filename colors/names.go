// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/image/colornames"
)

// suggestThreshold is the minimum Levenshtein similarity for
// a color name to be offered as a suggestion.
const suggestThreshold = 0.6

// Names contains the sorted list of CSS color names
// understood by [FromName] and [Parse].
var Names []string

func init() {
	Names = make([]string, 0, len(colornames.Map)+1)
	for nm := range colornames.Map {
		Names = append(Names, nm)
	}
	Names = append(Names, "transparent")
	sort.Strings(Names)
}

// FromName returns the color specified by the given
// lowercase CSS color name, and whether it was found.
func FromName(name string) (Color, bool) {
	if name == "transparent" {
		return Color{}, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// Suggest returns the known color name most similar to the given
// string, or "" if none is similar enough.
func Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, nm := range Names {
		sim := strutil.Similarity(name, nm, lev)
		if sim > bestSim {
			best, bestSim = nm, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return best
}
