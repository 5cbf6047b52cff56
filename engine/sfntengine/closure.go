// seehuhn.de/go/webfont - convert fonts to compressed web fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sfntengine

import (
	"bytes"
	"encoding/binary"
	"slices"

	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/gtab"

	"seehuhn.de/go/webfont/engine"
)

// glyphSet is a set of glyph IDs.
type glyphSet map[glyph.ID]bool

// add adds gid to the set, if it is a valid glyph ID.
func (s glyphSet) add(gid glyph.ID, numGlyphs int) {
	if int(gid) < numGlyphs {
		s[gid] = true
	}
}

// closeOverGSUB adds all glyphs which can be produced from glyphs in keep
// by the substitutions in a "GSUB" table.
func closeOverGSUB(data []byte, opt *engine.SubsetOptions, keep glyphSet, numGlyphs int) error {
	info, err := gtab.Read(bytes.NewReader(data), gtab.TypeGsub)
	if err != nil {
		return err
	}
	lookups := info.LookupList

	var active []gtab.LookupIndex
	if opt.AllFeatures() {
		for i := range lookups {
			active = append(active, gtab.LookupIndex(i))
		}
	} else {
		for _, feature := range info.FeatureList {
			if slices.Contains(opt.LayoutFeatures, feature.Tag) {
				active = append(active, feature.Lookups...)
			}
		}
		// include lookups which are only called from contextual lookups
		for i := 0; i < len(active); i++ {
			if int(active[i]) >= len(lookups) {
				continue
			}
			for _, st := range lookups[active[i]].Subtables {
				for _, action := range nestedActions(st) {
					if !slices.Contains(active, action.LookupListIndex) {
						active = append(active, action.LookupListIndex)
					}
				}
			}
		}
	}

	for {
		before := len(keep)
		for _, idx := range active {
			if int(idx) >= len(lookups) {
				continue
			}
			for _, st := range lookups[idx].Subtables {
				applyClosure(st, keep, numGlyphs)
			}
		}
		if len(keep) == before {
			return nil
		}
	}
}

// applyClosure adds the output glyphs of a single substitution subtable.
func applyClosure(st gtab.Subtable, keep glyphSet, numGlyphs int) {
	switch st := st.(type) {
	case *gtab.Gsub1_1:
		for gid := range st.Cov {
			if keep[gid] {
				keep.add(gid+st.Delta, numGlyphs)
			}
		}
	case *gtab.Gsub1_2:
		for gid, idx := range st.Cov {
			if keep[gid] && idx < len(st.SubstituteGlyphIDs) {
				keep.add(st.SubstituteGlyphIDs[idx], numGlyphs)
			}
		}
	case *gtab.Gsub2_1:
		for gid, idx := range st.Cov {
			if keep[gid] && idx < len(st.Repl) {
				for _, out := range st.Repl[idx] {
					keep.add(out, numGlyphs)
				}
			}
		}
	case *gtab.Gsub3_1:
		for gid, idx := range st.Cov {
			if keep[gid] && idx < len(st.Alternates) {
				for _, out := range st.Alternates[idx] {
					keep.add(out, numGlyphs)
				}
			}
		}
	case *gtab.Gsub4_1:
		for gid, idx := range st.Cov {
			if !keep[gid] || idx >= len(st.Repl) {
				continue
			}
		ligLoop:
			for _, lig := range st.Repl[idx] {
				for _, in := range lig.In {
					if !keep[in] {
						continue ligLoop
					}
				}
				keep.add(lig.Out, numGlyphs)
			}
		}
	}
}

// nestedActions returns the lookups called by a contextual subtable.
func nestedActions(st gtab.Subtable) []gtab.SeqLookup {
	var res []gtab.SeqLookup
	switch st := st.(type) {
	case *gtab.SeqContext1:
		for _, rules := range st.Rules {
			for _, rule := range rules {
				if rule != nil {
					res = append(res, rule.Actions...)
				}
			}
		}
	case *gtab.SeqContext2:
		for _, rules := range st.Rules {
			for _, rule := range rules {
				if rule != nil {
					res = append(res, rule.Actions...)
				}
			}
		}
	case *gtab.SeqContext3:
		res = append(res, st.Actions...)
	case *gtab.ChainedSeqContext1:
		for _, rules := range st.Rules {
			for _, rule := range rules {
				if rule != nil {
					res = append(res, rule.Actions...)
				}
			}
		}
	case *gtab.ChainedSeqContext2:
		for _, rules := range st.Rules {
			for _, rule := range rules {
				if rule != nil {
					res = append(res, rule.Actions...)
				}
			}
		}
	case *gtab.ChainedSeqContext3:
		res = append(res, st.Actions...)
	}
	return res
}

// closeOverCOLR adds the layer glyphs of version 0 color glyphs.
// https://learn.microsoft.com/en-us/typography/opentype/spec/colr
func closeOverCOLR(data []byte, keep glyphSet, numGlyphs int) {
	if len(data) < 14 {
		return
	}
	numBase := int(binary.BigEndian.Uint16(data[2:]))
	baseOffset := int(binary.BigEndian.Uint32(data[4:]))
	layerOffset := int(binary.BigEndian.Uint32(data[8:]))
	numLayers := int(binary.BigEndian.Uint16(data[12:]))

	for i := 0; i < numBase; i++ {
		pos := baseOffset + 6*i
		if pos+6 > len(data) {
			return
		}
		gid := glyph.ID(binary.BigEndian.Uint16(data[pos:]))
		if !keep[gid] {
			continue
		}
		first := int(binary.BigEndian.Uint16(data[pos+2:]))
		count := int(binary.BigEndian.Uint16(data[pos+4:]))
		for j := first; j < first+count && j < numLayers; j++ {
			lpos := layerOffset + 4*j
			if lpos+4 > len(data) {
				break
			}
			keep.add(glyph.ID(binary.BigEndian.Uint16(data[lpos:])), numGlyphs)
		}
	}
}

// closeOverComponents adds the components of all composite glyphs in
// keep, recursively.
func (g *glyfTable) closeOverComponents(keep glyphSet) error {
	todo := make([]glyph.ID, 0, len(keep))
	for gid := range keep {
		todo = append(todo, gid)
	}
	for len(todo) > 0 {
		gid := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		comps, err := components(g.Glyph(gid))
		if err != nil {
			return err
		}
		for _, c := range comps {
			if int(c) < g.NumGlyphs() && !keep[c] {
				keep[c] = true
				todo = append(todo, c)
			}
		}
	}
	return nil
}
