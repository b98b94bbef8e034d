// SPDX-License-Identifier: MIT
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/thatcatcamp/focusmap/internal/catalog"
	"golang.org/x/text/unicode/norm"
)

// DefaultLimit caps the number of results when the caller gives none
const DefaultLimit = 20

// Match ranks, best first
const (
	RankExact = iota
	RankPrefix
	RankWordPrefix
	RankSubstring
)

// Result is one municipality matching a query
type Result struct {
	Municipality string `json:"municipality"`
	Department   string `json:"department"`
	Match        [2]int `json:"match"` // rune offsets of the match in Municipality
	Rank         int    `json:"rank"`
}

type entry struct {
	name   string
	dept   string
	folded []rune
	pos    []int // rune offset in name of each folded rune
}

// Index finds municipalities by name ignoring case and accents, so
// "quiche" finds "Quiché".
type Index struct {
	entries []entry
}

// NewIndex indexes every municipality listed in cat
func NewIndex(cat *catalog.Catalog) *Index {
	idx := &Index{}
	if cat == nil {
		return idx
	}
	for _, dept := range cat.Departments() {
		munis, _ := cat.Municipalities(dept)
		for _, m := range munis {
			folded, pos := fold(m)
			idx.entries = append(idx.entries, entry{name: m, dept: dept, folded: folded, pos: pos})
		}
	}
	return idx
}

// Len returns the number of indexed municipalities
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Search returns up to limit municipalities containing query, best ranked
// first and then alphabetically. A blank query matches nothing.
func (idx *Index) Search(query string, limit int) []Result {
	q, _ := fold(strings.TrimSpace(query))
	if len(q) == 0 {
		return []Result{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := []Result{}
	for _, e := range idx.entries {
		pos := indexRunes(e.folded, q)
		if pos < 0 {
			continue
		}
		results = append(results, Result{
			Municipality: e.name,
			Department:   e.dept,
			Match:        [2]int{e.pos[pos], e.pos[pos+len(q)-1] + 1},
			Rank:         rank(e.folded, q, pos),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Rank != results[j].Rank {
			return results[i].Rank < results[j].Rank
		}
		if results[i].Municipality != results[j].Municipality {
			return results[i].Municipality < results[j].Municipality
		}
		return results[i].Department < results[j].Department
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func rank(name, q []rune, pos int) int {
	switch {
	case pos == 0 && len(name) == len(q):
		return RankExact
	case pos == 0:
		return RankPrefix
	case !unicode.IsLetter(name[pos-1]):
		return RankWordPrefix
	}
	// a later word may still start with q
	for i := pos + 1; i+len(q) <= len(name); i++ {
		if !unicode.IsLetter(name[i-1]) && equalRunes(name[i:i+len(q)], q) {
			return RankWordPrefix
		}
	}
	return RankSubstring
}

// fold lowercases s and strips diacritics, whether s carries them
// precomposed or as combining marks. pos maps each folded rune back to its
// rune offset in s.
func fold(s string) (folded []rune, pos []int) {
	folded = make([]rune, 0, len(s))
	pos = make([]int, 0, len(s))
	i := 0
	for _, r := range s {
		if !unicode.Is(unicode.Mn, r) {
			folded = append(folded, foldRune(r))
			pos = append(pos, i)
		}
		i++
	}
	return folded, pos
}

func foldRune(r rune) rune {
	if r < unicode.MaxASCII {
		return unicode.ToLower(r)
	}
	for _, d := range norm.NFD.String(string(r)) {
		if !unicode.Is(unicode.Mn, d) {
			return unicode.ToLower(d)
		}
	}
	return unicode.ToLower(r)
}

func indexRunes(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalRunes(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
