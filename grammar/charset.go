package grammar

import (
	"sort"
	"strings"
)

// CharRange is an inclusive range of runes.
type CharRange struct {
	Lo, Hi rune
}

// CharClass is a set of runes, given as an ordered list of non-overlapping
// ranges.
type CharClass []CharRange

// CompileClass compiles the source of a charset into a character class.
// Every rune of the source is a member of the class, except for a '-' between
// two runes, which denotes a range: "a-z_" is the class of lowercase ASCII
// letters and the underscore. A '-' at the start or end is a member, and so
// is a '-' between two runes in descending order: "+-*/" contains all four.
func CompileClass(source string) CharClass {
	runes := []rune(source)
	var class CharClass
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' && runes[i] <= runes[i+2] {
			class = append(class, CharRange{runes[i], runes[i+2]})
			i += 2
			continue
		}
		class = append(class, CharRange{runes[i], runes[i]})
	}
	return class.normalize()
}

// normalize sorts the ranges and merges overlapping or adjacent ones.
func (c CharClass) normalize() CharClass {
	if len(c) == 0 {
		return c
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].Lo < c[j].Lo
	})
	merged := CharClass{c[0]}
	for _, r := range c[1:] {
		last := &merged[len(merged)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Contains checks if r is a member of the class.
func (c CharClass) Contains(r rune) bool {
	i := sort.Search(len(c), func(i int) bool {
		return c[i].Hi >= r
	})
	return i < len(c) && c[i].Lo <= r
}

// Pairs encodes the class as a string of rune pairs: each range contributes
// its lower and its upper bound. Generated parsers use this encoding.
func (c CharClass) Pairs() string {
	var b strings.Builder
	for _, r := range c {
		b.WriteRune(r.Lo)
		b.WriteRune(r.Hi)
	}
	return b.String()
}
