package geometry

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Charset is an immutable set of codepoints.
// The zero value is an empty set.
type Charset struct {
	table *unicode.RangeTable
}

// NewCharset returns the set of the given runes.
func NewCharset(runes ...rune) Charset {
	return Charset{table: rangetable.New(slices.Clone(runes)...)}
}

// RangeCharset returns the set of codepoints in [lo, hi].
// It returns an empty set when lo > hi.
func RangeCharset(lo, hi rune) Charset {
	lo = max(lo, 0)
	hi = min(hi, unicode.MaxRune)
	if lo > hi {
		return Charset{}
	}

	var rt unicode.RangeTable
	if lo <= 0xFFFF {
		rt.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(min(hi, 0xFFFF)), Stride: 1}}
		for _, r := range rt.R16 {
			if r.Hi <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
		}
	}
	if hi > 0xFFFF {
		rt.R32 = []unicode.Range32{{Lo: uint32(max(lo, 0x10000)), Hi: uint32(hi), Stride: 1}}
	}
	return Charset{table: &rt}
}

// ASCII returns the printable ASCII characters U+0020 to U+007E.
func ASCII() Charset {
	return RangeCharset(0x20, 0x7E)
}

// Latin1 returns printable ASCII plus U+00A0 to U+00FF.
func Latin1() Charset {
	return ASCII().Union(RangeCharset(0xA0, 0xFF))
}

// Union returns the set of codepoints contained in c or any of others.
func (c Charset) Union(others ...Charset) Charset {
	tables := make([]*unicode.RangeTable, 0, len(others)+1)
	for _, cs := range append([]Charset{c}, others...) {
		if cs.table != nil {
			tables = append(tables, cs.table)
		}
	}
	if len(tables) == 0 {
		return Charset{}
	}
	return Charset{table: rangetable.Merge(tables...)}
}

// Contains reports whether r is in the set.
func (c Charset) Contains(r rune) bool {
	return c.table != nil && unicode.Is(c.table, r)
}

// Runes returns the codepoints in ascending order.
func (c Charset) Runes() []rune {
	if c.table == nil {
		return nil
	}
	var runes []rune
	rangetable.Visit(c.table, func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

// Len returns the number of codepoints in the set.
func (c Charset) Len() int {
	if c.table == nil {
		return 0
	}
	n := 0
	for _, r := range c.table.R16 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	for _, r := range c.table.R32 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	return n
}

// ParseCharset parses a comma-separated list of items:
//
//	ascii, latin1     named sets
//	0x41, U+0041, 65  single codepoints
//	'A'               a quoted character
//	0x400-0x4FF       inclusive ranges of codepoints
//	'A'-'Z'           ranges between quoted characters
func ParseCharset(list string) (Charset, error) {
	var sets []Charset
	for _, item := range splitItems(list) {
		cs, err := parseItem(item)
		if err != nil {
			return Charset{}, err
		}
		sets = append(sets, cs)
	}
	if len(sets) == 0 {
		return Charset{}, ErrEmptyCharset
	}
	return sets[0].Union(sets[1:]...), nil
}

// splitItems splits at commas outside quotes.
func splitItems(list string) []string {
	var items []string
	quoted := false
	start := 0
	for i, r := range list {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ',' && !quoted:
			items = append(items, list[start:i])
			start = i + 1
		}
	}
	items = append(items, list[start:])

	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseItem(item string) (Charset, error) {
	switch strings.ToLower(item) {
	case "ascii":
		return ASCII(), nil
	case "latin1", "latin-1":
		return Latin1(), nil
	}

	loStr, hiStr, isRange := cutRange(item)
	lo, err := parseCodepoint(strings.TrimSpace(loStr))
	if err != nil {
		return Charset{}, &CharsetError{Item: item, Reason: err.Error()}
	}
	if !isRange {
		return NewCharset(lo), nil
	}

	hi, err := parseCodepoint(strings.TrimSpace(hiStr))
	if err != nil {
		return Charset{}, &CharsetError{Item: item, Reason: err.Error()}
	}
	if lo > hi {
		return Charset{}, &CharsetError{Item: item, Reason: "range start above range end"}
	}
	return RangeCharset(lo, hi), nil
}

// cutRange splits item at the first hyphen outside quotes.
func cutRange(item string) (lo, hi string, ok bool) {
	quoted := false
	for i, r := range item {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == '-' && !quoted:
			return item[:i], item[i+1:], true
		}
	}
	return item, "", false
}

func parseCodepoint(s string) (rune, error) {
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		body := s[1 : len(s)-1]
		r, size := utf8.DecodeRuneInString(body)
		if r == utf8.RuneError || size != len(body) {
			return 0, strconv.ErrSyntax
		}
		return r, nil
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}
	if v > unicode.MaxRune {
		return 0, strconv.ErrRange
	}
	return rune(v), nil
}
