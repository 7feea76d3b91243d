package hyphenate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/linewrap/core/offset"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/language"
)

// A Dictionary is an exception-list corpus: it knows the break offsets
// of exactly the words it has been taught. Lookup is case-insensitive.
//
// Dictionaries are meant to be populated once and then shared; Learn is
// not safe for use concurrently with InWordBreakOffsets.
type Dictionary struct {
	lang      language.Tag
	minLength int
	words     *trie.Trie
}

// NewDictionary creates an empty dictionary for the given language.
// Words shorter than 4 bytes are not looked up; see SetMinLength.
func NewDictionary(lang language.Tag) *Dictionary {
	return &Dictionary{
		lang:      lang,
		minLength: 4,
		words:     trie.New(),
	}
}

// Lang returns the language the dictionary has been created for.
func (d *Dictionary) Lang() language.Tag {
	return d.lang
}

// SetMinLength sets the minimum byte length a word must have to be
// considered for hyphenation.
func (d *Dictionary) SetMinLength(n int) {
	d.minLength = n
}

// Learn teaches the dictionary hyphenated words, given with ASCII
// hyphens at the permitted break positions, e.g. "hy-phen-ation".
func (d *Dictionary) Learn(words ...string) {
	for _, w := range words {
		var offsets []int
		var b strings.Builder
		for _, part := range strings.Split(w, "-") {
			if b.Len() > 0 {
				offsets = append(offsets, b.Len())
			}
			b.WriteString(part)
		}
		if b.Len() == 0 {
			continue
		}
		d.words.Add(strings.ToLower(b.String()), offsets)
	}
}

// InWordBreakOffsets implements the Corpus contract. It walks the words
// of text (per UAX#29) and translates the word-relative break offsets
// of known words into offsets of text.
func (d *Dictionary) InWordBreakOffsets(text string) []offset.ByteOffset {
	var result []offset.ByteOffset
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(text))
	pos := 0
	for seg.Next() {
		word := seg.Text()
		start := pos
		pos += len(word)
		if len(word) < d.minLength || !isWord(word) {
			continue
		}
		if hasBreakIndicator(word) {
			continue // explicit break hints win over the dictionary
		}
		node, ok := d.words.Find(strings.ToLower(word))
		if !ok {
			continue
		}
		for _, o := range node.Meta().([]int) {
			result = append(result, offset.ByteOffset(start+o))
		}
	}
	return result
}

var _ Corpus = &Dictionary{}

func isWord(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsLetter(r)
}

func hasBreakIndicator(s string) bool {
	return strings.ContainsAny(s, "-\u00ad\u2010\u2027")
}
