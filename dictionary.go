package unmunch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// DictionaryEntry is one base word with its raw flag list as read from
// the dictionary file. Flags may still contain alias tokens; they are
// resolved by RuleTable.ExpandFlags at expansion time.
type DictionaryEntry struct {
	Word  string
	Flags []string
}

// Dictionary is a parsed word list: the entries in file order plus a
// word index for lookups. Like the rule table it is built once and
// read-only afterward.
type Dictionary struct {
	entries []DictionaryEntry
	index   map[string]int
}

// LoadDictionary reads and parses a .dic file.
func LoadDictionary(path string) (*Dictionary, error) {
	content, err := readFileMapped(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ParseDictionary(content)
}

// ParseDictionary parses dictionary content. The first line declares
// the entry count; each following non-empty line is "word" or
// "word/flags". A count smaller than the actual number of entries is
// reported as a warning on stderr but is not an error.
func ParseDictionary(content string) (*Dictionary, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: empty dictionary", ErrInvalidDictionary)
	}

	declared, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad word count %q", ErrInvalidDictionary, strings.TrimSpace(lines[0]))
	}

	d := &Dictionary{index: make(map[string]int)}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		word, flags := parseDictionaryEntry(line)
		d.index[word] = len(d.entries)
		d.entries = append(d.entries, DictionaryEntry{Word: word, Flags: flags})
	}

	if len(d.entries) > declared {
		fmt.Fprintf(os.Stderr, "warning: dictionary contains more entries (%d) than declared (%d)\n",
			len(d.entries), declared)
	}
	return d, nil
}

// parseDictionaryEntry splits a line at the first "/" into the word and
// its flag string.
func parseDictionaryEntry(line string) (string, []string) {
	if slash := strings.Index(line, "/"); slash >= 0 {
		word := strings.TrimSpace(line[:slash])
		return word, SegmentFlags(strings.TrimSpace(line[slash+1:]))
	}
	return line, nil
}

// SegmentFlags splits a raw flag string into individual flags without
// knowing the affix file's declared flag mode. This is inherently
// ambiguous and the segmentation is a best-effort guess:
//
//   - a string containing any non-ASCII-letter is walked rune by rune,
//     grouping decimal digit runs into one flag each;
//   - a short (≤ 2 characters) alphabetic string is one flag;
//   - an even-length all-uppercase string is split into 2-character
//     pairs ("long" flags);
//   - anything else is split into single characters.
//
// The expansion engine never calls this; it only accepts flag lists
// that are already segmented. When the affix file's flag mode is known,
// segment with that instead.
func SegmentFlags(flagsStr string) []string {
	if flagsStr == "" {
		return nil
	}

	runes := []rune(flagsStr)

	mixed := false
	for _, r := range runes {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			mixed = true
			break
		}
	}
	if mixed {
		var flags []string
		for i := 0; i < len(runes); i++ {
			if runes[i] >= '0' && runes[i] <= '9' {
				j := i
				for j+1 < len(runes) && runes[j+1] >= '0' && runes[j+1] <= '9' {
					j++
				}
				flags = append(flags, string(runes[i:j+1]))
				i = j
				continue
			}
			flags = append(flags, string(runes[i]))
		}
		return flags
	}

	if len(runes) <= 2 {
		return []string{flagsStr}
	}

	upper := true
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			upper = false
			break
		}
	}
	if len(runes)%2 == 0 && upper {
		flags := make([]string, 0, len(runes)/2)
		for i := 0; i+1 < len(runes); i += 2 {
			flags = append(flags, string(runes[i:i+2]))
		}
		return flags
	}

	flags := make([]string, 0, len(runes))
	for _, r := range runes {
		flags = append(flags, string(r))
	}
	return flags
}

// Entry returns the dictionary entry for word.
func (d *Dictionary) Entry(word string) (DictionaryEntry, bool) {
	if i, ok := d.index[word]; ok {
		return d.entries[i], true
	}
	return DictionaryEntry{}, false
}

// Lookup returns the flags attached to word, satisfying the Lookup
// interface used by the reverse analyzer.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	entry, ok := d.Entry(word)
	if !ok {
		return nil, false
	}
	return entry.Flags, true
}

// Entries returns the entries in file order. The returned slice is the
// dictionary's own storage and must not be modified.
func (d *Dictionary) Entries() []DictionaryEntry {
	return d.entries
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
