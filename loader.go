package unmunch

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// LoadAffixFile reads and parses a .aff file into a rule table.
func LoadAffixFile(path string) (*RuleTable, error) {
	content, err := readFileMapped(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ParseAffixFile(content)
}

// readFileMapped reads a whole file through a read-only memory mapping.
// Affix and dictionary files for well-stocked languages run to tens of
// megabytes; the single string conversion from the mapping is the only
// copy made. Empty files and filesystems that refuse mmap fall back to
// a plain read.
func readFileMapped(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, rerr := io.ReadAll(f)
		return string(data), rerr
	}
	defer m.Unmap()

	return string(m), nil
}

// ParseAffixFile parses .aff content into a rule table.
//
// Recognized directives:
//
//	FLAG long|num|UTF-8      flag representation (default: single char)
//	FULLSTRIP                words may be stripped to the empty string
//	AF <flags> [# n]         flag alias; index n from the trailing
//	                         comment, else the running 1-based count
//	PFX|SFX <flag> Y|N <n>   block header; Y marks cross-product
//	PFX|SFX <flag> <strip> <add>[/...] [condition]
//
// "0" stands for an empty strip or add; text after "/" in the add field
// (continuation flags) is dropped; a missing condition means ".".
// Unrecognized directives (SET, TRY, REP, compounding) are skipped: the
// table owns no behavior for them.
func ParseAffixFile(content string) (*RuleTable, error) {
	table := NewRuleTable()
	lines := strings.Split(content, "\n")
	aliasCount := 0

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "FLAG":
			if len(fields) > 1 {
				switch fields[1] {
				case "long":
					table.SetFlagMode(FlagLong)
				case "num":
					table.SetFlagMode(FlagNumeric)
				case "UTF-8":
					table.SetFlagMode(FlagUTF8)
				default:
					table.SetFlagMode(FlagSingle)
				}
			}

		case "FULLSTRIP":
			table.SetFullStrip(true)

		case "AF":
			if len(fields) < 2 {
				continue
			}
			aliasCount++
			table.AddAlias(aliasKey(line, aliasCount), splitFlags(fields[1], table.FlagMode()))

		case "PFX", "SFX":
			if len(fields) < 4 || (fields[2] != "Y" && fields[2] != "N") {
				// A rule line whose block was already consumed, or a
				// malformed stray; skip.
				continue
			}
			dir := Prefix
			if fields[0] == "SFX" {
				dir = Suffix
			}
			consumed, err := parseAffixBlock(table, lines, i, dir)
			if err != nil {
				return nil, err
			}
			i += consumed
		}
	}
	return table, nil
}

// aliasKey returns the alias index for an AF line: an explicit numeric
// trailing comment wins, otherwise the running count.
func aliasKey(line string, count int) string {
	if hash := strings.Index(line, "#"); hash >= 0 {
		comment := strings.TrimSpace(line[hash+1:])
		if n, err := strconv.Atoi(comment); err == nil {
			return strconv.Itoa(n)
		}
	}
	return strconv.Itoa(count)
}

// splitFlags segments a flag sequence according to the declared mode.
func splitFlags(s string, mode FlagMode) []string {
	switch mode {
	case FlagLong:
		runes := []rune(s)
		flags := make([]string, 0, (len(runes)+1)/2)
		for i := 0; i < len(runes); i += 2 {
			end := i + 2
			if end > len(runes) {
				end = len(runes)
			}
			flags = append(flags, string(runes[i:end]))
		}
		return flags
	case FlagNumeric:
		return strings.Split(s, ",")
	default:
		flags := make([]string, 0, len(s))
		for _, r := range s {
			flags = append(flags, string(r))
		}
		return flags
	}
}

// parseAffixBlock consumes the rule lines announced by the PFX/SFX
// header at lines[start] and registers them on table. It returns the
// number of lines consumed after the header.
func parseAffixBlock(table *RuleTable, lines []string, start int, dir Direction) (int, error) {
	header := strings.Fields(strings.TrimSpace(lines[start]))
	if len(header) < 4 {
		return 0, fmt.Errorf("%w: affix header %q", ErrInvalidRuleRecord, strings.TrimSpace(lines[start]))
	}
	flag := header[1]
	crossProduct := header[2] == "Y"
	count, err := strconv.Atoi(header[3])
	if err != nil {
		return 0, fmt.Errorf("%w: rule count %q in %q", ErrInvalidRuleRecord, header[3], strings.TrimSpace(lines[start]))
	}

	consumed := 0
	for n := 1; n <= count; n++ {
		if start+n >= len(lines) {
			break
		}
		consumed = n

		line := strings.TrimSpace(lines[start+n])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != header[0] || fields[1] != flag {
			continue
		}

		strip := fields[2]
		if strip == "0" {
			strip = ""
		}
		add := fields[3]
		if add == "0" {
			add = ""
		} else if slash := strings.Index(add, "/"); slash >= 0 {
			add = add[:slash]
		}
		condition := "."
		if len(fields) > 4 {
			condition = fields[4]
		}

		if err := table.AddRule(dir, flag, crossProduct, strip, add, condition); err != nil {
			return 0, err
		}
	}
	return consumed, nil
}
