package launchconfig

import "strings"

// ParseInlineList parses an argument value written on the "arguments:" line.
//
// "[a, 'b c', \"d,e\"]" yields [a, b c, d,e]. Quotes group characters (commas included) and are
// dropped; a backslash takes the next character literally. Empty items are skipped. A value that
// is not bracketed is a single item.
func ParseInlineList(value string) []string {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		if value == "" {
			return nil
		}
		return []string{stripQuotes(trim(value))}
	}

	var (
		items    []string
		cur      strings.Builder
		quote    rune
		inQuotes bool
		escaped  bool
	)

	emit := func() {
		if t := trim(cur.String()); t != "" {
			items = append(items, stripQuotes(t))
		}
		cur.Reset()
	}

	for _, r := range value[1 : len(value)-1] {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case inQuotes:
			if r == quote {
				inQuotes = false
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuotes = true
			quote = r
		case r == ',':
			emit()
		default:
			cur.WriteRune(r)
		}
	}
	emit()

	return items
}
