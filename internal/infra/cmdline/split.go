package cmdline

import "strings"

// Split breaks a command line into arguments using the MS argv rules:
//   - space and tab separate arguments outside quotes;
//   - 2N backslashes before '"' yield N backslashes and toggle quoting;
//   - 2N+1 backslashes before '"' yield N backslashes and a literal '"';
//   - backslashes not followed by '"' are literal.
func Split(line string) []string {
	var (
		args        []string
		cur         strings.Builder
		inQuotes    bool
		started     bool
		backslashes int
	)

	flush := func() {
		writeBackslashes(&cur, backslashes)
		backslashes = 0
	}

	for _, r := range line {
		switch {
		case r == '\\':
			backslashes++
			started = true
		case r == '"':
			writeBackslashes(&cur, backslashes/2)
			if backslashes%2 == 1 {
				cur.WriteByte('"')
			} else {
				inQuotes = !inQuotes
			}
			backslashes = 0
			started = true
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			flush()
			cur.WriteRune(r)
			started = true
		}
	}

	flush()
	if started {
		args = append(args, cur.String())
	}
	return args
}
