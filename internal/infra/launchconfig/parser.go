package launchconfig

import (
	"strings"

	"github.com/h13-0/AppLauncher/internal/domain"
)

const (
	keyExecutable       = "executable"
	keyWorkingDirectory = "workingdirectory"
	keyArguments        = "arguments"
)

// parserState is the line-state of the scanner.
type parserState int

const (
	stateTopLevel parserState = iota
	stateCollectingArguments
)

// ParseText parses config text into a LaunchConfig rooted at sourceDir.
//
// It never fails: unknown keys and malformed top-level lines are skipped and noted in the report.
// Validating required fields is left to the caller.
func ParseText(text, sourceDir string) (domain.LaunchConfig, domain.ParseReport) {
	p := parser{cfg: domain.LaunchConfig{SourceDirectory: sourceDir}}
	for i, line := range strings.Split(text, "\n") {
		p.line(i+1, line)
	}
	return p.cfg, p.report
}

type parser struct {
	cfg    domain.LaunchConfig
	report domain.ParseReport
	state  parserState
}

func (p *parser) line(n int, line string) {
	trimmed := trim(line)
	if trimmed == "" || trimmed[0] == '#' {
		return
	}

	if indent := strings.IndexFunc(line, func(r rune) bool { return r != ' ' && r != '\t' }); indent > 0 {
		p.indented(trimmed)
		return
	}

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		p.report.MissingColon(n)
		return
	}

	key := strings.ToLower(trim(line[:colon]))
	value := trim(line[colon+1:])

	switch key {
	case keyExecutable:
		p.cfg.Executable = stripQuotes(value)
		p.state = stateTopLevel
	case keyWorkingDirectory:
		p.cfg.WorkingDirectory = stripQuotes(value)
		p.state = stateTopLevel
	case keyArguments:
		p.cfg.Arguments = nil
		p.state = stateCollectingArguments
		if value != "" {
			p.cfg.Arguments = append(p.cfg.Arguments, ParseInlineList(value)...)
		}
	default:
		p.report.IgnoredKey(n, key)
		p.state = stateTopLevel
	}
}

func (p *parser) indented(trimmed string) {
	if p.state != stateCollectingArguments || trimmed[0] != '-' {
		return
	}
	if v := stripQuotes(trim(trimmed[1:])); v != "" {
		p.cfg.Arguments = append(p.cfg.Arguments, v)
	}
}

func trim(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// stripQuotes removes one matching pair of surrounding single or double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
