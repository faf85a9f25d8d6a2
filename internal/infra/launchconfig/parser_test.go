package launchconfig

import (
	"reflect"
	"testing"
)

func TestParseInlineList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed quotes", `[a, "b,c", 'd e']`, []string{"a", "b,c", "d e"}},
		{"empty brackets", `[]`, nil},
		{"blank items skipped", `[a, , b,]`, []string{"a", "b"}},
		{"escaped comma", `[a\,b, c]`, []string{"a,b", "c"}},
		{"escaped quote inside quotes", `["say \"hi\"", x]`, []string{`say "hi"`, "x"}},
		{"other quote kept inside quotes", `["it's", 'say "x"']`, []string{"it's", `say "x"`}},
		{"not bracketed", `--single`, []string{"--single"}},
		{"not bracketed quoted", `"one value"`, []string{"one value"}},
		{"lone bracket", `[`, []string{"["}},
		{"empty", ``, nil},
		{"windows path", `[C:\\dir\\file.txt]`, []string{`C:\dir\file.txt`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseInlineList(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("ParseInlineList(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParseText_Scalars(t *testing.T) {
	text := "# launcher config\n" +
		"Executable: \"bin/app.exe\"\n" +
		"\n" +
		"WorkingDirectory: 'data'\r\n"

	cfg, report := ParseText(text, "/opt/launcher")

	if cfg.Executable != "bin/app.exe" {
		t.Fatalf("expected executable, got %q", cfg.Executable)
	}
	if cfg.WorkingDirectory != "data" {
		t.Fatalf("expected working directory, got %q", cfg.WorkingDirectory)
	}
	if cfg.SourceDirectory != "/opt/launcher" {
		t.Fatalf("expected source dir, got %q", cfg.SourceDirectory)
	}
	if len(cfg.Arguments) != 0 {
		t.Fatalf("expected no arguments, got %q", cfg.Arguments)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestParseText_LaterKeysOverwrite(t *testing.T) {
	cfg, _ := ParseText("executable: a.exe\nexecutable: b.exe\n", "")
	if cfg.Executable != "b.exe" {
		t.Fatalf("expected last value to win, got %q", cfg.Executable)
	}
}

func TestParseText_ValueMayContainColon(t *testing.T) {
	cfg, _ := ParseText(`executable: "C:\Tools\app.exe"`, "")
	if cfg.Executable != `C:\Tools\app.exe` {
		t.Fatalf("unexpected executable %q", cfg.Executable)
	}
}

func TestParseText_IndentedContinuation(t *testing.T) {
	text := "arguments:\n  - x\n  - \"y z\"\n"

	cfg, _ := ParseText(text, "")
	want := []string{"x", "y z"}
	if !reflect.DeepEqual(cfg.Arguments, want) {
		t.Fatalf("expected %q, got %q", want, cfg.Arguments)
	}
}

func TestParseText_InlineThenContinuation(t *testing.T) {
	text := "arguments: [a]\n  - b\n"

	cfg, _ := ParseText(text, "")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(cfg.Arguments, want) {
		t.Fatalf("expected %q, got %q", want, cfg.Arguments)
	}
}

func TestParseText_ModeResetByOtherKey(t *testing.T) {
	text := "arguments:\n" +
		"  - keep\n" +
		"executable: app.exe\n" +
		"  - foo\n"

	cfg, _ := ParseText(text, "")
	if !reflect.DeepEqual(cfg.Arguments, []string{"keep"}) {
		t.Fatalf("expected continuation to stop after another key, got %q", cfg.Arguments)
	}
}

func TestParseText_ModeResetByUnknownKey(t *testing.T) {
	text := "arguments: [a]\n" +
		"comment: not a launcher key\n" +
		"  - foo\n"

	cfg, report := ParseText(text, "")
	if !reflect.DeepEqual(cfg.Arguments, []string{"a"}) {
		t.Fatalf("expected unknown key to end the list, got %q", cfg.Arguments)
	}
	if len(report.Issues) != 1 || report.Issues[0].Key != "comment" || report.Issues[0].Line != 2 {
		t.Fatalf("expected ignored key to be reported, got %+v", report.Issues)
	}
}

func TestParseText_ContinuationBeforeArgumentsIgnored(t *testing.T) {
	cfg, _ := ParseText("  - orphan\nexecutable: x\n", "")
	if len(cfg.Arguments) != 0 {
		t.Fatalf("expected no arguments, got %q", cfg.Arguments)
	}
}

func TestParseText_ArgumentsKeyResetsList(t *testing.T) {
	text := "arguments: [a, b]\n" +
		"arguments:\n" +
		"  - c\n"

	cfg, _ := ParseText(text, "")
	if !reflect.DeepEqual(cfg.Arguments, []string{"c"}) {
		t.Fatalf("expected second arguments key to reset list, got %q", cfg.Arguments)
	}
}

func TestParseText_LineWithoutColonKeepsMode(t *testing.T) {
	text := "arguments:\n" +
		"  - a\n" +
		"stray line\n" +
		"  - b\n"

	cfg, report := ParseText(text, "")
	if !reflect.DeepEqual(cfg.Arguments, []string{"a", "b"}) {
		t.Fatalf("expected list mode to survive a line without a key, got %q", cfg.Arguments)
	}
	if len(report.Issues) != 1 || report.Issues[0].Line != 3 {
		t.Fatalf("expected one issue on line 3, got %+v", report.Issues)
	}
}

func TestParseText_ContinuationDetails(t *testing.T) {
	text := "arguments:\n" +
		"\t- tabbed\n" +
		"  -   'single quoted'   \n" +
		"  -\n" +
		"  - \"\"\n" +
		"  not a list item\n" +
		"    # indented comment\n" +
		"  - --last=1\n"

	cfg, _ := ParseText(text, "")
	want := []string{"tabbed", "single quoted", "--last=1"}
	if !reflect.DeepEqual(cfg.Arguments, want) {
		t.Fatalf("expected %q, got %q", want, cfg.Arguments)
	}
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`"a"`:   "a",
		`'a'`:   "a",
		`"a'`:   `"a'`,
		`"`:     `"`,
		`""`:    "",
		`"a"b"`: `a"b`,
		`plain`: "plain",
	}
	for in, want := range cases {
		if got := stripQuotes(in); got != want {
			t.Errorf("stripQuotes(%q) = %q, want %q", in, got, want)
		}
	}
}
