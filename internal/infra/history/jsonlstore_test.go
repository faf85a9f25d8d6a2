package history

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/h13-0/AppLauncher/internal/domain"
)

func TestRecord_AppendsAndListsNewestFirst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	store := NewJSONLStore(dir, WithNow(func() time.Time { return start }))

	if err := store.Record(domain.LaunchRecord{Executable: "/opt/a", PID: 10}); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := store.Record(domain.LaunchRecord{Executable: "/opt/b", Error: "boom", StartedAt: start.Add(time.Minute)}); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	got, err := store.List(0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Executable != "/opt/b" || got[0].Error != "boom" {
		t.Fatalf("expected newest first, got %+v", got[0])
	}
	if !got[1].StartedAt.Equal(start) || got[1].PID != 10 {
		t.Fatalf("expected default timestamp and pid, got %+v", got[1])
	}

	limited, err := store.List(1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(limited) != 1 || limited[0].Executable != "/opt/b" {
		t.Fatalf("expected limit to keep newest, got %+v", limited)
	}
}

func TestList_MissingFile(t *testing.T) {
	got, err := NewJSONLStore(t.TempDir()).List(5)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestList_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONLStore(dir)
	if err := store.Record(domain.LaunchRecord{Executable: "ok"}); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	f, err := os.OpenFile(store.Path(), os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, _ = f.WriteString("{not json\n")
	_ = f.Close()

	got, err := store.List(0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected malformed line to be skipped, got %d records", len(got))
	}
}

func TestRecord_MasksSensitiveArguments(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONLStore(dir)

	args := []string{"--user", "bob", "--password", "hunter2", "--api-key=abc", "--token:xyz", "plain"}
	if err := store.Record(domain.LaunchRecord{Executable: "app", Arguments: args}); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	b, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, secret := range []string{"hunter2", "abc", "xyz"} {
		if strings.Contains(string(b), secret) {
			t.Fatalf("expected %q to be masked, got %s", secret, b)
		}
	}
	if args[3] != "hunter2" {
		t.Fatalf("expected input slice to stay untouched")
	}
}

func TestRecord_MaskingDisabled(t *testing.T) {
	store := NewJSONLStore(t.TempDir(), WithMasking(false))
	if err := store.Record(domain.LaunchRecord{Arguments: []string{"--token", "t1"}}); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	got, _ := store.List(1)
	if !reflect.DeepEqual(got[0].Arguments, []string{"--token", "t1"}) {
		t.Fatalf("expected raw arguments, got %q", got[0].Arguments)
	}
}

func TestMaskArguments(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"--token", "t"}, []string{"--token", maskValue}},
		{[]string{"--token", "--next"}, []string{"--token", "--next"}},
		{[]string{"--secret=s"}, []string{"--secret=" + maskValue}},
		{[]string{"/etc/tokens/cfg", "plain-arg"}, []string{"/etc/tokens/cfg", "plain-arg"}},
		{[]string{"/opt/secret", "x"}, []string{"/opt/secret", "x"}},
		{[]string{"--mode=fast", "token"}, []string{"--mode=fast", "token"}},
		{nil, []string{}},
	}
	for _, c := range cases {
		if got := MaskArguments(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("MaskArguments(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMaskArguments_SlashSwitches(t *testing.T) {
	got := MaskArguments([]string{"/Password:p", "/token", "t"})
	want := []string{"/Password:p", "/token", "t"}
	if runtime.GOOS == "windows" {
		want = []string{"/Password:" + maskValue, "/token", maskValue}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MaskArguments = %q, want %q", got, want)
	}
}

func TestRecord_LockTimeout(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONLStore(dir, WithLockTimeout(50*time.Millisecond))

	unlock, err := store.lock(false)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	err = store.Record(domain.LaunchRecord{Executable: "x"})
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected lock failure, got %v", err)
	}
}
