// internal/app/app_test.go
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifdfa/pkg/api"
)

func writeFasta(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunContext(context.Background(), argv, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDFAScanText(t *testing.T) {
	fa := writeFasta(t, ">s1 desc\nCCATGCC\n")
	code, out, _ := run(t, "--type", "dfa", "--pattern", "ATG", "-s", fa)
	if code != 0 {
		t.Fatalf("exit = %d, out = %q", code, out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("out = %q", out)
	}
	if !strings.HasPrefix(lines[0], "sequence_id\t") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "s1\tDFA\tATG\t2\t4\t3\tATG") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestNoMatchExitCode(t *testing.T) {
	fa := writeFasta(t, ">s1\nCCCC\n")
	if code, _, _ := run(t, "--type", "dfa", "--pattern", "ATG", "-s", fa); code != 1 {
		t.Fatalf("default no-match exit = %d", code)
	}
	code, _, _ := run(t, "--type", "dfa", "--pattern", "ATG", "-s", fa, "--no-match-exit-code", "0")
	if code != 0 {
		t.Fatalf("overridden no-match exit = %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	fa := writeFasta(t, ">s1\nACGT\n")
	cases := [][]string{
		{"--pattern", "ATG", "-s", fa},                // missing type
		{"--type", "turing", "-p", "A", "-s", fa},     // unknown type
		{"--type", "enfa", "-p", "ATG", "-s", fa},     // spacer parse error
		{"--type", "dfa", "-p", "A", "-s", fa, "-o", "yaml"}, // bad output
	}
	for _, argv := range cases {
		code, _, errOut := run(t, argv...)
		if code != 2 {
			t.Errorf("argv %v: exit = %d", argv, code)
		}
		if errOut == "" {
			t.Errorf("argv %v: expected diagnostic on stderr", argv)
		}
	}
}

func TestMissingFileIsIOError(t *testing.T) {
	code, _, errOut := run(t, "--type", "dfa", "-p", "ATG", "-s", "/nonexistent/in.fa")
	if code != 3 || errOut == "" {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
}

func TestHelpExitsZero(t *testing.T) {
	code, out, _ := run(t, "-h")
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("exit = %d, out = %q", code, out)
	}
	if code, out, _ = run(t); code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("bare invocation: exit = %d", code)
	}
}

func TestJSONOutput(t *testing.T) {
	fa := writeFasta(t, ">s1\nGGGAATTGGG\n")
	code, out, _ := run(t, "--type", "pda", "-s", fa, "-o", "json")
	if code != 0 {
		t.Fatalf("exit = %d, out = %q", code, out)
	}
	var got []api.MatchV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Start != 3 || got[0].End != 6 || got[0].Site != "AATT" {
		t.Fatalf("rows = %+v", got)
	}
}

func TestENFAOverMultiRecordFasta(t *testing.T) {
	fa := writeFasta(t, ">a\nTATAATATA\n>b\nCCCC\n")
	code, out, _ := run(t, "--type", "enfa", "-p", "TATA{1,3}TATA", "-s", fa, "-o", "jsonl")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("out = %q", out)
	}
	var row api.MatchV1
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatal(err)
	}
	if row.SequenceID != "a" || row.Start != 0 || row.End != 8 {
		t.Fatalf("row = %+v", row)
	}
}

func TestNFASortedAcrossFiles(t *testing.T) {
	fa1 := writeFasta(t, ">z\nATGA\n")
	fa2 := writeFasta(t, ">a\nATGA\n")
	code, out, _ := run(t, "--type", "nfa", "-p", "ATG|TGA", "-s", fa1, "-s", fa2, "--sort", "--no-header")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("out = %q", out)
	}
	if !strings.HasPrefix(lines[0], "a\t") || !strings.HasPrefix(lines[3], "z\t") {
		t.Fatalf("sorted out = %q", out)
	}
}

func TestNonBaseWarning(t *testing.T) {
	fa := writeFasta(t, ">s1\nANNTG\n")
	_, _, errOut := run(t, "--type", "dfa", "-p", "TG", "-s", fa)
	if !strings.Contains(errOut, "non-ACGT") {
		t.Fatalf("stderr = %q", errOut)
	}
	_, _, errOut = run(t, "--type", "dfa", "-p", "TG", "-s", fa, "-q")
	if errOut != "" {
		t.Fatalf("quiet stderr = %q", errOut)
	}
}

func TestCancelledContext(t *testing.T) {
	fa := writeFasta(t, ">s1\nATGATGATG\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := RunContext(ctx, []string{"--type", "dfa", "-p", "ATG", "-s", fa}, &stdout, &stderr)
	if code != 130 {
		t.Fatalf("exit = %d", code)
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.Contains(out, "version") {
		t.Fatalf("exit = %d, out = %q", code, out)
	}
}
