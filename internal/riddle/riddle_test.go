package riddle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTableIntegrity(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if table.Len() != 5 {
		t.Fatalf("Default() has %d riddles, want 5", table.Len())
	}
	if table.FinalNumber() != 6 {
		t.Errorf("FinalNumber() = %d, want 6", table.FinalNumber())
	}
	seen := make(map[string]struct{})
	for i, r := range table.All() {
		if r.Number != i+1 {
			t.Errorf("riddle at index %d has number %d", i, r.Number)
		}
		if _, ok := seen[r.Answer]; ok {
			t.Errorf("duplicate answer in default table: %s", r.Answer)
		}
		seen[r.Answer] = struct{}{}
	}
}

func TestDefaultAnswers(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	want := map[int]string{
		1: "a stick",
		2: "a map",
		3: "footsteps",
		4: "a fire",
		5: "a ring",
	}
	for number, answer := range want {
		r, ok := table.Get(number)
		if !ok {
			t.Errorf("Get(%d) not found", number)
			continue
		}
		if r.Answer != answer {
			t.Errorf("riddle %d answer = %q, want %q", number, r.Answer, answer)
		}
	}
}

func TestGetMissing(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	for _, n := range []int{0, -1, 6, 100} {
		if _, ok := table.Get(n); ok {
			t.Errorf("Get(%d) should not find a riddle", n)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	all := table.All()
	all[0].Answer = "changed"
	r, _ := table.Get(1)
	if r.Answer != "a stick" {
		t.Errorf("mutating All() result changed the table: %q", r.Answer)
	}
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", `{"riddles": []}`},
		{"starts at two", `{"riddles": [{"number": 2, "prompt": "p", "answer": "a", "successMessage": "m"}]}`},
		{"gap", `{"riddles": [
			{"number": 1, "prompt": "p", "answer": "a", "successMessage": "m"},
			{"number": 3, "prompt": "p", "answer": "b", "successMessage": "m"}]}`},
		{"duplicate number", `{"riddles": [
			{"number": 1, "prompt": "p", "answer": "a", "successMessage": "m"},
			{"number": 1, "prompt": "p", "answer": "b", "successMessage": "m"}]}`},
		{"no prompt", `{"riddles": [{"number": 1, "prompt": " ", "answer": "a", "successMessage": "m"}]}`},
		{"no answer", `{"riddles": [{"number": 1, "prompt": "p", "answer": "", "successMessage": "m"}]}`},
		{"uppercase answer", `{"riddles": [{"number": 1, "prompt": "p", "answer": "A Stick", "successMessage": "m"}]}`},
		{"no message", `{"riddles": [{"number": 1, "prompt": "p", "answer": "a", "successMessage": ""}]}`},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: Parse should fail", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidTable) {
			t.Errorf("%s: error %v should wrap ErrInvalidTable", tt.name, err)
		}
	}
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse([]byte(`{"riddles": [`))
	if err == nil {
		t.Fatal("Parse should fail on malformed JSON")
	}
	if errors.Is(err, ErrInvalidTable) {
		t.Errorf("decode errors should not be reported as ErrInvalidTable: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "riddles.json")
	data := `{"riddles": [{"number": 1, "prompt": "Say hello", "answer": "hello", "successMessage": "Hi!"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write riddles file: %v", err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if table.Len() != 1 || table.FinalNumber() != 2 {
		t.Errorf("LoadFile got Len=%d FinalNumber=%d, want 1 and 2", table.Len(), table.FinalNumber())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("LoadFile on missing file should name the path, got %v", err)
	}
}
