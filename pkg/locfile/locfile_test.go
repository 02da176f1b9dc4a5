package locfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	t.Run("skips comments and blanks", func(t *testing.T) {
		path := writeTemp(t, `# European offices
FRA
DEU

  # indented comment
JPN   # Tokyo office
USA-E extra ignored words
`)
		tokens, err := Read(path)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		want := []string{"FRA", "DEU", "JPN", "USA-E"}
		if !reflect.DeepEqual(tokens, want) {
			t.Errorf("Read = %v, want %v", tokens, want)
		}
	})

	t.Run("empty file yields no tokens", func(t *testing.T) {
		tokens, err := Read(writeTemp(t, "\n# only a comment\n"))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(tokens) != 0 {
			t.Errorf("got %d tokens, want 0", len(tokens))
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := Read(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})
}
