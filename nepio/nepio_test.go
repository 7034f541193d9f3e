package nepio

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/sepia-mori/nepeta"
)

func TestLoadSave(t *testing.T) {
	fsys := afero.NewMemMapFs()

	source := "#server\n\tname web-1\n\tport 8'080\n#\n"
	if err := afero.WriteFile(fsys, "config.nep", []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(fsys, "config.nep", func(kind nepeta.ErrorKind, ch byte, line, column int) {
		t.Errorf("unexpected parse error %s at %d:%d", kind, line, column)
	})
	if err != nil {
		t.Fatal(err)
	}

	server := doc.Find("server")
	if server == nil {
		t.Fatal("server node not found")
	}
	if port, ok := server.Find("port").IntegerAt(0); !ok || port != 8080 {
		t.Errorf("port = %d, %v, want 8080", port, ok)
	}

	if err := Save(fsys, "copy.nep", doc, nepeta.DefaultWriterOptions()); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(fsys, "copy.nep", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Equal(doc) {
		t.Errorf("reloaded document differs:\n%s", reloaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "missing.nep", nil); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadInto(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "a.nep", []byte("a 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "b.nep", []byte("b 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := &nepeta.Node{}
	for _, path := range []string{"a.nep", "b.nep"} {
		if err := LoadInto(fsys, doc, path, nil); err != nil {
			t.Fatal(err)
		}
	}

	if len(doc.Children) != 2 || doc.Find("a") == nil || doc.Find("b") == nil {
		t.Errorf("merged document mismatch:\n%s", doc)
	}
}
