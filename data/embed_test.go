package data

import (
	"io/fs"
	"testing"
)

func TestLevelsAreEmbedded(t *testing.T) {
	names, err := fs.Glob(Levels(), "*.dat")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}

	want := map[string]bool{"cave.dat": false, "lake.dat": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("embedded level %q not found", name)
		}
	}
}
