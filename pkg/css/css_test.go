package css

import (
	"path/filepath"
	"testing"
)

var compileTests = []struct {
	declarations string
	want         string
}{
	{"color: red", ".style-x{color:red}"},
	{"  margin : 0px ;  padding: 0 ", ".style-x{margin:0;padding:0}"},
}

func TestMinifier(t *testing.T) {
	mf := NewMinifier()
	for _, test := range compileTests {
		got, err := mf.Compile(".style-x", test.declarations)
		if err != nil {
			t.Errorf("Compile(%q) -> error %v", test.declarations, err)
			continue
		}
		if got != test.want {
			t.Errorf("Compile(%q) -> %q, want %q", test.declarations, got, test.want)
		}
	}
}

func TestMinifier_RejectsBraces(t *testing.T) {
	if _, err := NewMinifier().Compile(".a", "color: red} body{color: blue"); err == nil {
		t.Error("Compile accepted declarations that close the rule")
	}
}

func TestCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css.db")
	c, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, sel := range []string{".style-a", ".style-b"} {
		got, err := c.Compile(sel, "color: red")
		if err != nil {
			t.Fatal(err)
		}
		if want := sel + "{color:red}"; got != want {
			t.Errorf("Compile(%q) -> %q, want %q", sel, got, want)
		}
	}
	if n := c.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	// The rule survives reopening.
	c, err = OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if n := c.Len(); n != 1 {
		t.Errorf("Len() after reopening = %d, want 1", n)
	}
	got, err := c.Compile(".style-c", "color: red")
	if err != nil || got != ".style-c{color:red}" {
		t.Errorf("Compile after reopening -> (%q, %v)", got, err)
	}
}
