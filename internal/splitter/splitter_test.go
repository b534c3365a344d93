package splitter

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jorge-barreto/codesplit/internal/fsys"
)

const classPattern = `public\s+(?:final\s+)?class\s+(\w+)`

// memFS records directories and files in memory and fails on request.
type memFS struct {
	dirs  map[string]bool
	files map[string][]string
	fail  map[string]error // keyed by file path
}

func newMemFS() *memFS {
	return &memFS{
		dirs:  make(map[string]bool),
		files: make(map[string][]string),
		fail:  make(map[string]error),
	}
}

func (m *memFS) MkdirAll(dir string) error {
	m.dirs[dir] = true
	return nil
}

func (m *memFS) WriteLines(path string, lines []string) error {
	if err, ok := m.fail[path]; ok {
		return err
	}
	m.files[path] = append([]string(nil), lines...)
	return nil
}

// recConsole records every console call.
type recConsole struct {
	writing []string
	failed  []string
}

func (c *recConsole) Writing(fileName, dir string) {
	c.writing = append(c.writing, filepath.Join(dir, fileName))
}

func (c *recConsole) WriteFailed(path string, err error) {
	c.failed = append(c.failed, path)
}

func newTestSplitter(fs FileSystem) (*Splitter, *recConsole) {
	con := &recConsole{}
	return &Splitter{
		Names:   MustNameMatcher(classPattern, `(?:public\s+)?interface\s+(\w+)`),
		Header:  func(label string) string { return "// from " + label },
		FS:      fs,
		Console: con,
	}, con
}

func TestSplit_SingleUnit(t *testing.T) {
	fs := newMemFS()
	s, con := newTestSplitter(fs)

	res := s.Split("resp.txt", "package com.example;\n\npublic class Foo {\n    int x;\n}\n", "out")
	if res.Root != "out" {
		t.Fatalf("Root = %q, want out", res.Root)
	}
	want := filepath.Join("out", "com", "example", "Foo.java")
	got, ok := fs.files[want]
	if !ok {
		t.Fatalf("expected %s, got files %v", want, fs.files)
	}
	wantLines := []string{"// from resp.txt", "package com.example;", "", "public class Foo {", "    int x;", "}"}
	if !reflect.DeepEqual(got, wantLines) {
		t.Fatalf("lines = %q, want %q", got, wantLines)
	}
	if len(res.Written) != 1 || res.Written[0].Path != want || res.Written[0].Lines != len(wantLines) {
		t.Fatalf("Written = %+v", res.Written)
	}
	if len(con.writing) != 1 {
		t.Fatalf("expected one progress line, got %v", con.writing)
	}
}

func TestSplit_TwoUnits(t *testing.T) {
	fs := newMemFS()
	s, _ := newTestSplitter(fs)

	in := "package a;\npublic class A {\n}\npackage b.c;\npublic interface B {\n  void f();\n}\n"
	res := s.Split("in", in, "out")
	if len(res.Written) != 2 {
		t.Fatalf("expected 2 files, got %+v", res.Written)
	}

	a := fs.files[filepath.Join("out", "a", "A.java")]
	if !reflect.DeepEqual(a, []string{"// from in", "package a;", "public class A {", "}"}) {
		t.Fatalf("A.java = %q", a)
	}
	b := fs.files[filepath.Join("out", "b", "c", "B.java")]
	if !reflect.DeepEqual(b, []string{"// from in", "package b.c;", "public interface B {", "  void f();", "}"}) {
		t.Fatalf("B.java = %q", b)
	}
}

func TestSplit_ThreeUnitsExcludeForeignLines(t *testing.T) {
	fs := newMemFS()
	s, _ := newTestSplitter(fs)

	in := strings.Join([]string{
		"Here is the code:",
		"package p1;",
		"public class One {",
		"}",
		"some prose between units",
		"package p2;",
		"public class Two {",
		"}",
		"package p3;",
		"import java.util.List;",
		"public final class Three {",
		"}",
		"trailing prose",
	}, "\n")
	res := s.Split("in", in, "out")
	if len(res.Written) != 3 {
		t.Fatalf("expected 3 files, got %+v", res.Written)
	}
	for path, ls := range fs.files {
		for _, l := range ls {
			if strings.Contains(l, "prose") || strings.Contains(l, "Here is") {
				t.Fatalf("%s contains foreign line %q", path, l)
			}
		}
	}
	three := fs.files[filepath.Join("out", "p3", "Three.java")]
	if len(three) != 5 || three[2] != "import java.util.List;" {
		t.Fatalf("Three.java = %q", three)
	}
}

func TestSplit_RegionWithoutDeclarationCarriesOver(t *testing.T) {
	fs := newMemFS()
	s, con := newTestSplitter(fs)

	in := "package a;\n// nothing declared here\npackage b;\npublic class B {\n}\n"
	res := s.Split("in", in, "out")
	if len(res.Written) != 1 {
		t.Fatalf("expected 1 file, got %+v", res.Written)
	}
	got := fs.files[filepath.Join("out", "b", "B.java")]
	want := []string{"// from in", "package a;", "// nothing declared here", "package b;", "public class B {", "}"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("B.java = %q, want %q", got, want)
	}
	if len(con.failed) != 0 {
		t.Fatalf("expected no errors, got %v", con.failed)
	}
}

func TestSplit_NameBeforeFirstPackageKept(t *testing.T) {
	fs := newMemFS()
	s, _ := newTestSplitter(fs)

	in := "public class Orphan {\n}\npackage a;\npublic class A {\n}\n"
	res := s.Split("in", in, "out")
	if len(res.Written) != 1 {
		t.Fatalf("expected 1 file, got %+v", res.Written)
	}
	got, ok := fs.files[filepath.Join("out", "a", "Orphan.java")]
	if !ok {
		t.Fatalf("expected a/Orphan.java, got %v", fs.files)
	}
	want := []string{"// from in", "public class Orphan {", "}", "package a;", "public class A {", "}"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Orphan.java = %q, want %q", got, want)
	}
}

func TestSplit_NoPackageProducesNothing(t *testing.T) {
	fs := newMemFS()
	s, con := newTestSplitter(fs)

	res := s.Split("in", "just some text\npublic class Orphan {\n}\n", "out")
	if len(res.Written) != 0 || len(fs.files) != 0 {
		t.Fatalf("expected no output, got %+v", fs.files)
	}
	if len(con.writing)+len(con.failed) != 0 {
		t.Fatal("expected no console output")
	}
}

func TestSplit_UnmatchedBodyDropped(t *testing.T) {
	fs := newMemFS()
	s, _ := newTestSplitter(fs)

	res := s.Split("in", "int x = 1;\nclass NotPublic {\n}\n", "out")
	if len(res.Written) != 0 {
		t.Fatalf("expected no output, got %+v", res.Written)
	}
}

func TestSplit_WriteFailureContinues(t *testing.T) {
	fs := newMemFS()
	bad := filepath.Join("out", "a", "A.java")
	fs.fail[bad] = errors.New("disk full")
	s, con := newTestSplitter(fs)

	in := "package a;\npublic class A {\n}\npackage b;\npublic class B {\n}\n"
	res := s.Split("in", in, "out")
	if len(res.Failed) != 1 || res.Failed[0].Path != bad {
		t.Fatalf("Failed = %+v", res.Failed)
	}
	if len(res.Written) != 1 || res.Written[0].Path != filepath.Join("out", "b", "B.java") {
		t.Fatalf("Written = %+v", res.Written)
	}
	if len(con.failed) != 1 {
		t.Fatalf("expected one error line, got %v", con.failed)
	}
}

func TestSplit_ExtensionAndNilHeader(t *testing.T) {
	fs := newMemFS()
	s := &Splitter{
		Names:     MustNameMatcher(`class\s+(\w+)`),
		Extension: ".kt",
		FS:        fs,
		Console:   &recConsole{},
	}
	s.Split("in", "package k;\nclass K {\n}\n", "root")
	got, ok := fs.files[filepath.Join("root", "k", "K.kt")]
	if !ok {
		t.Fatalf("expected K.kt, got %v", fs.files)
	}
	if got[0] != "package k;" {
		t.Fatalf("expected no header, got %q", got)
	}
}

func TestSplit_DuplicateNameLastWins(t *testing.T) {
	fs := newMemFS()
	s, _ := newTestSplitter(fs)
	res := s.Split("in", "package a;\npublic class A {\n}\npackage a;\npublic class A {\n    int v;\n}\n", "root")
	if len(res.Written) != 2 {
		t.Fatalf("expected both units recorded, got %+v", res.Written)
	}
	got := fs.files[filepath.Join("root", "a", "A.java")]
	if !reflect.DeepEqual(got, []string{"// from in", "package a;", "public class A {", "    int v;", "}"}) {
		t.Fatalf("got %q", got)
	}
}

func TestSplit_EndToEndOnDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	s := &Splitter{
		Names:   MustNameMatcher(classPattern),
		Header:  func(label string) string { return "/*\n * from " + label + "\n */\n" },
		FS:      fsys.Disk{},
		Console: &recConsole{},
	}
	in := "package new.pkg;\npublic class Foo {\n}\n"
	s.Split("resp.txt", in, root)

	data, err := os.ReadFile(filepath.Join(root, "new", "pkg", "Foo.java"))
	if err != nil {
		t.Fatal(err)
	}
	want := "/*\n * from resp.txt\n */\npackage new.pkg;\npublic class Foo {\n}\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", string(data), want)
	}
}

func TestUnits_StateTransitions(t *testing.T) {
	m := &machine{names: MustNameMatcher(classPattern), ext: ".java"}
	steps := []struct {
		line string
		want State
	}{
		{"prose", Idle},
		{"package a;", AwaitingName},
		{"import x.Y;", AwaitingName},
		{"}", Idle},
		{"public class A {", Buffering},
		{"    void f() {", Buffering},
		{"    }", Buffering},
		{"}", Sealed},
		{"dropped", Sealed},
		{"package b;", AwaitingName},
		{"}", Idle},
		{"package c;", AwaitingName},
	}
	for i, st := range steps {
		m.step(st.line)
		if m.state != st.want {
			t.Fatalf("step %d (%q): state = %v, want %v", i, st.line, m.state, st.want)
		}
	}
	if len(m.units) != 1 || m.units[0].FileName != "A.java" {
		t.Fatalf("units = %+v", m.units)
	}
	// The closing brace seen while awaiting a name stays in the unit body.
	want := []string{"package a;", "import x.Y;", "}", "public class A {", "    void f() {", "    }", "}"}
	if !reflect.DeepEqual(m.units[0].Lines, want) {
		t.Fatalf("lines = %q, want %q", m.units[0].Lines, want)
	}
}

func TestPackagePath(t *testing.T) {
	cases := map[string]string{
		"package com.example;": "com/example",
		"package  a.b.c ;":     "a/b/c",
		"package single;":      "single",
		"package missing.semi": "missing/semi",
	}
	for in, want := range cases {
		if got := PackagePath(in); got != want {
			t.Errorf("PackagePath(%q) = %q, want %q", in, got, want)
		}
	}
}
