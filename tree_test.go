package papertrail

import (
	"strings"
	"testing"
)

type fakeEntry struct {
	name string
	path string
	typ  EntryType
}

func (f fakeEntry) Name() string        { return f.name }
func (f fakeEntry) Path() string        { return f.path }
func (f fakeEntry) Type() EntryType     { return f.typ }
func (f fakeEntry) DownloadURL() string { return "" }

func testEntries() []Entry {
	return []Entry{
		fakeEntry{"week2", "latex-files/week2", DirType},
		fakeEntry{"quiz2.tex", "latex-files/week2/quiz2.tex", FileType},
		fakeEntry{"latex-files", "latex-files", DirType},
		fakeEntry{"intro.tex", "latex-files/intro.tex", FileType},
		fakeEntry{"week1", "latex-files/week1", DirType},
		fakeEntry{"quiz1.tex", "latex-files/week1/quiz1.tex", FileType},
		fakeEntry{"notes.md", "latex-files/week1/notes.md", FileType},
	}
}

func TestBuildTree(t *testing.T) {
	root := BuildTree(testEntries())

	if len(root.Children) != 1 {
		t.Fatalf("unexpected number of top level nodes: %v", len(root.Children))
	}

	top := root.Children[0]
	if top.Name() != "latex-files" || top.IsLeaf() {
		t.Fatalf("unexpected top node %q", top.Name())
	}
	if len(top.Children) != 3 {
		t.Errorf("unexpected number of children: %v", len(top.Children))
	}

	count := 0
	root.Walk(func(n *Node) error {
		count++
		if n.Name() == "quiz2.tex" && n.Parent.Name() != "week2" {
			t.Errorf("quiz2.tex attached to wrong parent %q", n.Parent.Name())
		}
		return nil
	})
	if count != len(testEntries()) {
		t.Errorf("walk visited %v nodes, expected %v", count, len(testEntries()))
	}
}

func TestBuildTreeOrphans(t *testing.T) {
	entries := []Entry{
		fakeEntry{"stray.tex", "elsewhere/stray.tex", FileType},
	}
	root := BuildTree(entries)

	if len(root.Children) != 1 {
		t.Fatalf("orphan entry lost")
	}
}

func TestFiltered(t *testing.T) {
	root := BuildTree(testEntries())

	quizzes := root.Filtered(IsQuizFile)
	count := 0
	quizzes.Walk(func(n *Node) error {
		if n.IsLeaf() {
			count++
			if !strings.HasSuffix(n.Name(), ".tex") {
				t.Errorf("unexpected leaf %q", n.Name())
			}
		}
		return nil
	})
	if count != 3 {
		t.Errorf("unexpected number of quiz files: %v", count)
	}

	// empty directories are dropped
	none := root.Filtered(MatchName("does-not-exist"))
	if len(none.Children) != 0 {
		t.Errorf("expected an empty tree")
	}

	specific := root.Filtered(IsQuizFile, MatchName("quiz1"))
	leaves := 0
	specific.Walk(func(n *Node) error {
		if n.IsLeaf() {
			leaves++
		}
		return nil
	})
	if leaves != 1 {
		t.Errorf("unexpected number of matches: %v", leaves)
	}
}

func TestSort(t *testing.T) {
	root := BuildTree(testEntries())
	root.Sort(DefaultSort)

	top := root.Children[0]
	names := make([]string, 0)
	for _, c := range top.Children {
		names = append(names, c.Name())
	}

	// directories first, then files, both by name
	want := []string{"week1", "week2", "intro.tex"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("unexpected order %v", names)
		}
	}
}

func TestOutline(t *testing.T) {
	root := BuildTree(testEntries())
	root.Sort(DefaultSort)

	full := root.Outline(nil)
	if len(full) != len(testEntries()) {
		t.Errorf("full outline has %v lines, expected %v", len(full), len(testEntries()))
	}
	if full[0] != "+ latex-files" {
		t.Errorf("unexpected first line %q", full[0])
	}

	// collapsed directories hide their children
	collapsed := root.Outline(func(n *Node) bool {
		return n.Name() != "week1"
	})
	for _, line := range collapsed {
		if strings.Contains(line, "quiz1.tex") {
			t.Errorf("collapsed directory leaked child: %v", collapsed)
		}
	}
	if len(collapsed) != len(full)-2 {
		t.Errorf("unexpected collapsed outline: %v", collapsed)
	}
}
