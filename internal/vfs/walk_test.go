package vfs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTree() *FileSystem {
	return New(WithTree(
		NewDir(Entries{
			"b": NewDir(Entries{"y.txt": NewFile("y"), "x.txt": NewFile("x")}),
			"a.txt": NewFile("a"),
			"c":     NewDir(Entries{"z": NewDir(nil)}),
		}),
		NewDir(nil),
	))
}

func TestWalk_Order(t *testing.T) {
	fs := smallTree()

	var visited []string
	err := fs.Walk("~", func(p Path, _ *Node) error {
		visited = append(visited, p.String())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"~", "~/a.txt", "~/b", "~/b/x.txt", "~/b/y.txt", "~/c", "~/c/z"}, visited)
}

func TestWalk_SkipDir(t *testing.T) {
	fs := smallTree()

	var visited []string
	err := fs.Walk("~", func(p Path, n *Node) error {
		visited = append(visited, p.String())
		if p.Name() == "b" || p.Name() == "a.txt" {
			return SkipDir
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"~", "~/a.txt", "~/b", "~/c", "~/c/z"}, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	fs := smallTree()
	boom := errors.New("boom")

	count := 0
	err := fs.Walk("~", func(p Path, _ *Node) error {
		count++
		if p.Name() == "b" {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, count)
}

func TestWalk_Missing(t *testing.T) {
	fs := smallTree()

	err := fs.Walk("ghost", func(Path, *Node) error { return nil })
	assert.ErrorIs(t, err, ErrNotExist)
	assert.EqualError(t, err, "ghost: No such file or directory")
}

func TestFind(t *testing.T) {
	fs := New()

	assert.Equal(t, []string{"~/documents/project_alpha/notes.txt", "~/notes.txt"}, fs.Find("notes", "~"))
	assert.Equal(t, fs.Find("notes", "~"), fs.Find("NOTES", "~"))
	assert.Equal(t, []string{"/var/log", "/var/log/auth.log", "/var/log/syslog"}, fs.Find("log", "/"))
	assert.Empty(t, fs.Find("log", "ghost"))
	assert.NotContains(t, fs.Find("", "/var"), "/var")
}

func TestSnapshot_IsIndependent(t *testing.T) {
	fs := New()
	snap := fs.Snapshot()

	_, err := fs.Remove("documents", true)
	require.NoError(t, err)
	_, err = fs.ChangeDir("/tmp")
	require.NoError(t, err)

	assert.True(t, snap.NodeAt("documents").IsDir())
	assert.True(t, snap.IsCorrupted("documents/project_alpha"))
	assert.Equal(t, "~", snap.CurrentPathString())
}

func ExampleFileSystem() {
	fs := New()

	if _, err := fs.ChangeDir("documents"); err != nil {
		fmt.Println(err)
	}
	items, _ := fs.List("")
	fmt.Println(fs.CurrentPathString(), items)

	_, err := fs.ChangeDir("personal_journal.txt")
	fmt.Println(err)

	msg, _ := fs.Move("personal_journal.txt", "/tmp")
	fmt.Println(msg, fs.IsCorrupted("/tmp/personal_journal.txt"))
	// Output:
	// ~/documents [personal_journal.txt project_alpha/ work_report.docx]
	// cd: personal_journal.txt: Not a directory
	// Moved 'personal_journal.txt' to '/tmp' true
}
