package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_RootsAlwaysFail(t *testing.T) {
	inputs := []string{"/", "~", "~/", "documents/..", "scripts/../documents/.."}

	for _, input := range inputs {
		for _, recursive := range []bool{false, true} {
			fs := New()
			_, err := fs.Remove(input, recursive)
			assert.ErrorIs(t, err, ErrNotPermitted, input)
			assert.True(t, fs.NodeAt("~").IsDir())
			assert.True(t, fs.NodeAt("/").IsDir())
		}
	}
}

func TestRemove_Messages(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr error
		wantMsg string
	}{
		{"missing operand", "", ErrMissingOperand, "rm: missing operand"},
		{"dot", ".", ErrInvalidArgument, "rm: cannot remove '.': Invalid argument"},
		{"dot dot", "..", ErrInvalidArgument, "rm: cannot remove '..': Invalid argument"},
		{"slash", "/", ErrNotPermitted, "rm: cannot remove '/': Operation not permitted"},
		{"tilde", "~", ErrNotPermitted, "rm: cannot remove '~': Operation not permitted"},
		{"resolves to home", "scripts/..", ErrNotPermitted,
			"rm: cannot remove 'scripts/..' (resolved to root or home): Operation not permitted"},
		{"missing", "ghost", ErrNotExist, "rm: cannot remove 'ghost': No such file or directory"},
		{"missing parent", "ghost/x", ErrNotExist, "rm: cannot remove 'ghost/x': No such file or directory"},
		{"non-empty", "scripts", ErrNotEmpty,
			"rm: cannot remove 'scripts': Directory not empty (use -r for recursive)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := New()
			_, err := fs.Remove(tt.arg, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRemove_NonEmptyScenario(t *testing.T) {
	fs := New()

	_, err := fs.Remove("documents", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Directory not empty")

	msg, err := fs.Remove("documents", true)
	require.NoError(t, err)
	assert.Equal(t, "Removed 'documents'", msg)

	_, ok := fs.List("documents")
	assert.False(t, ok)
}

func TestRemove_FilesAndEmptyDirs(t *testing.T) {
	fs := New()

	_, err := fs.Remove("notes.txt", false)
	require.NoError(t, err)
	assert.Nil(t, fs.NodeAt("notes.txt"))

	_, err = fs.MakeDir("empty")
	require.NoError(t, err)
	_, err = fs.Remove("empty", false)
	require.NoError(t, err)
	assert.Nil(t, fs.NodeAt("empty"))
}

func TestRemove_PurgesCorruptionBelow(t *testing.T) {
	fs := New()
	require.True(t, fs.IsCorrupted("~/documents/personal_journal.txt"))
	require.True(t, fs.IsCorrupted("~/documents/project_alpha"))

	_, err := fs.Remove("documents", true)
	require.NoError(t, err)

	assert.False(t, fs.IsCorrupted("~/documents/personal_journal.txt"))
	assert.False(t, fs.IsCorrupted("~/documents/project_alpha"))
	assert.Equal(t, []string{"/", "/var/log/auth.log", "~/scripts/exploit.py"}, fs.CorruptedPaths())

	// A recreated item starts clean.
	_, err = fs.MakeDirAll("documents/project_alpha")
	require.NoError(t, err)
	assert.False(t, fs.IsCorrupted("~/documents/project_alpha"))
}

func TestRemove_RepairsCwd(t *testing.T) {
	fs := New()
	_, err := fs.ChangeDir("documents/project_alpha")
	require.NoError(t, err)

	_, err = fs.Remove("~/documents", true)
	require.NoError(t, err)

	assert.Equal(t, "~", fs.CurrentPathString())
	assert.True(t, fs.CurrentDirNode().IsDir())
}

func TestMove_CorruptionFollowsFile(t *testing.T) {
	fs := New()
	require.True(t, fs.IsCorrupted("scripts/exploit.py"))

	msg, err := fs.Move("scripts/exploit.py", "scripts/payload.py")
	require.NoError(t, err)
	assert.Equal(t, "Moved 'scripts/exploit.py' to 'scripts/payload.py'", msg)

	assert.False(t, fs.IsCorrupted("scripts/exploit.py"))
	assert.True(t, fs.IsCorrupted("scripts/payload.py"))
	assert.Nil(t, fs.NodeAt("scripts/exploit.py"))
	content, ok := fs.ReadContent("scripts/payload.py")
	require.True(t, ok)
	assert.Equal(t, "print('Executing exploit... Access granted.')", content)
}

func TestMove_IntoExistingDirectory(t *testing.T) {
	fs := New()

	_, err := fs.Move("notes.txt", "documents")
	require.NoError(t, err)

	assert.Nil(t, fs.NodeAt("notes.txt"))
	assert.True(t, fs.NodeAt("documents/notes.txt").IsFile())
	assert.True(t, fs.NodeAt("documents").IsDir())
}

func TestMove_CorruptedFileIntoDirectory(t *testing.T) {
	fs := New()

	_, err := fs.Move("/var/log/auth.log", "/tmp")
	require.NoError(t, err)

	assert.False(t, fs.IsCorrupted("/var/log/auth.log"))
	assert.True(t, fs.IsCorrupted("/tmp/auth.log"))
}

func TestMove_DirectoryRekeysDescendants(t *testing.T) {
	fs := New()

	_, err := fs.Move("documents", "docs")
	require.NoError(t, err)

	assert.True(t, fs.IsCorrupted("~/docs/project_alpha"))
	assert.True(t, fs.IsCorrupted("~/docs/personal_journal.txt"))
	assert.False(t, fs.IsCorrupted("~/documents/project_alpha"))
	assert.False(t, fs.IsCorrupted("~/documents/personal_journal.txt"))
}

func TestMove_CwdFollowsDirectory(t *testing.T) {
	fs := New()
	_, err := fs.ChangeDir("documents/project_alpha")
	require.NoError(t, err)

	_, err = fs.Move("~/documents", "~/docs")
	require.NoError(t, err)

	assert.Equal(t, "~/docs/project_alpha", fs.CurrentPathString())
	assert.True(t, fs.CurrentDirNode().IsDir())
}

func TestMove_SelfIsNoop(t *testing.T) {
	fs := New()

	for _, tc := range [][2]string{{"notes.txt", "notes.txt"}, {"documents", "~"}, {"scripts", "scripts/.."}} {
		_, err := fs.Move(tc[0], tc[1])
		require.NoError(t, err, tc)
	}

	assert.True(t, fs.NodeAt("notes.txt").IsFile())
	assert.True(t, fs.NodeAt("documents").IsDir())
	assert.True(t, fs.IsCorrupted("documents/project_alpha"))
}

func TestMove_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, fs *FileSystem)
		src     string
		dst     string
		wantErr error
		wantMsg string
	}{
		{
			name: "missing operand", src: "notes.txt", dst: "",
			wantErr: ErrMissingOperand, wantMsg: "mv: missing source or destination operand",
		},
		{
			name: "root source", src: "/", dst: "x",
			wantErr: ErrNotPermitted, wantMsg: "mv: cannot move '/': Operation not permitted",
		},
		{
			name: "missing source", src: "ghost", dst: "x",
			wantErr: ErrNotExist, wantMsg: "mv: cannot stat 'ghost': No such file or directory",
		},
		{
			name: "invalid destination parent", src: "notes.txt", dst: "nowhere/x",
			wantErr: ErrNotDir, wantMsg: "mv: target 'nowhere/x' is not a directory or its parent path is invalid",
		},
		{
			name: "destination under a file", src: "notes.txt", dst: ".bash_history/x",
			wantErr: ErrNotDir, wantMsg: "mv: target '.bash_history/x' is not a directory or its parent path is invalid",
		},
		{
			name: "directory over file", src: "documents", dst: "notes.txt",
			wantErr: ErrNotDir, wantMsg: "mv: cannot overwrite non-directory 'notes.txt' with directory 'documents'",
		},
		{
			name: "file over directory",
			setup: func(t *testing.T, fs *FileSystem) {
				_, err := fs.MakeDirAll("documents/notes.txt")
				require.NoError(t, err)
			},
			src: "notes.txt", dst: "documents",
			wantErr: ErrIsDir, wantMsg: "mv: cannot overwrite directory 'notes.txt' with non-directory 'notes.txt'",
		},
		{
			name: "directory over non-empty directory",
			setup: func(t *testing.T, fs *FileSystem) {
				_, err := fs.MakeDirAll("box/scripts/keep")
				require.NoError(t, err)
			},
			src: "scripts", dst: "box",
			wantErr: ErrNotEmpty, wantMsg: "mv: cannot overwrite non-empty directory 'scripts'",
		},
		{
			name: "into itself", src: "documents", dst: "documents/project_alpha",
			wantErr: ErrInvalidArgument,
			wantMsg: "mv: cannot move 'documents' to a subdirectory of itself, 'documents/project_alpha'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := New()
			if tt.setup != nil {
				tt.setup(t, fs)
			}
			before := fs.Snapshot()

			_, err := fs.Move(tt.src, tt.dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, before.CorruptedPaths(), fs.CorruptedPaths())
			assert.Equal(t, before.Find("", "~"), fs.Find("", "~"))
		})
	}
}

func TestMove_DirectoryOverEmptyDirectory(t *testing.T) {
	fs := New()
	_, err := fs.MakeDirAll("box/scripts")
	require.NoError(t, err)

	_, err = fs.Move("scripts", "box")
	require.NoError(t, err)

	assert.Nil(t, fs.NodeAt("scripts"))
	assert.True(t, fs.NodeAt("box/scripts/exploit.py").IsFile())
	assert.True(t, fs.IsCorrupted("box/scripts/exploit.py"))
}

func TestMove_OverwriteDropsDestinationFlag(t *testing.T) {
	fs := New()
	require.True(t, fs.IsCorrupted("scripts/exploit.py"))

	_, err := fs.Move("notes.txt", "scripts/exploit.py")
	require.NoError(t, err)

	assert.False(t, fs.IsCorrupted("scripts/exploit.py"))
	content, ok := fs.ReadContent("scripts/exploit.py")
	require.True(t, ok)
	assert.Contains(t, content, "Remember to check the server logs.")
}

func TestMove_AcrossRoots(t *testing.T) {
	fs := New()

	_, err := fs.Move("~/downloads/important_data.csv", "/tmp/data.csv")
	require.NoError(t, err)

	assert.True(t, fs.NodeAt("/tmp/data.csv").IsFile())
	assert.Nil(t, fs.NodeAt("~/downloads/important_data.csv"))
}

func TestCopy(t *testing.T) {
	fs := New()

	msg, err := fs.Copy("notes.txt", "notes2.txt", false)
	require.NoError(t, err)
	assert.Equal(t, "Copied 'notes.txt' to 'notes2.txt'", msg)

	a, _ := fs.ReadContent("notes.txt")
	b, _ := fs.ReadContent("notes2.txt")
	assert.Equal(t, a, b)

	_, err = fs.WriteFile("notes2.txt", "changed")
	require.NoError(t, err)
	a, _ = fs.ReadContent("notes.txt")
	assert.NotEqual(t, "changed", a)
}

func TestCopy_DirectoryNeedsRecursive(t *testing.T) {
	fs := New()

	_, err := fs.Copy("documents", "backup", false)
	assert.ErrorIs(t, err, ErrIsDir)
	assert.EqualError(t, err, "cp: -r not specified; omitting directory 'documents'")

	_, err = fs.Copy("documents", "backup", true)
	require.NoError(t, err)

	assert.True(t, fs.IsCorrupted("backup/project_alpha"))
	assert.True(t, fs.IsCorrupted("backup/personal_journal.txt"))
	assert.True(t, fs.IsCorrupted("documents/project_alpha"))

	_, err = fs.ChangeDir("backup")
	require.NoError(t, err)
	_, err = fs.Touch("extra")
	require.NoError(t, err)
	assert.Nil(t, fs.NodeAt("~/documents/extra"))
}

func TestCopy_Refusals(t *testing.T) {
	fs := New()

	_, err := fs.Copy("notes.txt", "notes.txt", false)
	assert.EqualError(t, err, "cp: 'notes.txt' and 'notes.txt' are the same file")

	_, err = fs.Copy("documents", "documents/project_alpha", true)
	assert.EqualError(t, err, "cp: cannot copy a directory, 'documents', into itself, 'documents/project_alpha'")

	_, err = fs.Copy("/", "x", true)
	assert.EqualError(t, err, "cp: cannot copy '/': Operation not permitted")

	_, err = fs.Copy("ghost", "x", false)
	assert.EqualError(t, err, "cp: cannot stat 'ghost': No such file or directory")
}

func TestWriteFile(t *testing.T) {
	fs := New()

	msg, err := fs.WriteFile("/tmp/out.txt", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Wrote 5 bytes to '/tmp/out.txt'", msg)
	content, ok := fs.ReadContent("/tmp/out.txt")
	require.True(t, ok)
	assert.Equal(t, "hello", content)

	_, err = fs.WriteFile("/tmp", "x")
	assert.ErrorIs(t, err, ErrIsDir)

	_, err = fs.WriteFile("/", "x")
	assert.ErrorIs(t, err, ErrIsDir)

	_, err = fs.WriteFile("/nowhere/out.txt", "x")
	assert.ErrorIs(t, err, ErrNotExist)
	assert.EqualError(t, err, "write: /nowhere/out.txt: No such file or directory")
}

func TestMakeDirAll(t *testing.T) {
	fs := New()

	msg, err := fs.MakeDirAll("a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "Directory 'a/b/c' ready.", msg)
	assert.True(t, fs.NodeAt("a/b/c").IsDir())

	_, err = fs.MakeDirAll("a/b/c")
	require.NoError(t, err)

	_, err = fs.MakeDirAll("notes.txt/x")
	assert.ErrorIs(t, err, ErrNotDir)
}
