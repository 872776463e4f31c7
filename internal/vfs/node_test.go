package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_NilSafe(t *testing.T) {
	var n *Node

	assert.False(t, n.IsDir())
	assert.False(t, n.IsFile())
	assert.Nil(t, n.Child("x"))
	assert.Nil(t, n.Names())
	assert.Zero(t, n.Len())
	assert.Empty(t, n.Content())
	assert.Nil(t, n.Clone())
}

func TestNode_Kinds(t *testing.T) {
	dir := NewDir(Entries{"b": NewFile("2"), "a": NewDir(nil)})
	file := NewFile("hello")

	assert.Equal(t, KindDir, dir.Kind())
	assert.Equal(t, "directory", dir.Kind().String())
	assert.Equal(t, KindFile, file.Kind())
	assert.Equal(t, "file", file.Kind().String())

	assert.Equal(t, []string{"a", "b"}, dir.Names())
	assert.Equal(t, 2, dir.Len())
	assert.Empty(t, dir.Content())
	assert.Equal(t, "hello", file.Content())
	assert.Nil(t, file.Child("a"))
}

func TestNewDir_CopiesEntries(t *testing.T) {
	entries := Entries{"a": NewFile("")}
	dir := NewDir(entries)

	entries["b"] = NewFile("")

	assert.Equal(t, []string{"a"}, dir.Names())
}

func TestNode_CloneIsDeep(t *testing.T) {
	orig := NewDir(Entries{
		"sub": NewDir(Entries{"f": NewFile("data")}),
	})

	clone := orig.Clone()
	clone.Child("sub").set("g", NewFile("new"))
	clone.Child("sub").remove("f")

	assert.Equal(t, []string{"f"}, orig.Child("sub").Names())
	assert.Equal(t, "data", orig.Child("sub").Child("f").Content())
	assert.Equal(t, []string{"g"}, clone.Child("sub").Names())
}
