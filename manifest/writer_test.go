package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

const chatroomJSON = `{
  "name": "聊天室",
  "id": "chatroom",
  "author": "heweile",
  "version": "1.0",
  "level": 1,
  "description": "MoviePilot在线聊天室，支持实时聊天、表情和在线状态显示",
  "icon": "chat_bubble",
  "main": "chatroom",
  "reload": true,
  "installed": true,
  "scope": [],
  "history": {
    "v1.0": "首次发布，支持在线聊天功能，表情符号，在线状态和链接自动识别"
  }
}
`

func TestWriteDefaultCreatesPackageJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDefault(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "package.json"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestWriteDefaultMatchesLiteralBytes(t *testing.T) {
	path, err := WriteDefault(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, chatroomJSON, string(data))
}

func TestWriteDefaultIsValidUTF8JSON(t *testing.T) {
	path, err := WriteDefault(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, utf8.Valid(data))

	got := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &got))

	want := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(chatroomJSON), &want))
	require.Equal(t, want, got)
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than nothing"), 0644))

	_, err := WriteDefault(dir)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = WriteDefault(dir)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, chatroomJSON, string(first))
	require.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFailsWhenParentIsNotADirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := WriteDefault(blocker)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(blocker, DefaultFileName))
	require.Error(t, err)
}

func TestWriteFailsInReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	defer os.Chmod(dir, 0755)

	_, err := WriteDefault(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrPermission))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEncodeNilScopeAsEmptyArray(t *testing.T) {
	m := Chatroom()
	m.Scope = nil

	data, err := Encode(m)
	require.NoError(t, err)
	require.Contains(t, string(data), `"scope": []`)
}

func TestWriteFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.json")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0600))
	link := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.Symlink("real.json", link))

	require.NoError(t, Write(link, Chatroom()))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "link must survive the write")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, chatroomJSON, string(data))

	info, err = os.Stat(target)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteKeepsExistingMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0640))
	require.NoError(t, os.Chmod(path, 0640))

	_, err := WriteDefault(dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestWriteNewFileMode(t *testing.T) {
	path, err := WriteDefault(t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
