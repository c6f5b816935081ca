package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/heweile/MoviePilot-Plugins/util"
)

const DefaultFileName = "package.json"

// Encode renders m as indented JSON. Non-ASCII text is kept as raw UTF-8.
func Encode(m Manifest) ([]byte, error) {
	if m.Scope == nil {
		m.Scope = []string{}
	}
	buf := bytes.NewBuffer([]byte{})
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("unable to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores m at path, replacing any existing file. A failed write
// leaves the previous file (or no file) behind. If path is a symlink the
// manifest is written to its target.
func Write(path string, m Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// WriteDefault writes the chatroom descriptor to dir/package.json.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, DefaultFileName)
	return path, Write(path, Chatroom())
}
