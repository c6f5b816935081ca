package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const maxLinkHops = 40

// ResolveLinks follows symlinks at path until it reaches a non-link or a
// name that does not exist yet. Unlike filepath.EvalSymlinks, a dangling
// link resolves to the path it points at.
func ResolveLinks(path string) (string, error) {
	for i := 0; i < maxLinkHops; i++ {
		info, err := os.Lstat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return path, nil
			}
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("too many links resolving %s", path)
}

// WriteFileAtomic replaces the file at path with data. The bytes go to a
// temporary file next to the final target and are renamed over it, so a
// failure leaves the previous content (or no file) in place. Symlinks are
// written through, and an existing file keeps its permission bits; new
// files get perm.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	target, err := ResolveLinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save %s: %w", target, err)
	}
	return nil
}
