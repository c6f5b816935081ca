package util

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
)

// Exists reports whether anything is present at filename. Stat errors
// other than not-exist count as present.
func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// IsDir reports whether path is a directory. Unreadable paths are not.
func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

// FileSize returns the size of path in bytes, or 0 if it cannot be read.
func FileSize(path string) uint64 {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(fileInfo.Size())
}

// SHA1 hashes the whole file. Manifests are small enough that there is
// no point sampling.
func SHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	s := sha1.New()
	if _, err := io.Copy(s, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", s.Sum(nil)), nil
}
