package util

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// StatIfExists lets you provide specific NotExist error handling
// Returns stat, true, nil if file exists
// Returns nil, false, nil if err == fs.ErrNotExist
// Returns nil, false, err if err && err != fs.ErrNotExist
//
func StatIfExists(path string) (os.FileInfo, bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return stat, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	return nil, false, err
}

// ReadFileIfExists returns contents of file at specified path as a byte array,
// while letting you provide specific NotExist error handling
// Returns []byte, true, nil if file exists, is normal, and can be read
// Returns nil, false, nil if err == fs.ErrNotExist
// Returns nil, false, err if err && err != fs.ErrNotExist
//
func ReadFileIfExists(path string) ([]byte, bool, error) {
	var (
		stat   os.FileInfo
		exists bool
		err    error
		file   *os.File
		bytes  []byte
	)

	if stat, exists, err = StatIfExists(path); !exists {
		return nil, exists, err
	}
	if !stat.Mode().IsRegular() {
		return nil, false, fmt.Errorf("file '%s': file not considered 'regular'", path)
	}
	// filepath.Clean to appease the gosec gods [G304 (CWE-22)]
	//
	if file, err = os.Open(filepath.Clean(path)); err == nil {
		defer func() { _ = file.Close() }()
		if bytes, err = io.ReadAll(file); err == nil {
			return bytes, true, nil
		}
	}
	return nil, false, err
}
