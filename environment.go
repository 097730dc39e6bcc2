// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Environment answers the filesystem questions the path operations need.
type Environment interface {
	// AbsPath returns the absolute, lexically clean form of path.
	AbsPath(path string) (string, error)
	// RealPath returns path with symlinks resolved; a missing path
	// resolves to its absolute form.
	RealPath(path string) (string, error)
	// WorkingDirectory returns the current working directory.
	WorkingDirectory() (string, error)
}

// OSEnvironment resolves paths against the host filesystem.
type OSEnvironment struct{}

// AbsPath returns filepath.Abs of path.
func (OSEnvironment) AbsPath(path string) (string, error) {
	return filepath.Abs(path)
}

// RealPath resolves symlinks/junctions and falls back to absolute path for non-existing paths.
func (OSEnvironment) RealPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return filepath.Abs(resolved)
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// WorkingDirectory returns os.Getwd.
func (OSEnvironment) WorkingDirectory() (string, error) {
	return os.Getwd()
}

// FSEnvironment resolves paths inside an afero filesystem.
//
// Paths use host separators. Relative paths are taken from Dir.
type FSEnvironment struct {
	// Fs is the backing filesystem.
	Fs afero.Fs
	// Dir is the working directory; empty means the filesystem root.
	Dir string
}

// NewFSEnvironment creates an environment over fs with working directory dir.
func NewFSEnvironment(fs afero.Fs, dir string) *FSEnvironment {
	return &FSEnvironment{Fs: fs, Dir: dir}
}

// AbsPath joins relative paths to Dir and cleans the result.
func (e *FSEnvironment) AbsPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	dir, err := e.WorkingDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, path), nil
}

// RealPath resolves one level of symlink when Fs supports links.
//
// Missing paths resolve to their absolute form.
func (e *FSEnvironment) RealPath(path string) (string, error) {
	abs, err := e.AbsPath(path)
	if err != nil {
		return "", err
	}

	lst, ok := e.Fs.(afero.Lstater)
	if !ok {
		return abs, nil
	}

	info, _, err := lst.LstatIfPossible(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return abs, nil
		}

		return "", err
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return abs, nil
	}

	reader, ok := e.Fs.(afero.LinkReader)
	if !ok {
		return abs, nil
	}

	target, err := reader.ReadlinkIfPossible(abs)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(abs), target)
	}

	return filepath.Clean(target), nil
}

// WorkingDirectory returns Dir, or the root when Dir is empty.
//
// Dir must exist as a directory in Fs.
func (e *FSEnvironment) WorkingDirectory() (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = string(filepath.Separator)
	}

	ok, err := afero.DirExists(e.Fs, dir)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", &os.PathError{Op: "chdir", Path: dir, Err: os.ErrNotExist}
	}

	return filepath.Clean(dir), nil
}
