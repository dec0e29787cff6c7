// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// EnsureDir resolves dir to an absolute path and verifies that it exists and
// is a directory. Returns os.ErrInvalid for an empty path or a non-directory
// entry.
func EnsureDir(dir string) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	abs := dir
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		abs = filepath.Join(cwd, dir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", os.ErrInvalid
	}

	return abs, nil
}
