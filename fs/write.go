/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
)

// WriteIfChanged writes data to name unless the file already holds exactly
// data. The new content is written to a sibling temp file and renamed
// into place so readers never observe a partial artifact. It reports
// whether the file was written.
func WriteIfChanged(filesystem FileSystem, name string, data []byte, perm fs.FileMode) (bool, error) {
	if existing, err := filesystem.ReadFile(name); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	dir := filepath.Dir(name)
	if dir != "." && dir != "" {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	tmp := filepath.Join(dir, "."+filepath.Base(name)+".tmp")
	if err := filesystem.WriteFile(tmp, data, perm); err != nil {
		return false, fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := filesystem.Rename(tmp, name); err != nil {
		_ = filesystem.Remove(tmp)
		return false, fmt.Errorf("replacing %s: %w", name, err)
	}
	return true, nil
}
