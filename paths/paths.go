// This file is part of Chroma.
//
// Chroma is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource path. Directories in the path,
// but not the final element, are created as required.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(resource...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, base) {
		p = filepath.Join(base, p)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}

// ResourceDir is like ResourcePath() except that the final element is also
// treated as a directory and created if necessary.
func ResourceDir(resource ...string) (string, error) {
	p, err := ResourcePath(resource...)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}

	return p, nil
}
