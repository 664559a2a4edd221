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

package regression

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/paths"
)

// the location of the regression database and associated files
const (
	regressionPath     = "regression"
	regressionDBFile   = "db"
	regressionPrograms = "programs"
	regressionFails    = "fails"
)

// storeFile copies the image file into the regression store. the file is
// given a unique name and the path to the copy is returned. the filename can
// be a URL.
func storeFile(filename string) (string, error) {
	ld := imageloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return "", err
	}

	// images are decoded by content so the extension is informational only
	ext := strings.ToLower(filepath.Ext(ld.Filename))
	if !imageloader.IsImageFile(ld.Filename) {
		ext = ".img"
	}

	p, err := paths.ResourcePath(regressionPath, regressionPrograms, uuid.New().String()+ext)
	if err != nil {
		return "", curated.Errorf(RegressionError, err)
	}

	if err := os.WriteFile(p, ld.Data, 0o600); err != nil {
		return "", curated.Errorf(RegressionError, err)
	}

	return p, nil
}

// removeFile removes a file previously stored with storeFile(). a file that
// has already been removed is not an error.
func removeFile(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filename)
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(RegressionError, err)
	}
	return nil
}
