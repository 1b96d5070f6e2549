// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"path"
)

// ResourcePath returns the path to the resource directory/file specified in
// the arguments, prepended with the appropriate config path. Directories on
// the way to the resource are created as required; the resource itself is
// not touched.
func ResourcePath(subPth string, file string) (string, error) {
	basePth, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}

	return path.Join(basePth, file), nil
}
