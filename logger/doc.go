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

// Package logger is the central log for the entire application. There is
// only one log and it is managed through the package level functions.
//
// Packages should log noteworthy events with a short tag naming the
// sub-system:
//
//	logger.Logf("kernal", "trap installed at %#04x", addr)
//
// Runs of identical entries are coalesced into a single entry with a repeat
// count. The log holds a fixed number of entries, discarding the oldest.
//
// A front-end can echo new entries to an io.Writer with SetEcho() or drain
// entries periodically with WriteRecent().
package logger
