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

// Package statsview provides an HTTP server running locally offering
// runtime statistics. The underlying funcionality is provided by
// "github.com/go-echarts/statsview".
//
// The real server is built only when the statsview build constraint is
// present; without it the Launch() function is a stub and Available()
// returns false.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12064/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12064/debug/pprof/
package statsview
