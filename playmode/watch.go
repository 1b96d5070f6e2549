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

package playmode

import (
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prg"
)

// editors rarely write a file in one operation. wait for the dust to
// settle before reading
const settleDelay = 100 * time.Millisecond

// watchPRG reloads the program file whenever it changes on disk and sends
// the result down the reload channel. The returned function stops the
// watch.
//
// The watch is on the containing directory rather than the file itself;
// editors that write a temporary file and rename it over the original
// would otherwise detach the watch on the first save.
func watchPRG(filename string, reload chan *prg.PRG) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Watch(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(filename)

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Event:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if !ev.IsModify() && !ev.IsCreate() && !ev.IsRename() {
					continue
				}

				time.Sleep(settleDelay)

				p, err := prg.Load(filename)
				if err != nil {
					logger.Logf("playmode", "reload failed: %v", err)
					continue
				}

				// a stale pending reload is replaced, not queued behind
				select {
				case <-reload:
				default:
				}
				reload <- p

			case err, ok := <-watcher.Error:
				if !ok {
					return
				}
				logger.Logf("playmode", "watch: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
