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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var commandLineStack []map[string]string
var commandLineStackLock sync.Mutex

// PushCommandLineStack forwards command line values to the prefs system. A
// command line group is created for every call and the group remains in
// effect until PopCommandLineStack() is called.
//
// Values in the prefs string that are never requested by a Disk are
// reported by PopCommandLineStack().
func PushCommandLineStack(prefs string) {
	commandLineStackLock.Lock()
	defer commandLineStackLock.Unlock()

	cl := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if ok {
			cl[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the most recent command line group. The
// unused values of the group are returned as a prefs string, sorted by key.
func PopCommandLineStack() string {
	commandLineStackLock.Lock()
	defer commandLineStackLock.Unlock()

	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, popped[k]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// SizeCommandLineStack returns the number of groups in the command line
// stack.
func SizeCommandLineStack() int {
	commandLineStackLock.Lock()
	defer commandLineStackLock.Unlock()
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for the key in the most recent command
// line group. The value is removed from the group.
func GetCommandLinePref(key string) (bool, string) {
	commandLineStackLock.Lock()
	defer commandLineStackLock.Unlock()

	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
