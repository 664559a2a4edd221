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

// Package prefs facilitates the storage of preferential values in the
// chroma system. It is a layer above the toml package and the preferences
// file is therefore a TOML file.
//
// Preference values are live values. The Bool, Int and String types can be
// used anywhere in the code and the value retrieved with the Get() function.
// Values can be registered with a Disk instance, in which case the value will
// be loaded from and saved to the preferences file.
//
// Callbacks can be registered with the SetHookPre() and SetHookPost()
// functions. The pre hook can be used to reject a new value by returning an
// error.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. A command line value supersedes the value
// in the preferences file but is not saved unless the value is changed
// again. The format of the string is a list of key/value pairs, the key and
// value separated by a double colon and the pairs by semi-colons:
//
//	"vm.maxsteps::100000; vm.echolog::true"
package prefs
