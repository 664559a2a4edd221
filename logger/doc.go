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

// Package logger is the central log repository for chroma. There is a single
// central log which is accessed through the package level functions. Entries
// are added with Log() and Logf():
//
//	logger.Log(logger.Allow, "cpu", "halted")
//	logger.Logf(logger.Allow, "memory", "output materialised (%dx%d)", w, h)
//
// The first argument is an implementation of the Permission interface. The
// Allow value should be used when a log entry should always be made.
//
// Consecutive entries with the same tag and detail are folded into one entry
// with a repeat count. The number of entries is capped and old entries are
// dropped when the cap is reached.
//
// Instances of the Logger type can be created with NewLogger(). This is
// useful for testing and for short-lived logs that should not pollute the
// central log.
package logger
