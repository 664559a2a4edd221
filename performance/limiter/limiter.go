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

// Package limiter provides a rough and ready way of limiting the rate at which
// instructions are executed. Useful for watching a program run with the log
// echoed to the terminal.
//
// A new Limiter is created with the number of instructions per second:
//
//	lim, _ := limiter.NewLimiter(50)
//	defer lim.Stop()
//
// Execution can then be stalled with the Wait() function. For example:
//
//	for !m.Halted() {
//		lim.Wait()
//		m.Step()
//	}
package limiter

import (
	"time"

	"github.com/aryansw/chroma-vm/curated"
)

// InvalidRate is returned by NewLimiter() for a rate of zero or less.
const InvalidRate = "limiter: invalid rate (%d)"

// Limiter triggers at a fixed number of times per second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	if rate <= 0 {
		return nil, curated.Errorf(InvalidRate, rate)
	}
	return &Limiter{
		rate:   rate,
		ticker: time.NewTicker(period(rate)),
	}, nil
}

func period(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// SetRate changes the rate at which the Limiter triggers.
func (lim *Limiter) SetRate(rate int) error {
	if rate <= 0 {
		return curated.Errorf(InvalidRate, rate)
	}
	lim.rate = rate
	lim.ticker.Reset(period(rate))
	return nil
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has already happened and false if it
// is still yet to happen. Does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the Limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
