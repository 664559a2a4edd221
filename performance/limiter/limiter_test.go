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

package limiter_test

import (
	"testing"
	"time"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/performance/limiter"
	"github.com/aryansw/chroma-vm/test"
)

func TestInvalidRate(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))

	lim, err := limiter.NewLimiter(10)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectSuccess(t, curated.Is(lim.SetRate(-1), limiter.InvalidRate))
	test.ExpectEquality(t, lim.Rate(), 10)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five triggers at 100 per second can't happen in less than 50ms
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}
