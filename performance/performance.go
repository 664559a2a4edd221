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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/debugger/govern"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/memory"
)

// sentinal error returned by Run() loop.
const timedOut = "performance: timed out"

// Check the performance of the virtual machine using the supplied program.
//
// The program will run for the specified duration. If the program halts before
// the time has elapsed it is reloaded and run again. A cpu profile, memory
// profile and trace (or a combination of those) are created as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, program *memory.Raster, input *memory.Raster, limits hardware.Limits, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m, err := hardware.NewMachine(program, input, limits)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// total instructions executed over all runs of the program
	var numInstructions int
	var numRuns int

	runner := func() error {
		// signals true when duration has expired
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		for {
			err := m.Run(func() (govern.State, error) {
				performanceBrake++
				if performanceBrake >= hardware.PerformanceBrake {
					performanceBrake = 0
					select {
					case <-timerChan:
						return govern.Ending, curated.Errorf(timedOut)
					default:
					}
				}
				return govern.Running, nil
			})

			numInstructions += m.Steps()
			numRuns++

			if err != nil {
				return err
			}

			m.Reload()
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	ips := CalcIPS(numInstructions, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f instructions per second (%d instructions in %.2f seconds, %d runs)\n",
		ips, numInstructions, dur.Seconds(), numRuns)))

	return nil
}
