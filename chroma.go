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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/aryansw/chroma-vm/assembler"
	"github.com/aryansw/chroma-vm/debugger"
	"github.com/aryansw/chroma-vm/debugger/govern"
	"github.com/aryansw/chroma-vm/debugger/terminal"
	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm"
	"github.com/aryansw/chroma-vm/debugger/terminal/plainterm"
	"github.com/aryansw/chroma-vm/digest"
	"github.com/aryansw/chroma-vm/disassembly"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/preferences"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/logger"
	"github.com/aryansw/chroma-vm/modalflag"
	"github.com/aryansw/chroma-vm/performance"
	"github.com/aryansw/chroma-vm/performance/limiter"
	"github.com/aryansw/chroma-vm/prefs"
	"github.com/aryansw/chroma-vm/regression"
	"github.com/aryansw/chroma-vm/statsview"
	"github.com/aryansw/chroma-vm/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the debugger and the regression runner both handle
	// interrupts themselves.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			exitVal = 1
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when the program should quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "ASM", "DEBUG", "REGRESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "ASM":
		err = asm(md)

	case "DEBUG":
		err = debug(md, sync)

	case "REGRESS":
		err = regress(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// vmFlags are the flags common to every mode that creates a machine.
type vmFlags struct {
	input      *string
	maxSteps   *int
	stackDepth *int
	log        *bool
	prefs      *string
}

func addVMFlags(md *modalflag.Modes) vmFlags {
	return vmFlags{
		input:      md.AddString("input", "", "input image made available to the program"),
		maxSteps:   md.AddInt("maxsteps", -1, "maximum number of instructions to execute (0 is unbounded)"),
		stackDepth: md.AddInt("stackdepth", -1, "maximum depth of the stack (0 is unbounded)"),
		log:        md.AddBool("log", false, "echo debugging log to stderr"),
		prefs:      md.AddString("prefs", "", "preferences for this session. eg. \"vm.maxsteps::1000; output.output::out.png\""),
	}
}

// preferences returns the VM preferences with any command line overrides
// applied. the returned function must be called when the preferences are no
// longer required.
func (f vmFlags) preferences() (*preferences.Preferences, func(), error) {
	prefs.PushCommandLineStack(*f.prefs)
	done := func() {
		prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		done()
		return nil, nil, err
	}

	if *f.log {
		logger.SetEcho(os.Stderr)
	}

	return p, done, nil
}

func (f vmFlags) limits(p *preferences.Preferences) hardware.Limits {
	limits := hardware.LimitsFromPreferences(p)
	if *f.maxSteps >= 0 {
		limits.MaxSteps = *f.maxSteps
	}
	if *f.stackDepth >= 0 {
		limits.StackDepth = *f.stackDepth
	}
	return limits
}

func (f vmFlags) loadInput() (*memory.Raster, error) {
	if *f.input == "" {
		return nil, nil
	}
	return imageloader.Load(*f.input, memory.LabelInput)
}

func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("program image required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	vf := addVMFlags(md)
	output := md.AddString("output", "", "filename for the output image (default from preferences)")
	programOutput := md.AddString("program", "", "filename for the mutated program image (default from preferences)")
	rate := md.AddInt("rate", 0, "limit execution to number of instructions per second (0 is unlimited)")
	showDigest := md.AddBool("digest", false, "print the result digest on completion")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	pref, done, err := vf.preferences()
	if err != nil {
		return err
	}
	defer done()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	program, err := imageloader.Load(filename, memory.LabelProgram)
	if err != nil {
		return err
	}

	input, err := vf.loadInput()
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(program, input, vf.limits(pref))
	if err != nil {
		return err
	}

	var continueCheck func() (govern.State, error)
	if *rate > 0 {
		lim, err := limiter.NewLimiter(*rate)
		if err != nil {
			return err
		}
		defer lim.Stop()
		continueCheck = func() (govern.State, error) {
			lim.Wait()
			return govern.Running, nil
		}
	}

	if err := m.Run(continueCheck); err != nil {
		return err
	}

	if m.Mem.Output != nil {
		fn := *output
		if fn == "" {
			fn = pref.Output.Get().(string)
		}
		if err := imageloader.Save(fn, m.Mem.Output); err != nil {
			return err
		}
	}

	fn := *programOutput
	if fn == "" {
		fn = pref.ProgramOutput.Get().(string)
	}
	if err := imageloader.Save(fn, m.Mem.Program); err != nil {
		return err
	}

	if *showDigest {
		md.Output.Write([]byte(fmt.Sprintf("%s\n", digest.Result(m.Mem.Program, m.Mem.Output))))
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "including bytecode in disassembly")
	compress := md.AddBool("compress", true, "compress runs of identical words")
	grep := md.AddString("grep", "", "only show entries matching the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromFile(filename)
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Compress: *compress,
	})
}

func asm(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "filename for the program image (default is the source filename with a .png extension)")

	md.AdditionalHelp(
		`The source file contains one instruction per line. Comments begin with a semicolon.
Labels end with a colon and can be used with the LA pseudo-instruction and with the
x() and y() immediates. The .width directive sets the width of the program image and
must appear before the first instruction. The .word directive places raw data.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	program, err := assembler.AssembleFile(filename)
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.png", strings.TrimSuffix(filename, filepath.Ext(filename)))
	}

	if err := imageloader.Save(fn, program); err != nil {
		return err
	}

	md.Output.Write([]byte(fmt.Sprintf("%dx%d program written to %s\n", program.Width(), program.Height(), fn)))

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	vf := addVMFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddString("profile", "none", "run debugger through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pref, done, err := vf.preferences()
	if err != nil {
		return err
	}
	defer done()

	program, err := imageloader.Load(filename, memory.LabelProgram)
	if err != nil {
		return err
	}

	input, err := vf.loadInput()
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(program, input, vf.limits(pref))
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	case "COLOR":
		// the color terminal requires a real terminal for cbreak mode
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	}

	// turn off fallback ctrl-c handling. the debugger uses ctrl-c events to
	// interrupt execution without quitting the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(m, trm)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debug", dbg.Start)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	vf := addVMFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profiling data: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pref, done, err := vf.preferences()
	if err != nil {
		return err
	}
	defer done()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	program, err := imageloader.Load(filename, memory.LabelProgram)
	if err != nil {
		return err
	}

	input, err := vf.loadInput()
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, program, input, vf.limits(pref), *duration)
}

// yesReader always answers yes to the confirmation of a regression delete.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "fail on first execution error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		sync.state <- stateRequest{req: reqNoIntSig}

		return regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	input := md.AddString("input", "", "input image made available to the program")
	maxSteps := md.AddInt("maxsteps", 0, "maximum number of instructions to execute (default from preferences)")
	mode := md.AddString("mode", "RESULT", "digest mode: RESULT, TRACE")
	notes := md.AddString("notes", "", "additional annotation for the database")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	md.AdditionalHelp(
		`The RESULT digest is taken from the program and output images once the program has
halted. The TRACE digest additionally includes every executed instruction and so will
catch changes in behaviour that do not alter the final images.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	dm, err := regression.ParseDigestMode(*mode)
	if err != nil {
		return err
	}

	return regression.RegressAdd(md.Output, regression.NewRunRegression(filename, *input, *maxSteps, dm, *notes))
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		md.Output.Write([]byte(fmt.Sprintf("%s %s\n%s\n", version.ApplicationName, v, r)))
	} else {
		md.Output.Write([]byte(fmt.Sprintf("%s\n", version.String())))
	}

	return nil
}
