package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/casella/grid"
	"github.com/npillmayer/casella/solver"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users load grid files and
// enumerate, count or sample their completions to Latin squares or
// Sudoku grids.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gridf := flag.String("grid", "", "Initial grid file to load")
	boxed := flag.Bool("boxes", false, "Enforce the Sudoku box constraint")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to casella") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("casella> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:  repl,
		boxed: *boxed,
	}
	if *gridf != "" {
		intp.load(*gridf)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	grid  *grid.Grid
	boxed bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		quit, err := intp.Execute(args[0], args[1:])
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single REPL command.
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "help":
		intp.help()
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: load <file>")
		}
		return false, intp.load(args[0])
	case "show":
		g, err := intp.loaded()
		if err != nil {
			return false, err
		}
		pterm.Println(g.String())
	case "boxes":
		if len(args) == 1 {
			intp.boxed = args[0] == "on"
		}
		pterm.Info.Println(fmt.Sprintf("box constraint: %v", intp.boxed))
	case "count":
		s, err := intp.newSolver()
		if err != nil {
			return false, err
		}
		start := time.Now()
		cnt := s.Count()
		pterm.Info.Println(fmt.Sprintf("%d completions (%v)", cnt, time.Since(start)))
	case "solve":
		s, err := intp.newSolver()
		if err != nil {
			return false, err
		}
		sol, ok := s.First()
		if !ok {
			return false, fmt.Errorf("no completion exists")
		}
		pterm.Println(sol.String())
	case "sample":
		k := 1
		if len(args) == 1 {
			var err error
			if k, err = strconv.Atoi(args[0]); err != nil {
				return false, fmt.Errorf("usage: sample <count>")
			}
		}
		s, err := intp.newSolver()
		if err != nil {
			return false, err
		}
		sols := s.Sample(k, uint64(time.Now().UnixNano()), 100*k)
		for n, g := range sols {
			pterm.Info.Println(fmt.Sprintf("sample %d:", n+1))
			pterm.Println(g.String())
		}
		if len(sols) < k {
			pterm.Info.Println(fmt.Sprintf("only %d distinct completions surfaced", len(sols)))
		}
	case "trace":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: trace Debug|Info|Error")
		}
		tracer().SetTraceLevel(tracing.TraceLevelFromString(args[0]))
	case "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Println(`load <file>     load a grid file
show            print the current grid
boxes [on|off]  toggle the Sudoku box constraint
solve           print the first completion
count           count all completions
sample <k>      print k random completions
trace <level>   set trace level [Debug|Info|Error]
quit            exit`)
}

func (intp *Intp) load(filename string) error {
	g, err := grid.ReadFile(filename)
	if err != nil {
		return err
	}
	intp.grid = g
	tracer().Infof("loaded a %d x %d grid with %d givens", g.M(), g.N(), g.FilledCount())
	return nil
}

func (intp *Intp) loaded() (*grid.Grid, error) {
	if intp.grid == nil {
		return nil, fmt.Errorf("no grid loaded, use: load <file>")
	}
	return intp.grid, nil
}

// newSolver creates a fresh solver for the loaded grid; solvers are
// cheap, and a fresh one picks up grid and box-constraint changes.
func (intp *Intp) newSolver() (*solver.Solver, error) {
	g, err := intp.loaded()
	if err != nil {
		return nil, err
	}
	var opts []solver.Option
	if intp.boxed {
		opts = append(opts, solver.WithBoxes())
	}
	return solver.New(g.Copy(), opts...)
}
