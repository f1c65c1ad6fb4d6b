package grid

import (
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/npillmayer/casella"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine-based reader for the grid text format:
// one grid row per line, cells separated by blanks, '.' or '0' for an
// empty cell, '#' starts a comment running to the end of the line.
//
//     # 4x4 Latin square with two givens
//     1 . . .
//     . . 3 .
//     . . . .
//     . . . .

// Token identifiers of the grid scanner.
const (
	tokNumber = iota + 1
	tokHole
	tokEOL
)

// newGridLexer compiles the DFA for the grid format.
func newGridLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[0-9]+`), makeToken(tokNumber))
	lexer.Add([]byte(`\.`), makeToken(tokHole))
	lexer.Add([]byte(`\n`), makeToken(tokEOL))
	lexer.Add([]byte(`[ \t\r]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Read parses a grid from its text format. All rows must have the same
// length; completely blank lines (or comment-only lines) are ignored.
func Read(input string) (*Grid, error) {
	lexer, err := newGridLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner([]byte(input + "\n")) // terminate last row
	if err != nil {
		return nil, err
	}
	var rows [][]casella.CellValue
	var row []casella.CellValue
	flush := func() {
		if len(row) > 0 {
			rows = append(rows, row)
			row = nil
		}
	}
	for {
		tok, err, eof := scan.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at line %d", ui.StartLine)
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		switch token.Type {
		case tokNumber:
			n, cerr := strconv.Atoi(token.Value.(string))
			if cerr != nil {
				return nil, cerr
			}
			row = append(row, casella.CellValue(n)) // 0 reads as an empty cell
		case tokHole:
			row = append(row, casella.NoValue)
		case tokEOL:
			flush()
		}
	}
	flush()
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	n := len(rows[0])
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("ragged grid: row %d has %d cells, expected %d", i+1, len(r), n)
		}
	}
	g := New(len(rows), n)
	for i, r := range rows {
		for j, v := range r {
			g.Set(i, j, v)
		}
	}
	tracer().Debugf("read a %d x %d grid with %d givens", g.M(), g.N(), g.FilledCount())
	return g, nil
}

// ReadFile parses a grid file in the text format understood by Read.
func ReadFile(filename string) (*Grid, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Read(string(data))
}
