/*
Package casella is a toolbox for combinatorial backtracking search.

Casella grew out of programs for enumerating Latin squares and Sudoku
grids. Its centerpiece is a pair of removable-set containers, tailored
to the erase/restore rhythm of recursive backtracking. Package structure
is as follows:

■ removable: Package removable implements the set containers: a fixed
universe of candidate values which is shrunk while the search descends and
grown back, in exactly reverse order, while it backtracks.

■ seq: Package seq provides small sequence utilities (deduplication,
formatting, permutations) used by the containers and by client code.

■ grid: Package grid implements a dense matrix of cell values, together
with a text reader and writer for grid files.

■ solver: Package solver implements backtracking enumerators for Latin
squares and Sudoku grids on top of the removable sets.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package casella
