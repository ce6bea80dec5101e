// Package grid turns a multi-line text "schematic" into a 2D grid of typed
// cells, ready for adjacency scans.
//
// What:
//
//   - Parse maps every character of every non-empty line to a Cell:
//     Empty, Digit(0-9), Gear (a distinguished marker) or Marker.
//   - Grid is read-only once built; every access is bounds-checked per row,
//     so ragged input degrades to "no neighbor" instead of panicking.
//   - Find lists all cells of a kind in row-major order.
//
// Why:
//
//   - Puzzle inputs are character maps where a number's meaning depends on
//     what surrounds it; a typed grid keeps the scanner free of rune tests.
//
// Options:
//
//   - ParseOptions.Empty: rune treated as an empty cell (default '.').
//   - ParseOptions.Gear:  rune treated as a gear (default '*').
//
// Errors:
//
//   - ErrBadOptions: Empty == Gear, or either of them is an ASCII digit.
//
// Complexity:
//
//   - Parse: O(N) time and memory, N = number of runes in the input.
//   - At / InBounds: O(1).
package grid
