// Package day03 finds the part numbers and gear ratios of an engine schematic.
//
// What:
//
//   - Scan walks a grid.Grid once, row by row, left to right, assembling
//     multi-digit numbers and recording which marker and gear cells touch them
//     (8-neighbourhood, including the diagonal columns just before the first
//     digit and just after the last one).
//   - Result.PartSum adds up every number touching at least one marker or gear.
//   - Result.GearRatioSum adds up, over gears touching exactly two numbers, the
//     product of those two numbers.
//
// Both answers come out of the same single pass; Part1 and Part2 only differ
// in which sum they read from the Result.
//
// Complexity:
//
//   - Scan: O(W×H) time, O(G + N) memory (G gears, N numbers).
package day03
