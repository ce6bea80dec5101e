// Package aoc2023 is a set of independent Advent of Code 2023 solvers.
//
// Every day lives in its own package and exposes Part1/Part2 functions that
// take the puzzle text and return the answer:
//
//	day01/  calibration values from plain and spelled-out digits
//	day02/  cube games checked against a bag
//	day03/  part numbers and gear ratios of an engine schematic
//	day04/  scratchcard points and copy cascade
//	day05/  seed locations through an almanac of range maps
//
// Shared building blocks:
//
//	grid/   typed-cell grid parsed from a character map
//	input/  dataset loader (input/<file> or dayNN/input/<file>)
//
// Each (day, part) pair has its own binary under cmd/, configured by an
// optional aoc.toml:
//
//	go run ./cmd/day03-part2
//	answer: <value>
//
// cmd/day02-gen writes a large random day 2 input for timing:
//
//	go run ./cmd/day02-gen --seed 1 -n 100000 -o day02/input/input_big.txt
package aoc2023
