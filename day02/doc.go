// Package day02 parses cube-drawing games and checks them against a bag.
//
// A game line looks like:
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
//
// Each ';'-separated group is one draw. Part1 sums the IDs of games that a
// bag could have produced; Part2 sums the power (product of per-colour maxima)
// of every game.
package day02
