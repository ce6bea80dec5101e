// Package cli builds the command behind every solver binary: discover
// aoc.toml, load the day's dataset, run the solver, print "answer: <value>".
//
// A failure at any step is logged to stderr and returned, and Main turns it
// into exit status 1.
package cli
