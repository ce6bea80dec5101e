package day02

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parser turns game lines into Games. It compiles its patterns once;
// a single Parser can be reused for any number of inputs.
type Parser struct {
	header *regexp.Regexp
	cubes  *regexp.Regexp
}

// NewParser returns a ready-to-use Parser.
func NewParser() *Parser {
	return &Parser{
		header: regexp.MustCompile(`^Game\s+([0-9]+):`),
		cubes:  regexp.MustCompile(`([0-9]+)\s*([a-z]+)`),
	}
}

// ParseGame parses a single line.
func (p *Parser) ParseGame(line string) (Game, error) {
	m := p.header.FindStringSubmatchIndex(line)
	if m == nil {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, line)
	}
	id, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(line[m[1]:], ";") {
		var set CubeSet
		for _, c := range p.cubes.FindAllStringSubmatch(draw, -1) {
			n, err := strconv.Atoi(c[1])
			if err != nil {
				return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
			}
			color, err := ParseColor(c[2])
			if err != nil {
				return Game{}, fmt.Errorf("game %d: %w", id, err)
			}
			set.Add(color, n)
		}
		g.Draws = append(g.Draws, set)
	}

	return g, nil
}

// Parse parses every non-empty line of input.
func (p *Parser) Parse(input string) ([]Game, error) {
	var games []Game
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		g, err := p.ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}
