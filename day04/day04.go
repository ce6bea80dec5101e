// Package day04 scores scratchcards.
//
// A card line is "Card N: <winning numbers> | <numbers you have>".
// Part1 scores each card 2^(matches-1); Part2 counts the cards held once every
// card has won copies of the cards following it.
package day04

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

var (
	// ErrMalformedCard indicates a line that is not "Card N: ... | ...".
	ErrMalformedCard = errors.New("day04: malformed card line")

	// ErrPointsOverflow indicates a card whose score does not fit in an int.
	ErrPointsOverflow = errors.New("day04: card points overflow int")
)

// Card is one parsed scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers in Have that are also in Winning.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	matches := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			matches++
		}
	}

	return matches
}

// Points is 0 without matches, 2^(matches-1) otherwise.
// A card with more matches than an int has value bits returns ErrPointsOverflow.
func (c Card) Points() (int, error) {
	m := c.Matches()
	if m == 0 {
		return 0, nil
	}
	shift := m - 1
	if shift >= bits.UintSize {
		return 0, fmt.Errorf("%w: card %d has %d matches", ErrPointsOverflow, c.ID, m)
	}
	p, err := safecast.Conv[int](uint(1) << shift)
	if err != nil {
		return 0, fmt.Errorf("%w: card %d has %d matches: %w", ErrPointsOverflow, c.ID, m, err)
	}

	return p, nil
}

// ParseCard splits the line into header and the two number lists first,
// then parses each list on its own.
func ParseCard(line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' in %q", ErrMalformedCard, line)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("%w: bad header %q", ErrMalformedCard, header)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrMalformedCard, err)
	}
	winning, err := parseNumbers(left)
	if err != nil {
		return Card{}, err
	}
	have, err := parseNumbers(right)
	if err != nil {
		return Card{}, err
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCard, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// Parse parses every non-empty line of input.
func Parse(input string) ([]Card, error) {
	var cards []Card
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}

	return cards, nil
}

// Part1 sums the points of all cards.
func Part1(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		p, err := c.Points()
		if err != nil {
			return 0, err
		}
		sum += p
	}

	return sum, nil
}

// Part2 returns the total number of cards held after all copies are won.
// Card i with m matches adds its copy count to cards i+1..i+m; wins never
// extend past the last card.
func Part2(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for k := i + 1; k <= i+c.Matches() && k < len(cards); k++ {
			copies[k] += copies[i]
		}
	}

	return total, nil
}
