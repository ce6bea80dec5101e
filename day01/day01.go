// Package day01 recovers calibration values: the first and last digit of
// each line, read either as plain digits or also as spelled-out words.
package day01

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDigits indicates a non-empty line without any digit to read.
var ErrNoDigits = errors.New("day01: line has no digits")

// Extractor pulls the digits out of a line, left to right.
// Build one with DigitsOnly or DigitsAndWords and reuse it for every line.
type Extractor struct {
	words []string // words[d-1] spells digit d; nil disables words
}

// DigitsOnly returns an Extractor that only reads ASCII digits.
func DigitsOnly() *Extractor {
	return &Extractor{}
}

// DigitsAndWords returns an Extractor that also reads "one" through "nine".
// Words may overlap: "twone" yields 2 then 1.
func DigitsAndWords() *Extractor {
	return &Extractor{
		words: []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	}
}

// Extract returns every digit found in line, in order of appearance.
func (e *Extractor) Extract(line string) []int {
	var digits []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))

			continue
		}
		for d, w := range e.words {
			if strings.HasPrefix(line[i:], w) {
				digits = append(digits, d+1)

				break
			}
		}
	}

	return digits
}

// CalibrationSum adds up first*10+last over every non-empty line of input.
// A line yielding no digit stops the sum with ErrNoDigits.
func CalibrationSum(input string, e *Extractor) (int, error) {
	sum := 0
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		digits := e.Extract(line)
		if len(digits) == 0 {
			return 0, fmt.Errorf("line %d: %w", i+1, ErrNoDigits)
		}
		sum += digits[0]*10 + digits[len(digits)-1]
	}

	return sum, nil
}

// Part1 sums calibration values made of plain digits.
func Part1(input string) (int, error) {
	return CalibrationSum(input, DigitsOnly())
}

// Part2 sums calibration values where digits may also be spelled out.
func Part2(input string) (int, error) {
	return CalibrationSum(input, DigitsAndWords())
}
