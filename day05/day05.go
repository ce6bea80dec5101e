// Package day05 follows seeds through an almanac of range maps to their
// locations.
//
// Input is a "seeds:" line followed by one section per map:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each triple maps [src, src+len) onto [dst, dst+len); values outside every
// range map to themselves.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAlmanac indicates input that does not follow the almanac layout.
var ErrMalformedAlmanac = errors.New("day05: malformed almanac")

// Range is one "dst src len" triple.
type Range struct {
	Dst, Src, Len int64
}

// RangeMap translates values from category From to category To.
type RangeMap struct {
	From, To string
	Ranges   []Range
}

// Lookup returns the value v maps to. The first matching range wins.
func (m RangeMap) Lookup(v int64) int64 {
	for _, r := range m.Ranges {
		if v >= r.Src && v < r.Src+r.Len {
			return v - r.Src + r.Dst
		}
	}

	return v
}

// Almanac is the seed list and the chain of maps, in input order.
type Almanac struct {
	Seeds []int64
	Maps  []RangeMap
}

// Location runs seed through every map in order.
func (a Almanac) Location(seed int64) int64 {
	v := seed
	for _, m := range a.Maps {
		v = m.Lookup(v)
	}

	return v
}

// LowestLocation returns the smallest location of any seed,
// and false when there are no seeds.
func (a Almanac) LowestLocation() (int64, bool) {
	if len(a.Seeds) == 0 {
		return 0, false
	}
	lowest := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		lowest = min(lowest, a.Location(s))
	}

	return lowest, true
}

// Parse reads an almanac.
func Parse(input string) (Almanac, error) {
	var (
		a      Almanac
		cur    = -1 // index into a.Maps of the section being read
		seeded bool
	)
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			cur = -1
		case strings.HasPrefix(line, "seeds:"):
			nums, err := parseInts(strings.TrimPrefix(line, "seeds:"))
			if err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", i+1, err)
			}
			a.Seeds = nums
			seeded = true
		case strings.HasSuffix(line, " map:"):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, " map:"), "-to-")
			if !ok {
				return Almanac{}, fmt.Errorf("line %d: %w: bad map header %q", i+1, ErrMalformedAlmanac, line)
			}
			a.Maps = append(a.Maps, RangeMap{From: from, To: to})
			cur = len(a.Maps) - 1
		default:
			if cur < 0 {
				return Almanac{}, fmt.Errorf("line %d: %w: range outside a map", i+1, ErrMalformedAlmanac)
			}
			nums, err := parseInts(line)
			if err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", i+1, err)
			}
			if len(nums) != 3 {
				return Almanac{}, fmt.Errorf("line %d: %w: want 3 numbers, got %d", i+1, ErrMalformedAlmanac, len(nums))
			}
			a.Maps[cur].Ranges = append(a.Maps[cur].Ranges, Range{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
	}
	if !seeded {
		return Almanac{}, fmt.Errorf("%w: no seeds line", ErrMalformedAlmanac)
	}

	return a, nil
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	nums := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAlmanac, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// Part1 returns the lowest location number of any initial seed.
func Part1(input string) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	lowest, ok := a.LowestLocation()
	if !ok {
		return 0, fmt.Errorf("%w: no seeds", ErrMalformedAlmanac)
	}

	return lowest, nil
}
