package day03_test

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2023/day03"
	"github.com/katalvlaran/aoc2023/grid"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text, grid.DefaultParseOptions())
	require.NoError(t, err)

	return g
}

// ScanSuite exercises Scan on hand-built schematics.
type ScanSuite struct {
	suite.Suite
}

func TestScanSuite(t *testing.T) {
	suite.Run(t, new(ScanSuite))
}

// TestSample checks both answers on the reference schematic.
func (s *ScanSuite) TestSample() {
	res := day03.Scan(mustParse(s.T(), sample))
	s.Equal(4361, res.PartSum())
	s.Equal(467835, res.GearRatioSum())
	s.Len(res.Numbers, 10)

	s.Equal([]int{467, 35}, res.Gears[grid.Coord{X: 3, Y: 1}])
	s.Equal([]int{617}, res.Gears[grid.Coord{X: 3, Y: 4}])
	s.Equal([]int{755, 598}, res.Gears[grid.Coord{X: 5, Y: 8}])

	ratio, ok := res.GearRatio(grid.Coord{X: 3, Y: 1})
	s.True(ok)
	s.Equal(16345, ratio)
	_, ok = res.GearRatio(grid.Coord{X: 3, Y: 4})
	s.False(ok, "a gear touching one number has no ratio")
}

// TestSampleNumbers verifies positions and part flags of the non-parts.
func (s *ScanSuite) TestSampleNumbers() {
	res := day03.Scan(mustParse(s.T(), sample))
	var notParts []int
	for _, n := range res.Numbers {
		if !n.Part {
			notParts = append(notParts, n.Value)
		}
	}
	s.Equal([]int{114, 58}, notParts)

	first := res.Numbers[0]
	s.Equal(day03.Number{
		Value: 467, Row: 0, Start: 0, End: 3, Part: true,
		Gears: []grid.Coord{{X: 3, Y: 1}},
	}, first)
}

// TestIsolatedNumber: no markers anywhere means no parts and no gears.
func (s *ScanSuite) TestIsolatedNumber() {
	res := day03.Scan(mustParse(s.T(), "....\n.42.\n...."))
	s.Equal(0, res.PartSum())
	s.Equal(0, res.GearRatioSum())
	s.Empty(res.Gears)
	s.Require().Len(res.Numbers, 1)
	s.False(res.Numbers[0].Part)
}

// TestGearWithThreeNumbers: the gear is void, but every number is a part.
func (s *ScanSuite) TestGearWithThreeNumbers() {
	res := day03.Scan(mustParse(s.T(), "2.3\n.*.\n..4"))
	s.Equal(9, res.PartSum())
	s.Equal(0, res.GearRatioSum())
	s.Equal([]int{2, 3, 4}, res.Gears[grid.Coord{X: 1, Y: 1}])
}

// TestFullWidthNumber touches a marker only below its last column.
func (s *ScanSuite) TestFullWidthNumber() {
	res := day03.Scan(mustParse(s.T(), "1234\n...#"))
	s.Equal(1234, res.PartSum())
	s.Require().Len(res.Numbers, 1)
	s.Equal(4, res.Numbers[0].End)
}

// TestDiagonals covers all four diagonal corners around a run.
func (s *ScanSuite) TestDiagonals() {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"AboveLeft", "#...\n.12.", 12},
		{"AboveRight", "...#\n.12.", 12},
		{"BelowLeft", ".12.\n#...", 12},
		{"BelowRight", ".12.\n...#", 12},
		{"TooFarLeft", "#....\n..12.", 0},
		{"TooFarRight", "....#\n.12..", 0},
		{"SameRowLeft", "#12", 12},
		{"SameRowRight", "12#", 12},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, day03.Scan(mustParse(s.T(), tc.text)).PartSum())
		})
	}
}

// TestNoWrapAround ensures row ends and starts are not neighbors.
func (s *ScanSuite) TestNoWrapAround() {
	res := day03.Scan(mustParse(s.T(), "..12\n#...\n...."))
	s.Equal(0, res.PartSum())
	res = day03.Scan(mustParse(s.T(), "...#\n12..\n...."))
	s.Equal(0, res.PartSum(), "the marker above column 3 is not diagonal to column 1")
}

// TestRaggedRows never indexes past a short row and still finds
// the diagonal past the end of a short row in a longer one.
func (s *ScanSuite) TestRaggedRows() {
	res := day03.Scan(mustParse(s.T(), "12\n..*\n7"))
	s.Equal(12, res.PartSum())
	s.Equal([]int{12}, res.Gears[grid.Coord{X: 2, Y: 1}])
}

// TestGearCountedOncePerRun: a run touching one gear through several
// columns enters that gear's list only once.
func (s *ScanSuite) TestGearCountedOncePerRun() {
	res := day03.Scan(mustParse(s.T(), ".*.\n123\n.*."))
	s.Equal(123, res.PartSum())
	s.Equal([]int{123}, res.Gears[grid.Coord{X: 1, Y: 0}])
	s.Equal([]int{123}, res.Gears[grid.Coord{X: 1, Y: 2}])
	s.Len(res.Numbers[0].Gears, 2)
}

// TestRunTouchingTwoGears: both gears receive the value.
func (s *ScanSuite) TestRunTouchingTwoGears() {
	res := day03.Scan(mustParse(s.T(), "*....\n.10.5\n...*."))
	s.Equal(15, res.PartSum())
	s.Equal([]int{10}, res.Gears[grid.Coord{X: 0, Y: 0}])
	s.Equal([]int{10, 5}, res.Gears[grid.Coord{X: 3, Y: 2}])
	s.Equal(50, res.GearRatioSum())
}

// TestParts checks the Part1/Part2 entry points and option errors.
func TestParts(t *testing.T) {
	opts := grid.DefaultParseOptions()

	got, err := day03.Part1(sample, opts)
	require.NoError(t, err)
	require.Equal(t, 4361, got)

	got, err = day03.Part2(sample, opts)
	require.NoError(t, err)
	require.Equal(t, 467835, got)

	_, err = day03.Part1(sample, grid.ParseOptions{Empty: '.', Gear: '.'})
	require.ErrorIs(t, err, grid.ErrBadOptions)
	_, err = day03.Part2(sample, grid.ParseOptions{Empty: '1', Gear: '*'})
	require.ErrorIs(t, err, grid.ErrBadOptions)
}

// TestParts_CustomGear: with '#' as the gear, '*' is a plain marker.
func TestParts_CustomGear(t *testing.T) {
	got, err := day03.Part2(sample, grid.ParseOptions{Empty: '.', Gear: '#'})
	require.NoError(t, err)
	require.Equal(t, 0, got, "the only '#' touches just 633")
}

// TestParts_NumberTooLarge: a run beyond math.MaxInt is an error, not a wrapped value.
func TestParts_NumberTooLarge(t *testing.T) {
	opts := grid.DefaultParseOptions()

	_, err := day03.Part1("99999999999999999999#", opts)
	require.ErrorIs(t, err, day03.ErrNumberTooLarge)
	require.Contains(t, err.Error(), "row 0, columns 0-19")
	_, err = day03.Part2("99999999999999999999*1", opts)
	require.ErrorIs(t, err, day03.ErrNumberTooLarge)

	most := strconv.Itoa(math.MaxInt)
	got, err := day03.Part1(most+"#", opts)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, got)

	res := day03.Scan(mustParse(t, "1.."+most+"0\n#"))
	require.Len(t, res.Numbers, 2)
	require.False(t, res.Numbers[0].Overflow)
	require.True(t, res.Numbers[1].Overflow)
	require.ErrorIs(t, res.Err(), day03.ErrNumberTooLarge)
}

//----------------------------------------------------------------------------//
// Property Tests
//----------------------------------------------------------------------------//

// oracle recomputes Scan's answers by checking the full 8-neighbourhood
// of every digit of every run.
func oracle(g *grid.Grid) (parts int, gears map[grid.Coord][]int, faces int) {
	gears = make(map[grid.Coord][]int)
	for _, at := range g.Find(grid.Gear) {
		gears[at] = []int{}
	}
	for y := 0; y < g.Height(); y++ {
		row := g.Row(y)
		for x := 0; x < len(row); {
			if row[x].Kind != grid.Digit {
				x++

				continue
			}
			value, part := 0, false
			touched := make(map[grid.Coord]bool)
			var order []grid.Coord
			for ; x < len(row) && row[x].Kind == grid.Digit; x++ {
				value = value*10 + int(row[x].Digit)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						c, ok := g.At(x+dx, y+dy)
						if !ok || !c.IsSymbol() {
							continue
						}
						part = true
						at := grid.Coord{X: x + dx, Y: y + dy}
						if c.Kind == grid.Gear && !touched[at] {
							touched[at] = true
							order = append(order, at)
						}
					}
				}
			}
			faces += value
			if part {
				parts += value
			}
			for _, at := range order {
				gears[at] = append(gears[at], value)
			}
		}
	}

	return parts, gears, faces
}

func randomSchematic(rng *rand.Rand, alphabet string) string {
	h, w := 1+rng.Intn(8), 1+rng.Intn(12)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// TestScan_MatchesOracle compares Scan with the brute-force oracle
// on random schematics.
func TestScan_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2023))
	for i := 0; i < 500; i++ {
		text := randomSchematic(rng, "......0123456789*#+$")
		g := mustParse(t, text)
		res := day03.Scan(g)

		parts, gears, faces := oracle(g)
		require.Equal(t, parts, res.PartSum(), "schematic:\n%s", text)
		require.Equal(t, gears, res.Gears, "schematic:\n%s", text)
		require.LessOrEqual(t, res.PartSum(), faces)
	}
}

// TestScan_NoSymbols: without markers or gears the part sum is always 0.
func TestScan_NoSymbols(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		res := day03.Scan(mustParse(t, randomSchematic(rng, "....0123456789")))
		require.Equal(t, 0, res.PartSum())
		require.Equal(t, 0, res.GearRatioSum())
	}
}

// TestScan_VoidGears: gears touching other than two numbers add nothing.
func TestScan_VoidGears(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		res := day03.Scan(mustParse(t, randomSchematic(rng, "...0123456789**")))
		want := 0
		for at, nums := range res.Gears {
			ratio, ok := res.GearRatio(at)
			if len(nums) != 2 {
				require.False(t, ok)
				require.Zero(t, ratio)

				continue
			}
			want += nums[0] * nums[1]
		}
		require.Equal(t, want, res.GearRatioSum())
	}
}

// TestScan_Idempotent: scanning the same grid twice gives the same result.
func TestScan_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		g := mustParse(t, randomSchematic(rng, "....0123456789*#"))
		require.Equal(t, day03.Scan(g), day03.Scan(g))
	}
}
