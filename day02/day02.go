package day02

// Part1 sums the IDs of the games bag could have produced.
func Part1(input string, bag CubeSet) (int, error) {
	games, err := NewParser().Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}

	return sum, nil
}

// Part2 sums the power of every game.
func Part2(input string) (int, error) {
	games, err := NewParser().Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Power()
	}

	return sum, nil
}
