package token

// parseTableCells splits a `|`-delimited row into cells, honoring \|, \\,
// and \n escapes so an escaped pipe never counts as a cell boundary.
func parseTableCells(line string) []Cell {
	runes := []rune(line)
	pipes := unescapedPipePositions(runes)
	if len(pipes) < 2 {
		return nil
	}

	cells := make([]Cell, 0, len(pipes)-1)
	for i := 0; i < len(pipes)-1; i++ {
		start, end := pipes[i]+1, pipes[i+1]
		raw := string(runes[start:end])
		cells = append(cells, Cell{
			Value:  unescapeCell(trimRunes(raw)),
			Column: start + 1, // 1-based column immediately after the opening '|'
		})
	}
	return cells
}

func unescapedPipePositions(runes []rune) []int {
	var positions []int
	escaped := false
	for i, r := range runes {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == '|' {
			positions = append(positions, i)
		}
	}
	return positions
}

func trimRunes(s string) string {
	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end && isSpaceRune(runes[start]) {
		start++
	}
	for end > start && isSpaceRune(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}

// unescapeCell resolves the three recognized table-cell escapes; any other
// backslash sequence is left exactly as written.
func unescapeCell(s string) string {
	runes := []rune(s)
	var out []rune
	i := 0
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			switch runes[i+1] {
			case '|':
				out = append(out, '|')
				i += 2
				continue
			case '\\':
				out = append(out, '\\')
				i += 2
				continue
			case 'n':
				out = append(out, '\n')
				i += 2
				continue
			}
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}
