package item

import "slices"

// insertIndex maps a 1-based position onto an insertion index in a list of
// n lines. Positions below 1 insert first, positions past the end append.
func insertIndex(n, position int) int {
	return min(max(position-1, 0), n)
}

// extractIndex maps a 1-based position onto an existing index in a list of
// n lines, or -1 when the list is empty. Positions below 1 select the first
// line, positions past the end select the last.
func extractIndex(n, position int) int {
	if n == 0 {
		return -1
	}
	return min(max(position-1, 0), n-1)
}

func insertLine(lines []string, position int, line string) []string {
	return slices.Insert(slices.Clone(lines), insertIndex(len(lines), position), line)
}

func extractLine(lines []string, position int) []string {
	i := extractIndex(len(lines), position)
	if i < 0 {
		return lines
	}
	return slices.Delete(slices.Clone(lines), i, i+1)
}
