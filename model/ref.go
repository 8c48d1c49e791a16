package model

import (
	"fmt"
	"strconv"
)

// Sheet bounds of the ODS grid: columns A through AMJ, rows 1 through
// 1048576.
const (
	MaxColumns = 1024
	MaxRows    = 1048576
)

// ParseCellRef parses an A1-style reference like "B7" or "AMJ1048576" into
// 0-indexed column and row. References outside the sheet bounds are
// rejected.
func ParseCellRef(ref string) (col, row int, err error) {
	split := 0
	for split < len(ref) && isRefLetter(ref[split]) {
		split++
	}
	if split == 0 || split == len(ref) {
		return 0, 0, fmt.Errorf("malformed cell reference %q", ref)
	}

	col = ColumnToIndex(ref[:split])
	if col < 0 || col >= MaxColumns {
		return 0, 0, fmt.Errorf("column of %q outside sheet bounds", ref)
	}

	n, err := strconv.Atoi(ref[split:])
	if err != nil || n < 1 || n > MaxRows {
		return 0, 0, fmt.Errorf("row of %q outside sheet bounds", ref)
	}
	return col, n - 1, nil
}

// CellRef renders 0-indexed column and row as an A1-style reference.
func CellRef(col, row int) string {
	return IndexToColumn(col) + strconv.Itoa(row+1)
}

// ColumnToIndex converts column letters to a 0-indexed column: "A" is 0,
// "AA" is 26. Case is ignored; anything else yields -1.
func ColumnToIndex(letters string) int {
	if letters == "" {
		return -1
	}
	n := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return -1
		}
		n = n*26 + int(c-'A'+1)
	}
	return n - 1
}

// IndexToColumn converts a 0-indexed column to letters: 0 is "A", 26 is
// "AA". Negative input yields "".
func IndexToColumn(col int) string {
	if col < 0 {
		return ""
	}
	var out []byte
	for col >= 0 {
		out = append(out, byte('A'+col%26))
		col = col/26 - 1
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func isRefLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
