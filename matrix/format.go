// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// CellWidth is the fixed field width used by Fprint.
const CellWidth = 4

// Fprint writes m to w, one line per row, each cell right-justified in a
// CellWidth-character field with no other separator. Every row, including the
// last, ends with a newline.
func Fprint(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Fprint", err)
	}
	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprintf(bw, "%*d", CellWidth, m.data[i*m.c+j]); err != nil {
				return matrixErrorf("Fprint", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return matrixErrorf("Fprint", err)
		}
	}

	return bw.Flush()
}
