package board

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

var boardPlaintextRegex = regexp.MustCompile(`\|([.XOBW ]+)\|`)

func (g *Grid) ToDisplayText() string {
	var str string
	row := "   "
	for i := 0; i < Dim; i++ {
		row = row + fmt.Sprintf("%c", 'a'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	for i := 0; i < Dim; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < Dim; j++ {
			row = row + g[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	return "\n" + str
}

// GridFromPlaintext reads a board drawn as eight |...| rows, the same
// shape ToDisplayText prints (without color). X or B is black, O or W
// is white, anything else is empty.
func GridFromPlaintext(qText string) (Grid, error) {
	var g Grid
	result := boardPlaintextRegex.FindAllStringSubmatch(qText, -1)
	if len(result) != Dim {
		return g, fmt.Errorf("expected %d board rows, found %d", Dim, len(result))
	}
	for i := range result {
		g.SetRow(i, strings.ReplaceAll(result[i][1], " ", ""))
	}
	return g, nil
}

// SetRow sets the row to the passed-in cells. Missing trailing cells are
// cleared.
func (g *Grid) SetRow(rowNum int, cells string) {
	for idx := 0; idx < Dim; idx++ {
		g[rowNum][idx] = Empty
	}
	for idx, r := range cells {
		if idx >= Dim {
			log.Debug().Int("row", rowNum).Str("cells", cells).Msg("row-too-long")
			break
		}
		switch r {
		case 'X', 'B', 'x', 'b', '1':
			g[rowNum][idx] = Black
		case 'O', 'W', 'o', 'w', '2':
			g[rowNum][idx] = White
		}
	}
}

// Equals checks the grids for equality, logging the first mismatch.
func (g *Grid) Equals(g2 *Grid) bool {
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if g[row][col] != g2[row][col] {
				log.Debug().Int("row", row).Int("col", col).Msg("grids-not-equal")
				return false
			}
		}
	}
	return true
}
