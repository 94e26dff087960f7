package board

// This file contains some sample boards, used solely for testing.

// VsWho is a plaintext representation of a board.
type VsWho string

const (
	// OpeningBoard is the standard setup.
	OpeningBoard VsWho = `
   a b c d e f g h
   ----------------
 1|. . . . . . . . |
 2|. . . . . . . . |
 3|. . . . . . . . |
 4|. . . O X . . . |
 5|. . . X O . . . |
 6|. . . . . . . . |
 7|. . . . . . . . |
 8|. . . . . . . . |
   ----------------
`
	// LoneCapture gives black exactly one legal move (c1), after which
	// white has no discs left and the game is over.
	LoneCapture VsWho = `
 1|X O . . . . . . |
 2|. . . . . . . . |
 3|. . . . . . . . |
 4|. . . . . . . . |
 5|. . . . . . . . |
 6|. . . . . . . . |
 7|. . . . . . . . |
 8|. . . . . . . . |
`
	// ForcedPass: after black plays c1, white has no reply and black
	// moves again (f8 is still available).
	ForcedPass VsWho = `
 1|X O . . . . . . |
 2|. . . . . . . . |
 3|. . . . . . . . |
 4|. . . . . . . . |
 5|. . . . . . . . |
 6|. . . . . . . . |
 7|. . . . . . . . |
 8|. . . . . . O X |
`
	// CornerBait has an empty a1 corner with black sitting on b2, and a
	// white-held h8 corner.
	CornerBait VsWho = `
 1|. . . . . . . . |
 2|. X . . . . . . |
 3|. . X O . . . . |
 4|. . . X O . . . |
 5|. . . O X . . . |
 6|. . . . . . . . |
 7|. . . . . . O O |
 8|. . . . . . . O |
`
)
