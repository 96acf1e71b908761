package main

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/hexaflex/chess2d/chess"
)

var promotions = map[byte]chess.Kind{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// playMoves plays moves written as <from><to>[promotion], like "e7e8q",
// starting at g. Pawns reaching the last rank become queens unless a
// promotion letter says otherwise.
func playMoves(g *chess.Game, moves []string) (*chess.Game, error) {
	for i, m := range moves {
		if len(m) != 4 && len(m) != 5 {
			return nil, errors.Errorf("move %d: invalid move %q", i+1, m)
		}

		from, err := chess.ParsePosition(m[:2])
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}

		to, err := chess.ParsePosition(m[2:4])
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}

		next, promote, err := chess.Apply(g, from, to)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}

		switch {
		case promote != nil:
			kind := chess.Queen
			if len(m) == 5 {
				k, ok := promotions[m[4]]
				if !ok {
					return nil, errors.Errorf("move %d: invalid promotion %q", i+1, m[4:])
				}
				kind = k
			}

			if err := chess.Promote(next, *promote, kind); err != nil {
				return nil, errors.Wrapf(err, "move %d", i+1)
			}

		case len(m) == 5:
			return nil, errors.Errorf("move %d: %q does not promote", i+1, m)
		}

		g = next
	}

	return g, nil
}
