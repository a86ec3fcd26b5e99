package harmony

import (
	"fmt"
	"strings"

	"github.com/meander-gen/meander/rng"
)

// Expr is a parsed harmony-combination expression. `a+b` concatenates two
// styles end-to-end, `a*b` picks one of them at random when the track is
// realized. `*` binds looser than `+`, so "a+b*c" chooses between the
// sequence a+b and c.
type Expr struct {
	alts [][]Style
}

// ParseExpr parses a style token or combination expression.
func ParseExpr(s string) (Expr, error) {
	var e Expr
	for _, alt := range strings.Split(s, "*") {
		var seq []Style
		for _, name := range strings.Split(alt, "+") {
			name = strings.TrimSpace(name)
			st, ok := styles[name]
			if !ok {
				return Expr{}, fmt.Errorf("unknown harmony style %q in %q", name, s)
			}
			seq = append(seq, st)
		}
		e.alts = append(e.alts, seq)
	}
	return e, nil
}

// resolve picks the style sequence this expression stands for. A
// random-choice expression consumes exactly one draw; everything else
// consumes none.
func (e Expr) resolve(stream *rng.Stream) []Style {
	if len(e.alts) == 1 {
		return e.alts[0]
	}
	return e.alts[stream.Pick(len(e.alts))]
}
