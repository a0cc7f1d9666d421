package diag

import (
	"testing"

	"github.com/Bryantad/Sona-sub001/pkg/tt"
)

type aRanger struct {
	Ranging
}

func TestEmbeddingRangingImplementsRanger(t *testing.T) {
	r := Ranging{1, 10}
	s := Ranger(aRanger{Ranging{1, 10}})
	if s.Range() != r {
		t.Errorf("s.Range() = %v, want %v", s.Range(), r)
	}
}

func TestPositionOf(t *testing.T) {
	tt.Test(t, tt.Fn("PositionOf", PositionOf), tt.Table{
		tt.Args("", 0).Rets(Position{1, 1}),
		tt.Args("let x = (", 9).Rets(Position{1, 10}),
		tt.Args("a\nbc\nd", 3).Rets(Position{2, 2}),
		tt.Args("a\nbc\nd", 5).Rets(Position{3, 1}),
		tt.Args("héllo x", len("héllo ")).Rets(Position{1, 7}),
		tt.Args("ab", 10).Rets(Position{1, 3}),
	})
}
