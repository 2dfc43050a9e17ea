package fwdlist_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirkon/fwdlist"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    *fwdlist.List[int]
		b    *fwdlist.List[int]
		want bool
	}{
		{
			name: "equal",
			a:    fwdlist.New(1, 2, 3),
			b:    fwdlist.New(1, 2, 3),
			want: true,
		},
		{
			name: "both-empty",
			a:    fwdlist.New[int](),
			b:    fwdlist.New[int](),
			want: true,
		},
		{
			name: "different-value",
			a:    fwdlist.New(1, 2, 3),
			b:    fwdlist.New(1, 2, 4),
			want: false,
		},
		{
			name: "different-length",
			a:    fwdlist.New(1, 2),
			b:    fwdlist.New(1, 2, 3),
			want: false,
		},
		{
			name: "different-order",
			a:    fwdlist.New(1, 2),
			b:    fwdlist.New(2, 1),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fwdlist.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, %v was expected", got, tt.want)
			}
			if got := fwdlist.Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("reversed Equal = %v, %v was expected", got, tt.want)
			}
		})
	}
}

func TestEqualUUID(t *testing.T) {
	// uuid.UUID допускает сравнение оператором ==, но не имеет порядка,
	// поэтому для таких списков доступен Equal, но не Less.
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	a := fwdlist.New(ids...)
	b := a.Clone()
	if !fwdlist.Equal(a, b) {
		t.Error("the clone must be equal to its source")
	}

	b.PopFront()
	if fwdlist.Equal(a, b) {
		t.Error("lists of different lengths must not be equal")
	}
}

func TestEqualFunc(t *testing.T) {
	a := fwdlist.New("alpha", "BETA")
	b := fwdlist.New("ALPHA", "beta")

	if fwdlist.Equal(a, b) {
		t.Error("case-sensitive equality must fail here")
	}
	if !fwdlist.EqualFunc(a, b, strings.EqualFold) {
		t.Error("case-insensitive equality was expected")
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a    *fwdlist.List[int]
		b    *fwdlist.List[int]
		want bool
	}{
		{
			name: "differing-element-decides",
			a:    fwdlist.New(1, 2, 3),
			b:    fwdlist.New(1, 2, 4),
			want: true,
		},
		{
			name: "proper-prefix-is-less",
			a:    fwdlist.New(1, 2),
			b:    fwdlist.New(1, 2, 3),
			want: true,
		},
		{
			name: "equal-is-not-less",
			a:    fwdlist.New(1, 2, 3),
			b:    fwdlist.New(1, 2, 3),
			want: false,
		},
		{
			name: "greater-is-not-less",
			a:    fwdlist.New(2),
			b:    fwdlist.New(1, 9, 9),
			want: false,
		},
		{
			name: "empty-is-less-than-anything",
			a:    fwdlist.New[int](),
			b:    fwdlist.New(1),
			want: true,
		},
		{
			name: "both-empty",
			a:    fwdlist.New[int](),
			b:    fwdlist.New[int](),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fwdlist.Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less = %v, %v was expected", got, tt.want)
			}
		})
	}
}

func TestLessFunc(t *testing.T) {
	desc := func(x, y int) int {
		return y - x
	}

	a := fwdlist.New(3, 2)
	b := fwdlist.New(3, 1)
	if !fwdlist.LessFunc(a, b, desc) {
		t.Error("{3,2} must precede {3,1} in the descending order")
	}
	if fwdlist.LessFunc(b, a, desc) {
		t.Error("{3,1} must not precede {3,2} in the descending order")
	}
}

func TestDerivedComparisons(t *testing.T) {
	lesser := fwdlist.New(1, 2, 3)
	greater := fwdlist.New(1, 2, 4)
	same := fwdlist.New(1, 2, 3)

	if !fwdlist.LessEq(lesser, greater) {
		t.Error("LessEq must hold for a lesser list")
	}
	if !fwdlist.LessEq(lesser, same) {
		t.Error("LessEq must hold for equal lists")
	}
	if fwdlist.LessEq(greater, lesser) {
		t.Error("LessEq must not hold for a greater list")
	}

	if !fwdlist.Greater(greater, lesser) {
		t.Error("Greater must hold for a greater list")
	}
	if fwdlist.Greater(lesser, same) {
		t.Error("Greater must not hold for equal lists")
	}

	if !fwdlist.GreaterEq(greater, lesser) {
		t.Error("GreaterEq must hold for a greater list")
	}
	if !fwdlist.GreaterEq(lesser, same) {
		t.Error("GreaterEq must hold for equal lists")
	}
	if fwdlist.GreaterEq(lesser, greater) {
		t.Error("GreaterEq must not hold for a lesser list")
	}
}
