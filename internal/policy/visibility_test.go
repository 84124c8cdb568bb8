package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldShowCartSummary(t *testing.T) {
	t.Parallel()

	none := OverlayFlags{}

	tests := []struct {
		name  string
		path  string
		count int
		flags OverlayFlags
		want  bool
	}{
		{"empty cart on allowed path", "/menu", 0, none, false},
		{"cart page is denylisted even with items", "/cart", 3, none, false},
		{"login page", "/login", 2, none, false},
		{"signup page", "/signup", 2, none, false},
		{"profile page", "/profile", 1, none, false},
		{"membership page", "/membership", 1, none, false},
		{"about page", "/about", 1, none, false},
		{"admin subpage", "/admin/orders", 1, none, false},
		{"menu detail route", "/menu/12", 2, none, false},
		{"likes detail route", "/likes/7", 2, none, false},
		{"salad detail route", "/salad/a1b2", 2, none, false},
		{"detail overlay open", "/menu", 2, OverlayFlags{DetailOpen: true}, false},
		{"forcibly hidden", "/menu", 2, OverlayFlags{ForceHidden: true}, false},
		{"menu list with items", "/menu", 2, none, true},
		{"home with items", "/", 1, none, true},
		{"likes list with items", "/likes", 2, none, true},
		{"prefix matches whole segments only", "/cartoons", 2, none, true},
		{"non numeric menu id is not a detail route", "/menu/specials", 2, none, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldShowCartSummary(tt.path, tt.count, tt.flags))
		})
	}
}
