package articles

import (
	"testing"

	"github.com/MarketPulse/MP-Backend/internal/utils"
)

func TestCanMutate(t *testing.T) {
	t.Parallel()

	article := &Article{ID: "art-1", AuthorID: "acct-a"}

	owner := utils.Claims{AccountID: "acct-a", Role: "admin"}
	other := utils.Claims{AccountID: "acct-b", Role: "admin"}
	super := utils.Claims{AccountID: "acct-c", Role: "superadmin"}

	if !CanMutate(owner, article) {
		t.Error("owner should be allowed to mutate own article")
	}
	if CanMutate(other, article) {
		t.Error("non-owning admin must not mutate another admin's article")
	}
	if !CanMutate(super, article) {
		t.Error("superadmin should be allowed to mutate regardless of authorship")
	}
}
