package articles

import (
	"github.com/MarketPulse/MP-Backend/internal/gate"
	"github.com/MarketPulse/MP-Backend/internal/utils"
)

// CanMutate is the single ownership predicate for update and delete: the
// owning account may mutate its own articles, a superadmin may mutate any.
func CanMutate(claims utils.Claims, article *Article) bool {
	return claims.Role == gate.RoleSuperadmin || claims.AccountID == article.AuthorID
}
