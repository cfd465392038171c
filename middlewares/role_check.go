package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// RequireRole gates a route group to the listed roles. Admin always
// passes.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles)+1)
	allowed[models.RoleAdmin] = true
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := ActorRole(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, utils.Forbiddenf("no role in context"))
			c.Abort()
			return
		}
		if !allowed[role] {
			utils.RespondWithError(c, utils.Forbiddenf("role %s may not access this resource", role))
			c.Abort()
			return
		}
		c.Next()
	}
}
