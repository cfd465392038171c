package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreekln/HotelOrderingSystem-sub000/kds"
	"github.com/sreekln/HotelOrderingSystem-sub000/middlewares"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

// KDSHandler upgrades the connection for kitchen-display and floor
// clients. Requires auth; the role decides nothing yet but is stored
// with the connection.
func KDSHandler(c *gin.Context) {
	role, ok := middlewares.ActorRole(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.Forbiddenf("no role in context"))
		return
	}

	if err := kds.Upgrade(c.Writer, c.Request, string(role)); err != nil {
		utils.ErrorLogger.Printf("kds upgrade failed: %v", err)
	}
}
