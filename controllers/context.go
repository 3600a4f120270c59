// controllers/context.go
package controllers

import (
	"net/http"

	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID returns the authenticated caller's id. Tokens are issued by
// this service, so a missing or malformed subject means a forged or stale
// session; the request is rejected with 401 rather than trusted.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "No autenticado")
		return uuid.Nil, false
	}

	sub, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Sesión inválida")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Sesión inválida")
		return uuid.Nil, false
	}
	return id, true
}
