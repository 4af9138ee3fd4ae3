package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
)

const roleKey = "dashboard_role"

// BasicAuth authenticates the operator and stores their role on the context.
func BasicAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	accounts := make(gin.Accounts, len(cfg.Accounts))
	for user, account := range cfg.Accounts {
		accounts[user] = account.Password
	}
	authenticate := gin.BasicAuthForRealm(accounts, "campus-crowd-dashboard")

	return func(c *gin.Context) {
		authenticate(c)
		if c.IsAborted() {
			return
		}
		user := c.GetString(gin.AuthUserKey)
		c.Set(roleKey, cfg.Accounts[user].Role)
		c.Next()
	}
}

// RequireRole rejects authenticated operators without the given role.
func RequireRole(role config.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get(roleKey)
		if got != role {
			respondError(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}
