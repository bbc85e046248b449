package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SSLRedirect permanently redirects plaintext requests to their https URL.
// Behind a proxy the scheme arrives in X-Forwarded-Proto. Disabled when
// enabled is false so local development and tests can speak plain http.
func SSLRedirect(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Next()
			return
		}

		target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
		c.Redirect(http.StatusMovedPermanently, target)
		c.Abort()
	}
}
