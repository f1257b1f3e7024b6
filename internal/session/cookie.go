package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetCookie issues the session cookie to the client. HttpOnly and
// Secure with SameSite=None, so browser clients on other origins can
// carry it with credentials.
func SetCookie(c *gin.Context, name, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(name, token, int(maxAge.Seconds()), "/", "", true, true)
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(name, "", -1, "/", "", true, true)
}
