package cookie

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the designated carrier of the bearer credential on
// inbound HTTP requests.
const AuthCookieName = "Authentication"

func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(
		AuthCookieName,
		token,
		int(ttl.Seconds()),
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(
		AuthCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}

func GetAuthToken(c *gin.Context) string {
	token, _ := c.Cookie(AuthCookieName)
	return token
}
