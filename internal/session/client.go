package session

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientMeta is the request metadata recorded on sessions and audit
// rows: originating IP plus a coarse browser/OS read of the
// User-Agent.
type ClientMeta struct {
	IP      string
	Browser string
	OS      string
}

// ExtractClientMeta reads client metadata from the inbound request.
func ExtractClientMeta(c *gin.Context) ClientMeta {
	ua := c.Request.UserAgent()
	return ClientMeta{
		IP:      c.ClientIP(),
		Browser: browserFromUA(ua),
		OS:      osFromUA(ua),
	}
}

func browserFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Edg/"):
		return "Edge"
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	case ua == "":
		return ""
	default:
		return "Other"
	}
}

func osFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Mac OS X"):
		return "macOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	case ua == "":
		return ""
	default:
		return "Other"
	}
}
