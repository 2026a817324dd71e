package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser requests from the configured origins. A "*" entry allows
// any origin; entries without an http or https scheme are ignored.
func CORS(allowOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}

	for _, origin := range allowOrigins {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		switch {
		case origin == "*":
			config.AllowAllOrigins = true
		case strings.HasPrefix(origin, "http://"), strings.HasPrefix(origin, "https://"):
			config.AllowOrigins = append(config.AllowOrigins, origin)
		case origin != "":
			slog.Warn("Ignoring CORS origin without scheme", "origin", origin)
		}
	}

	switch {
	case config.AllowAllOrigins:
		config.AllowOrigins = nil
	case len(config.AllowOrigins) == 0:
		config.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(config)
}
