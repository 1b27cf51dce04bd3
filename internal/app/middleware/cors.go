package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allowedHeaders admits any request header in a preflight. Browsers never
// match Authorization against the wildcard, so it is listed by name.
var allowedHeaders = []string{"*", "Authorization"}

// CORS allows cross-origin requests from any origin without credentials.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     allowedHeaders,
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
