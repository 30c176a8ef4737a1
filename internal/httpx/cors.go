package httpx

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thalikart/food-order-backend/internal/config"
)

// CORSConfig turns the configured allow-list into a gin-contrib/cors config.
// A wildcard origin never carries credentials: browsers refuse
// "Access-Control-Allow-Origin: *" together with credentials, so the pair is
// downgraded to wildcard only.
func CORSConfig(in config.CORSConfig) (cors.Config, error) {
	out := cors.Config{
		AllowMethods:              in.AllowMethods,
		AllowHeaders:              in.AllowHeaders,
		ExposeHeaders:             []string{"Content-Length", HeaderRequestID},
		AllowCredentials:          in.AllowCredentials,
		MaxAge:                    in.MaxAge,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if hasWildcard(in.AllowOrigins) {
		out.AllowAllOrigins = true
		if in.AllowCredentials {
			log.Printf("[cors] wildcard origin with credentials is not allowed; credentials disabled")
			out.AllowCredentials = false
		}
	} else {
		out.AllowOrigins = in.AllowOrigins
	}
	if err := out.Validate(); err != nil {
		return cors.Config{}, err
	}
	return out, nil
}

// CORS builds the middleware for the allow-list. Only an OPTIONS request
// carrying Access-Control-Request-Method is a preflight; any other OPTIONS
// request reaches its route handler.
func CORS(in config.CORSConfig) (gin.HandlerFunc, error) {
	cfg, err := CORSConfig(in)
	if err != nil {
		return nil, err
	}
	mw := cors.New(cfg)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") == "" {
			c.Next()
			return
		}
		mw(c)
	}, nil
}

func hasWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
