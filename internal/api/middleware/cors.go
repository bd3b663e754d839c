package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSOrigins is the allow-list of browser origins. It can be replaced
// while the server runs.
type CORSOrigins struct {
	mu       sync.RWMutex
	allowAll bool
	origins  map[string]struct{}
}

func NewCORSOrigins(domains []string) *CORSOrigins {
	o := &CORSOrigins{}
	o.Set(domains)

	return o
}

func (o *CORSOrigins) Set(domains []string) {
	origins := make(map[string]struct{}, len(domains))
	allowAll := false
	for _, d := range domains {
		if d == "*" {
			allowAll = true
		}
		origins[d] = struct{}{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.origins = origins
	o.allowAll = allowAll
}

func (o *CORSOrigins) Allowed(origin string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.allowAll {
		return true
	}
	_, ok := o.origins[origin]

	return ok
}

func ConfigCORS(origins *CORSOrigins) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: origins.Allowed,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
