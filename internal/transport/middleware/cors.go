package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/recruitment-backend/internal/config"
)

type originSet struct {
	any     bool
	origins map[string]struct{}
}

func parseOrigins(raw string) originSet {
	set := originSet{origins: make(map[string]struct{})}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			set.any = true
		default:
			set.origins[o] = struct{}{}
		}
	}
	return set
}

func (s originSet) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if s.any {
		return true
	}
	_, ok := s.origins[origin]
	return ok
}

// CORS echoes allowed origins and answers browser preflight requests
// (OPTIONS carrying an Origin header) without reaching the router.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if allowed.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
