package handlers

import (
	"mime"
	"net/http"

	"github.com/MadAppGang/httplog"
	lz "github.com/MadAppGang/httplog/zap"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/handlers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/osamigbe/account-service/errors"
)

type MiddleWareHandler interface {
	RequireJSON(http.HandlerFunc) http.HandlerFunc
}

type middlewareHandler struct {
	log *zap.Logger
}

func NewMiddlewareHandler(log *zap.Logger) MiddleWareHandler {
	return &middlewareHandler{log: log}
}

// RequireJSON rejects any request whose declared media type is not
// application/json. A missing Content-Type header is rejected too.
func (m *middlewareHandler) RequireJSON(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			m.log.Error("invalid content type", zap.String("content_type", r.Header.Get("Content-Type")))
			errors.NewUnsupportedMediaTypeError("Content-Type must be application/json").Serialize(w)
			return
		}

		h.ServeHTTP(w, r)
	}
}

// Global wraps the mux with the middleware every route shares: panic
// recovery, request ids, security headers, request logging, CORS and
// request metrics.
func Global(log *zap.Logger, next http.Handler) http.Handler {
	h := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		gorilla.AllowedHeaders([]string{"Content-Type"}),
	)(next)
	h = InstrumentHTTP(h)
	h = httplog.LoggerWithFormatter(lz.ZapLogger(log, zapcore.InfoLevel, "request"))(h)
	h = SecurityHeaders(h)
	h = RequestID(h)
	return gorilla.RecoveryHandler(gorilla.RecoveryLogger(zap.NewStdLog(log)))(h)
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-Id", id)
		}
		w.Header().Set("X-Request-Id", id)

		next.ServeHTTP(w, r)
	})
}

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; object-src 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
