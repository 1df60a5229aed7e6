package middleware

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"

	"github.com/JaimeStill/agent-hub/pkg/casing"
)

// CamelCase returns middleware that rewrites application/json response bodies
// so object keys are camelCase. A body that cannot be normalized is logged and
// sent unchanged. Other content types pass through unbuffered.
func CamelCase(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &camelWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)
			cw.flush(logger, r)
		})
	}
}

type camelWriter struct {
	http.ResponseWriter
	status  int
	decided bool
	buffer  bool
	body    bytes.Buffer
}

func (w *camelWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true
	w.buffer = isJSON(w.Header().Get("Content-Type"))
}

func (w *camelWriter) WriteHeader(code int) {
	if w.decided {
		if !w.buffer {
			w.ResponseWriter.WriteHeader(code)
		}
		return
	}
	w.decide()
	if w.buffer {
		w.status = code
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *camelWriter) Write(b []byte) (int, error) {
	if !w.decided {
		w.WriteHeader(http.StatusOK)
	}
	if w.buffer {
		return w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *camelWriter) flush(logger *slog.Logger, r *http.Request) {
	if !w.buffer {
		return
	}

	body := w.body.Bytes()
	if len(body) > 0 {
		normalized, err := casing.Normalize(body)
		if err != nil {
			logger.Warn(
				"response normalization failed",
				"error", err,
				"uri", r.URL.RequestURI(),
				"request_id", RequestIDFrom(r.Context()),
			)
		} else {
			body = normalized
		}
	}

	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)
	w.ResponseWriter.Write(body)
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
