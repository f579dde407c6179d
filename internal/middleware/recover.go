package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/familysoo/studio-web/internal/pkg/logger"
	"github.com/familysoo/studio-web/internal/pkg/response"
)

// PanicPageMessage is the body pages get after a recovered panic.
const PanicPageMessage = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// Recover turns a handler panic into a 500. API callers get the JSON
// envelope and page requests get plain text.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("Panic recovered")

			if wantsJSON(r) {
				response.InternalError(w)
				return
			}
			http.Error(w, PanicPageMessage, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
