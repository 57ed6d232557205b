package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	httperrors "github.com/dropDatabas3/gesclient/internal/http/errors"
	"github.com/dropDatabas3/gesclient/internal/observability/logger"
)

// WithRecover captura panics y responde 500 {"error","message"}.
// Con exposeStack (modo dev) agrega el stack trace al cuerpo.
func WithRecover(exposeStack bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				logger.From(r.Context()).Error("panic recovered",
					logger.Op("recover"),
					logger.Any("panic", rec),
					logger.String("stack", stack),
				)

				appErr := httperrors.ErrInternalServerError.WithDetail(fmt.Sprint(rec))
				if exposeStack {
					httperrors.WriteErrorWithStack(w, appErr, stack)
					return
				}
				httperrors.WriteError(w, appErr)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
