package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"go.uber.org/zap"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// response is buffered until the transaction ends: it commits when the
// handler answered below 500 and rolls back otherwise. Callbacks registered
// with AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)
			bw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				hooks.discard(log)
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				hooks.discard(log)
				// a client error already explains the failure
				if bw.statusCode < http.StatusBadRequest {
					writeError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				bw.flush()
				return
			}
			hooks.run()
			bw.flush()
		})
	}
}

// bufferedWriter holds the status and body until flush.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	buf         bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.buf.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	_, _ = bw.ResponseWriter.Write(bw.buf.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type hooksContextKey struct{}

var (
	txKey    = contextKey{}
	hooksKey = hooksContextKey{}
)

type commitHooks struct {
	fns []func()
}

func (h *commitHooks) run() {
	for _, fn := range h.fns {
		fn()
	}
	h.fns = nil
}

func (h *commitHooks) discard(log *zap.SugaredLogger) {
	if len(h.fns) > 0 {
		log.Warnw("dropping post-commit callbacks", "count", len(h.fns))
	}
	h.fns = nil
}

// AfterCommit defers fn until the request transaction commits. Outside a
// transaction fn runs immediately. Callbacks are dropped on rollback.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
