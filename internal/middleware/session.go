// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hitoshi/loginkit/internal/model"
)

// SessionCookieName はセッションIDを保持するCookieの名前。
const SessionCookieName = "session_id"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionContextKey はリクエストコンテキストにセッションを格納するためのキー。
var sessionContextKey = contextKey("session")

// sessionHolderKey はロギングミドルウェアが用意するsessionHolderのキー。
var sessionHolderKey = contextKey("session_holder")

// sessionHolder は内側のセッションミドルウェアが検証済みセッションIDを
// 外側のロギングミドルウェアへ渡すための入れ物。
type sessionHolder struct {
	id string
}

// withSessionHolder は空のsessionHolderをコンテキストに追加する。
func withSessionHolder(ctx context.Context) (context.Context, *sessionHolder) {
	h := &sessionHolder{}
	return context.WithValue(ctx, sessionHolderKey, h), h
}

// NewSessionMiddleware はHTTP Only Cookieからセッションを読み取り、
// Session.Validateで検証するミドルウェアを返す。
// 検証を通過したセッションをリクエストコンテキストに注入する。
// 未認証リクエストには401 Unauthorizedを返す。
func NewSessionMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			session := &model.Session{ID: cookie.Value}
			if !session.Validate(cookie.Value) {
				slog.Warn("invalid session cookie",
					slog.String("path", r.URL.Path),
				)
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			if h, ok := r.Context().Value(sessionHolderKey).(*sessionHolder); ok {
				h.id = session.ID
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), session)))
		})
	}
}

// SessionFromContext はリクエストコンテキストからセッションを取得する。
// セッションミドルウェアを通過したリクエストでのみ有効。
func SessionFromContext(ctx context.Context) (*model.Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*model.Session)
	if !ok || session == nil {
		return nil, fmt.Errorf("session not found in context")
	}
	return session, nil
}

// ContextWithSession はコンテキストにセッションを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
