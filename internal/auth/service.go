// Package auth はログイン・ログアウトとセッション発行を提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/loginkit/internal/model"
)

// Recorder は認証イベントの記録に必要なインターフェース。
// metrics.MetricsCollectorの部分集合として定義する。
type Recorder interface {
	RecordLogin()
	RecordLogout()
}

// Service は認証に関するビジネスロジックを提供する。
// 資格情報の検証は行わず、呼び出しごとに新しいセッションを発行する。
type Service struct {
	recorder Recorder
}

// NewService はServiceを生成する。recorderはnilでもよい。
func NewService(recorder Recorder) *Service {
	return &Service{recorder: recorder}
}

// Login は新しいセッションを発行する。
// username / password の内容にかかわらず空のセッションを返す。
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("login aborted: %w", err)
	}

	session := model.NewSession()

	if s.recorder != nil {
		s.recorder.RecordLogin()
	}
	slog.Info("user logged in",
		slog.String("username", username),
		slog.String("session_id", session.ID),
	)

	return session, nil
}

// Logout はセッションを破棄する。セッション自体には何も作用しない。
func (s *Service) Logout(ctx context.Context, session *model.Session) error {
	sessionID := ""
	if session != nil {
		sessionID = session.ID
	}

	if s.recorder != nil {
		s.recorder.RecordLogout()
	}
	slog.Info("user logged out", slog.String("session_id", sessionID))
	return nil
}
