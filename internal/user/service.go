// Package user はユーザー取得のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/loginkit/internal/model"
)

const (
	fixedUserName  = "test"
	fixedUserEmail = "test@example.com"
)

// FetchRecorder はユーザー取得の記録に必要なインターフェース。
type FetchRecorder interface {
	RecordUserFetch()
}

// Result はFetchUserAsyncの結果を表す。
type Result struct {
	User *model.User
	Err  error
}

// Service はユーザー取得のサービス層。
type Service struct {
	recorder FetchRecorder
}

// NewService はServiceの新しいインスタンスを生成する。recorderはnilでもよい。
func NewService(recorder FetchRecorder) *Service {
	return &Service{recorder: recorder}
}

// FetchUser は指定IDのユーザーを取得する。
// I/Oは行わず、userIDにかかわらず固定のユーザーを返す。
// ctxが既に終了している場合のみctx.Err()を返す。
func (s *Service) FetchUser(ctx context.Context, userID int) (*model.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to fetch user %d: %w", userID, ctx.Err())
	default:
	}

	if s.recorder != nil {
		s.recorder.RecordUserFetch()
	}
	slog.Info("user fetched", slog.Int("user_id", userID))

	return model.NewUser(fixedUserName, fixedUserEmail), nil
}

// FetchUserAsync はFetchUserを別goroutineで実行し、結果を1件だけ送るチャネルを返す。
// 送信後にチャネルはクローズされる。
func (s *Service) FetchUserAsync(ctx context.Context, userID int) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)
		u, err := s.FetchUser(ctx, userID)
		ch <- Result{User: u, Err: err}
	}()

	return ch
}
