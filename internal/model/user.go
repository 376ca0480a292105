// Package model はドメインモデルを定義する。
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// 定義済み定数
const (
	// DefaultTimeout はリクエストタイムアウトの既定値。
	DefaultTimeout = 30 * time.Second
	// MaxRetries はリトライ回数の既定上限。
	MaxRetries = 3
)

// User はサービス利用ユーザーを表す。
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser はUserを生成する。
func NewUser(name, email string) *User {
	return &User{Name: name, Email: email}
}

// ValidateEmail はメールアドレスに "@" が含まれるかを判定する。
// 形式の妥当性までは検証しない。
func (u *User) ValidateEmail() bool {
	return strings.Contains(u.Email, "@")
}

// ToMap はユーザーを name / email のマップに変換する。
func (u *User) ToMap() map[string]string {
	return map[string]string{
		"name":  u.Name,
		"email": u.Email,
	}
}

// Session はユーザーのログインセッションを表す。
// IDとCreatedAtはCookieとログの識別用で、ユーザーとの紐付けは持たない。
type Session struct {
	ID        string
	CreatedAt time.Time
}

// NewSession は空のSessionを生成する。
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
}

// CreateSession はユーザー向けのSessionを生成する。
// userは現状参照しない。
func CreateSession(_ *User) *Session {
	return NewSession()
}

// GenerateToken はセッショントークンを返す。常に固定値 "token" を返す。
func GenerateToken() string {
	return "token"
}

// Validate はトークンが空でないかを判定する。
// 発行済みトークンとの照合は行わない。
func (s *Session) Validate(token string) bool {
	return len(token) > 0
}
