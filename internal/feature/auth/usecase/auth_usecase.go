// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"goldhouse_backend/internal/feature/users/domain/entity"
	usersusecase "goldhouse_backend/internal/feature/users/usecase"
)

// UserFinder は認証に必要な最小限のユーザー検索を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserFinder interface {
	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenIssuer はアクセストークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// Issue は指定されたユーザー名をsubjectとする署名済みトークンを生成します。
	Issue(username string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserFinder
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserFinder, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	// ストア障害は認証失敗と区別してそのまま呼び出し元へ返す
	if err != nil && !errors.Is(err, usersusecase.ErrUserNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	// 保存されたハッシュが不正な形式でも検証失敗として扱われ、パニックしない
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}

	return token, nil
}
