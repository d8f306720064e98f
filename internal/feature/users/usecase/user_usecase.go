// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"goldhouse_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// ユーザー名または電話番号が既に使用されている場合、
	// ErrUsernameAlreadyExists / ErrPhoneNumberAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error

	// List は作成日時の降順ですべてのユーザーを返します。
	List(ctx context.Context) ([]entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Save は既存のユーザーの変更を永続化します。
	Save(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// UpdateParams はユーザー更新時の部分更新フィールドを表します。
// nilのフィールドは変更されません。
type UpdateParams struct {
	FullName    *string
	PhoneNumber *string
	Username    *string
	Password    *string
}

// UserUsecase はユーザー管理のビジネスロジックを実装します。
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// Create はパスワードをハッシュ化した上で新規ユーザーを登録し、IDを返します。
func (u *UserUsecase) Create(ctx context.Context, fullName, phoneNumber, username, password string) (uint, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Username:    username,
		Password:    string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// List は作成日時の降順ですべてのユーザーを返します。
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// Get はIDでユーザーを取得します。
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は指定されたフィールドのみを更新します。
// パスワードが指定された場合は再ハッシュ化して保存します。
func (u *UserUsecase) Update(ctx context.Context, id uint, params UpdateParams) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.PhoneNumber != nil {
		user.PhoneNumber = *params.PhoneNumber
	}
	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	return u.users.Save(ctx, user)
}

// Delete はIDでユーザーを削除します。
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// EnsureSeedUser は指定された管理者アカウントが存在しない場合に作成します。
// サービス起動時のブートストラップ用です。
func (u *UserUsecase) EnsureSeedUser(ctx context.Context, fullName, phoneNumber, username, password string) error {
	_, err := u.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if _, err := u.Create(ctx, fullName, phoneNumber, username, password); err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}
	return nil
}
