// Package adapters はcontactsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goldhouse_backend/internal/feature/contacts/domain/entity"
	"goldhouse_backend/internal/feature/contacts/usecase"
)

// contactPostgres はContactRepositoryインターフェースのPostgreSQL実装です。
type contactPostgres struct {
	db *gorm.DB
}

var _ usecase.ContactRepository = (*contactPostgres)(nil)

// NewContactRepository は指定されたDB接続でcontactPostgresの新しいインスタンスを生成します。
func NewContactRepository(db *gorm.DB) *contactPostgres {
	return &contactPostgres{db: db}
}

// Create は問い合わせをデータベースに追加します。
func (r *contactPostgres) Create(ctx context.Context, c *entity.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List は作成日時の降順ですべての問い合わせを返します。
func (r *contactPostgres) List(ctx context.Context) ([]entity.Contact, error) {
	var contacts []entity.Contact
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID はIDで問い合わせを取得します。
// 存在しない場合、usecase.ErrContactNotFoundを返します。
func (r *contactPostgres) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	var c entity.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContactNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete はIDで問い合わせを削除します。
// 対象が存在しない場合、usecase.ErrContactNotFoundを返します。
func (r *contactPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContactNotFound
	}
	return nil
}
