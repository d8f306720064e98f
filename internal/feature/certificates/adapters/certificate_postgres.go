// Package adapters はcertificatesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goldhouse_backend/internal/feature/certificates/domain/entity"
	"goldhouse_backend/internal/feature/certificates/usecase"
)

// certificatePostgres はCertificateRepositoryインターフェースのPostgreSQL実装です。
type certificatePostgres struct {
	db *gorm.DB
}

var _ usecase.CertificateRepository = (*certificatePostgres)(nil)

// NewCertificateRepository は指定されたDB接続でcertificatePostgresの新しいインスタンスを生成します。
func NewCertificateRepository(db *gorm.DB) *certificatePostgres {
	return &certificatePostgres{db: db}
}

// Create は証明書をデータベースに追加します。
func (r *certificatePostgres) Create(ctx context.Context, c *entity.Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List は作成日時の降順ですべての証明書を返します。
func (r *certificatePostgres) List(ctx context.Context) ([]entity.Certificate, error) {
	var certs []entity.Certificate
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

// FindByID はIDで証明書を取得します。
// 存在しない場合、usecase.ErrCertificateNotFoundを返します。
func (r *certificatePostgres) FindByID(ctx context.Context, id uint) (*entity.Certificate, error) {
	var c entity.Certificate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCertificateNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save は既存の証明書の変更を永続化します。
func (r *certificatePostgres) Save(ctx context.Context, c *entity.Certificate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete はIDで証明書を削除します。
// 対象が存在しない場合、usecase.ErrCertificateNotFoundを返します。
func (r *certificatePostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Certificate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCertificateNotFound
	}
	return nil
}
