// Package adapters はproductsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goldhouse_backend/internal/feature/products/domain/entity"
	"goldhouse_backend/internal/feature/products/usecase"
)

// productPostgres はProductRepositoryインターフェースのPostgreSQL実装です。
type productPostgres struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productPostgres)(nil)

// NewProductRepository は指定されたDB接続でproductPostgresの新しいインスタンスを生成します。
func NewProductRepository(db *gorm.DB) *productPostgres {
	return &productPostgres{db: db}
}

// Create は商品をデータベースに追加します。
func (r *productPostgres) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// List は作成日時の降順ですべての商品を返します。
func (r *productPostgres) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID はIDで商品を取得します。
// 存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productPostgres) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save は既存の商品の変更を永続化します。
func (r *productPostgres) Save(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete はIDで商品を削除します。
// 対象が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
