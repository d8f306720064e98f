// Package usecase はproductsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"goldhouse_backend/internal/feature/products/domain/entity"
)

// ErrProductNotFound is returned when a product cannot be found by ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository は商品エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}

// UpdateParams は商品更新時の部分更新フィールドを表します。
// nilのフィールドは変更されません。
type UpdateParams struct {
	Title       *string
	Description *string
	ImagePath   *string
	Proba       *int
	Gramm       *float64
	Type        *string
}

// ProductUsecase は商品管理のビジネスロジックを実装します。
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase はProductUsecaseの新しいインスタンスを生成します。
func NewProductUsecase(r ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: r}
}

// Create は新しい商品を登録し、IDを返します。
func (u *ProductUsecase) Create(ctx context.Context, title, description, imagePath string, proba int, gramm float64, typ string) (uint, error) {
	product := &entity.Product{
		Title:       title,
		Description: description,
		ImagePath:   imagePath,
		Proba:       proba,
		Gramm:       gramm,
		Type:        typ,
	}
	if err := u.repo.Create(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// List は作成日時の降順ですべての商品を返します。
func (u *ProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.repo.List(ctx)
}

// Get はIDで商品を取得します。
func (u *ProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.repo.FindByID(ctx, id)
}

// Update は指定されたフィールドのみを更新します。
func (u *ProductUsecase) Update(ctx context.Context, id uint, params UpdateParams) error {
	product, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if params.Title != nil {
		product.Title = *params.Title
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.ImagePath != nil {
		product.ImagePath = *params.ImagePath
	}
	if params.Proba != nil {
		product.Proba = *params.Proba
	}
	if params.Gramm != nil {
		product.Gramm = *params.Gramm
	}
	if params.Type != nil {
		product.Type = *params.Type
	}

	return u.repo.Save(ctx, product)
}

// Delete はIDで商品を削除します。
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
