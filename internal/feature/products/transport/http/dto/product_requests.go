// Package dto はproductsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"goldhouse_backend/internal/feature/products/domain/entity"
)

// CreateProductReq は POST /api/product のリクエストボディを表します。
// 数値フィールドはポインタ型にすることで、ゼロ値と未指定を区別して
// requiredバリデーションを正しく機能させます。
type CreateProductReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImagePath   string   `json:"image_path" binding:"required"`
	Proba       *int     `json:"proba" binding:"required"`
	Gramm       *float64 `json:"gramm" binding:"required"`
	Type        string   `json:"type" binding:"required"`
}

// UpdateProductReq は PATCH /api/product/:id のリクエストボディを表します。
// nilのフィールドは変更されません。
type UpdateProductReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImagePath   *string  `json:"image_path"`
	Proba       *int     `json:"proba"`
	Gramm       *float64 `json:"gramm"`
	Type        *string  `json:"type"`
}

// ProductItem はレスポンス内の商品1件を表します。
type ProductItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Proba       int       `json:"proba"`
	Gramm       float64   `json:"gramm"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity はドメインエンティティをレスポンス表現に変換します。
func FromEntity(p *entity.Product) ProductItem {
	return ProductItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImagePath:   p.ImagePath,
		Proba:       p.Proba,
		Gramm:       p.Gramm,
		Type:        p.Type,
		CreatedAt:   p.CreatedAt,
	}
}
