package router

import (
	"github.com/gin-gonic/gin"

	authhandler "goldhouse_backend/internal/feature/auth/transport/handler"
	certhandler "goldhouse_backend/internal/feature/certificates/transport/handler"
	contacthandler "goldhouse_backend/internal/feature/contacts/transport/handler"
	producthandler "goldhouse_backend/internal/feature/products/transport/handler"
	userhandler "goldhouse_backend/internal/feature/users/transport/handler"
	"goldhouse_backend/internal/platform/http/handler"
	"goldhouse_backend/internal/platform/http/middleware"
)

// NewRouter registers all routes. The access gate is applied per route
// group at registration time: mutations and user/contact reads require a
// valid token, while catalog reads and contact submission stay public.
func NewRouter(gate gin.HandlerFunc,
	auth *authhandler.AuthHandler,
	users *userhandler.UserHandler,
	contacts *contacthandler.ContactHandler,
	products *producthandler.ProductHandler,
	certs *certhandler.CertificateHandler) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// 認証不要
	// 導通確認用（ロードバランサのプローブはHEADも使う）
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	// ログイン（トークン発行）
	r.POST("/api/auth/login", auth.Login)
	// 問い合わせフォーム送信（公開）
	r.POST("/api/contact", contacts.Create)
	// カタログ閲覧（公開）
	r.GET("/api/product", products.List)
	r.GET("/api/product/:id", products.Get)
	r.GET("/api/certificate", certs.List)
	r.GET("/api/certificate/:id", certs.Get)

	// 認証必須のルート
	guarded := r.Group("/api")
	guarded.Use(gate)
	{
		// ユーザー管理は閲覧を含めてすべてゲート対象
		guarded.GET("/user", users.List)
		guarded.POST("/user", users.Create)
		guarded.GET("/user/:id", users.Get)
		guarded.PATCH("/user/:id", users.Update)
		guarded.DELETE("/user/:id", users.Delete)

		// 問い合わせは閲覧・削除がゲート対象
		guarded.GET("/contact", contacts.List)
		guarded.GET("/contact/:id", contacts.Get)
		guarded.DELETE("/contact/:id", contacts.Delete)

		// カタログの変更操作
		guarded.POST("/product", products.Create)
		guarded.PATCH("/product/:id", products.Update)
		guarded.DELETE("/product/:id", products.Delete)

		guarded.POST("/certificate", certs.Create)
		guarded.PATCH("/certificate/:id", certs.Update)
		guarded.DELETE("/certificate/:id", certs.Delete)
	}

	return r
}
