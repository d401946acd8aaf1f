package router

import (
	"pouchesitaly/handler"
	"pouchesitaly/middleware"
	"pouchesitaly/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Storefront checkout bridge. One endpoint, operation in the body.
	app.All("/api/checkout", handler.CheckoutBridge)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/set-password", middleware.Protected(), validate.SetPassword(), handler.SetAccountPassword)
	account.Delete("/:accountId", middleware.Protected(), validate.GetById("accountId"), handler.DeleteAccount)

	// Public catalog and content.
	product := v1.Group("/product", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/facets", handler.GetCatalogFacets)
	product.Get("/admin", middleware.Protected(), handler.GetProductsAdmin)
	product.Get("/:slug", handler.GetProductBySlug)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.GetById("productId"), validate.UpdateProduct(), handler.EditProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProduct)

	page := v1.Group("/page", logger.New())
	page.Get("/admin", middleware.Protected(), handler.GetPagesAdmin)
	page.Get("/:slug", handler.GetPageBySlug)
	page.Post("/", middleware.Protected(), validate.CreatePage(), handler.CreatePage)
	page.Put("/:pageId", middleware.Protected(), validate.GetById("pageId"), validate.UpdatePage(), handler.EditPage)
	page.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePage)

	v1.Get("/menus", handler.GetMenus)
	v1.Put("/menus", middleware.Protected(), handler.UpsertMenu)
	v1.Get("/site-meta", handler.GetSiteMeta)
	v1.Put("/site-meta", middleware.Protected(), handler.UpsertSiteMeta)

	// Admin order management.
	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Patch("/:orderId/status", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Post("/:orderId/sync", middleware.Protected(), validate.GetById("orderId"), handler.SyncOrder)
	order.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteOrder)
	order.Get("/live/feed", websocket.New(handler.OrderFeedSocket))

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	admin := v1.Group("/admin", logger.New())
	admin.Post("/data", middleware.Protected(), handler.DataProxy)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	v1.Post("/upload-image", middleware.Protected(), handler.UploadProductImage)
}
