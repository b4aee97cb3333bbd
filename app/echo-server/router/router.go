package router

import (
	"myStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, browserSession echo.MiddlewareFunc) {
	cart := api.Group("/cart", browserSession)

	cart.GET("", handler.GetCart)
	cart.GET("/count", handler.GetCount)
	cart.POST("/items", handler.AddItem)
	cart.DELETE("/items/:itemId", handler.RemoveItem)
}

func SetupWishlistRoutes(api *echo.Group, handler *rest.WishlistHandler, browserSession echo.MiddlewareFunc) {
	wishlist := api.Group("/wishlist", browserSession)

	wishlist.GET("", handler.GetWishlist)
	wishlist.POST("/items", handler.AddItem)
	wishlist.DELETE("/items/:itemId", handler.RemoveItem)
}

func SetupSessionRoutes(api *echo.Group, handler *rest.SessionHandler, browserSession echo.MiddlewareFunc) {
	session := api.Group("/session", browserSession)

	session.GET("", handler.GetSession)
	session.POST("/login", handler.Login)
	session.POST("/logout", handler.Logout)
}

func SetupStorefrontRoutes(api *echo.Group, handler *rest.StorefrontHandler, browserSession echo.MiddlewareFunc) {
	api.GET("/storefront/state", handler.State, browserSession)
	api.GET("/datalayer", handler.DrainDataLayer)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")

	catalog.GET("/products", handler.GetAllProducts)
	catalog.GET("/products/:itemId", handler.GetProductByItemID)
	catalog.GET("/promotions", handler.GetAllPromotions)
}
