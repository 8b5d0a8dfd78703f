// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pepperoni/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	LoyaltyHandler *handler.LoyaltyHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CouponHandler  *handler.CouponHandler
	ReviewHandler  *handler.ReviewHandler
	TestHandler    *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cart    *handler.CartHandler
	order   *handler.OrderHandler
	loyalty *handler.LoyaltyHandler
	user    *handler.UserHandler
	catalog *handler.CatalogHandler
	coupon  *handler.CouponHandler
	review  *handler.ReviewHandler
	test    *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cart:    params.CartHandler,
		order:   params.OrderHandler,
		loyalty: params.LoyaltyHandler,
		user:    params.UserHandler,
		catalog: params.CatalogHandler,
		coupon:  params.CouponHandler,
		review:  params.ReviewHandler,
		test:    params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application. Paths keep
// the exact spelling of the original storefront API, mixed prefixes and all.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/test", r.test.Test)

	// Identity
	e.POST("/registro", r.user.Register)
	e.POST("/login", r.user.Login)
	e.GET("/usuarios", r.user.List)
	e.POST("/usuarios", r.user.Register)
	e.PUT("/usuarios/:id", r.user.Update)
	e.DELETE("/usuarios/:id", r.user.Delete)
	e.GET("/roles", r.catalog.ListRoles)

	// Catalog
	e.GET("/productos", r.catalog.ListProducts)
	e.GET("/productos/:id_producto", r.catalog.GetProduct)
	e.POST("/productos", r.catalog.CreateProduct)
	e.PUT("/productos/:id", r.catalog.UpdateProduct)
	e.DELETE("/productos/:id", r.catalog.DeleteProduct)

	e.GET("/categoria", r.catalog.ListCategories)
	e.POST("/categoria", r.catalog.CreateCategory)
	e.PUT("/categoria/:id", r.catalog.UpdateCategory)
	e.DELETE("/categoria/:id", r.catalog.DeleteCategory)

	e.GET("/ofertas", r.catalog.ListOffers)
	e.POST("/ofertas", r.catalog.CreateOffer)
	e.PUT("/ofertas/:id", r.catalog.UpdateOffer)
	e.DELETE("/ofertas/:id", r.catalog.DeleteOffer)

	e.GET("/notificaciones", r.catalog.ListNotifications)
	e.POST("/notificaciones", r.catalog.CreateNotification)
	e.PUT("/notificaciones/:id", r.catalog.UpdateNotification)
	e.DELETE("/notificaciones/:id", r.catalog.DeleteNotification)

	// Coupons
	e.GET("/cupones", r.coupon.List)
	e.POST("/cupones", r.coupon.Create)
	e.PUT("/cupones/:id", r.coupon.Update)
	e.DELETE("/cupones/:id", r.coupon.Delete)
	e.POST("/cupones/:id/usar", r.coupon.Use)

	// Redeemable catalog
	e.GET("/canjeables", r.loyalty.ListRedeemables)
	e.POST("/canjeables", r.loyalty.CreateRedeemable)
	e.PUT("/canjeables/:id", r.loyalty.UpdateRedeemable)
	e.DELETE("/canjeables/:id", r.loyalty.DeleteRedeemable)

	// Raw order lines
	e.GET("/detalle_orden", r.order.ListLines)
	e.POST("/detalle_orden", r.order.AddLine)
	e.PUT("/detalle_orden/:id", r.order.UpdateLine)
	e.DELETE("/detalle_orden/:id", r.order.DeleteLine)

	api := e.Group("/api")
	{
		// Cart
		api.POST("/carrito/agregar", r.cart.Add)
		api.GET("/carrito/:idusuario", r.cart.Get)
		api.PUT("/carrito/:idproducto", r.cart.UpdateLine)
		api.DELETE("/carrito/:idproducto", r.cart.RemoveLine)
		api.DELETE("/carrito/vaciar/:idusuario", r.cart.Clear)

		// Orders
		api.POST("/ordenes", r.order.Create)
		api.GET("/ordenes", r.order.List)
		api.GET("/ordenes/:idorden", r.order.Get)
		api.PATCH("/ordenes/:id", r.order.Update)
		api.DELETE("/ordenes/:id", r.order.Delete)

		// Pepper points
		api.POST("/pepperpoints/activar", r.loyalty.Activate)
		api.POST("/pepperpoints/canjear", r.loyalty.Redeem)
		api.GET("/pepperpoints/:id_usuario", r.loyalty.Get)
		api.PUT("/pepperpoints/:id_usuario", r.loyalty.Update)
		api.PATCH("/pepperpoints/:id_usuario", r.loyalty.Adjust)
		api.DELETE("/pepperpoints/:id_usuario", r.loyalty.Delete)
		api.GET("/pepperpoints/:id_usuario/tarjeta", r.loyalty.Card)

		// Reviews
		api.POST("/resena", r.review.Add)
		api.GET("/resenas/:id_producto", r.review.ListByProduct)
	}
}
