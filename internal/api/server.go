// Package api wires the marketplace HTTP surface: admin vendor
// registration, the vendor dashboard and the customer storefront.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"lucito/internal/accounts"
	"lucito/internal/cart"
	"lucito/internal/catalog"
	"lucito/internal/config"
	"lucito/internal/monitoring"
	"lucito/internal/notify"
	"lucito/internal/orders"
)

// Server is the marketplace API server.
type Server struct {
	Router *gin.Engine

	cfg      *config.Config
	accounts *accounts.Service
	cart     *cart.Manager
	orders   *orders.Service
	catalog  *catalog.Service
	metrics  *monitoring.Metrics
}

// NewServer builds the API server and its collaborators on top of the
// shared database handle.
func NewServer(cfg *config.Config, db *gorm.DB, metrics *monitoring.Metrics) *Server {
	router := gin.Default()

	sms := notify.NewSMSClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From)

	s := &Server{
		Router:   router,
		cfg:      cfg,
		accounts: accounts.NewService(db, sms),
		cart:     cart.NewManager(db),
		orders:   orders.NewService(db),
		catalog:  catalog.NewService(db),
		metrics:  metrics,
	}

	if metrics != nil {
		router.Use(metrics.Middleware())
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Lucito API is running"})
	})

	admin := s.Router.Group("/admin")
	{
		admin.POST("/vendor", s.CreateVendor)
		admin.GET("/vendors", s.GetVendors)
		admin.GET("/vendor/:id", s.GetVendorByID)
	}

	vendor := s.Router.Group("/vendor")
	{
		vendor.POST("/login", s.LoginVendor)

		authed := vendor.Group("", s.authenticate())
		{
			authed.GET("/profile", s.GetVendorProfile)
			authed.PATCH("/profile", s.UpdateVendorProfile)
			authed.PATCH("/cover-images", s.UpdateVendorCoverImages)
			authed.PATCH("/serviceable", s.UpdateVendorService)

			authed.POST("/food-item", s.AddFoodItem)
			authed.GET("/food-items", s.GetFoodItems)

			authed.GET("/orders", s.GetVendorOrders)
			authed.PUT("/order/:orderId/process", s.ProcessOrder)
			authed.GET("/order/:orderId", s.GetOrderDetails)
		}
	}

	customer := s.Router.Group("/customer")
	{
		customer.POST("/sign-up", s.SignUpCustomer)
		customer.POST("/login", s.LoginCustomer)

		authed := customer.Group("", s.authenticate())
		{
			authed.POST("/verify", s.VerifyCustomer)
			authed.POST("/otp", s.RequestOTP)

			authed.GET("/profile", s.GetCustomerProfile)
			authed.PATCH("/profile", s.UpdateCustomerProfile)

			authed.POST("/cart", s.AddToCart)
			authed.GET("/cart", s.GetCart)
			authed.DELETE("/cart", s.EmptyCart)

			authed.POST("/create-order", s.CreateOrder)
			authed.GET("/orders", s.GetCustomerOrders)
			authed.GET("/order/:id", s.GetCustomerOrderByID)
		}
	}

	search := s.Router.Group("/search")
	{
		search.GET("/top-restaurants/:pinCode", s.TopRestaurants)
		search.GET("/available-within-30-minutes/:pinCode", s.FoodIn30Minutes)
		search.GET("/all/:pinCode", s.SearchFoodItems)
		search.GET("/food-items/:restaurantId", s.GetRestaurantByID)
		search.GET("/:pinCode", s.FoodAvailability)
	}
}
