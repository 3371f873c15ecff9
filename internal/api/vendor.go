package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lucito/internal/accounts"
	"lucito/internal/auth"
	"lucito/internal/catalog"
	"lucito/internal/orders"
)

// LoginVendor signs a token for valid vendor credentials.
func (s *Server) LoginVendor(c *gin.Context) {
	var in accounts.VendorLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := s.accounts.LoginVendor(in)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrVendorNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor not found."})
		case errors.Is(err, accounts.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password entered."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	token, err := auth.Sign(auth.Payload{
		ID:       vendor.ID,
		Email:    vendor.Email,
		Phone:    vendor.Phone,
		Verified: true,
	}, s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetVendorProfile returns the caller's vendor record.
func (s *Server) GetVendorProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	vendor, err := s.accounts.VendorByID(user.ID)
	if err != nil {
		if errors.Is(err, accounts.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor information not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// UpdateVendorProfile overwrites the vendor's profile fields.
func (s *Server) UpdateVendorProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	var in accounts.VendorProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := s.accounts.UpdateVendorProfile(user.ID, in)
	if err != nil {
		if errors.Is(err, accounts.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor information not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// UpdateVendorCoverImages stores uploaded cover images on disk and appends
// their filenames to the vendor record.
func (s *Server) UpdateVendorCoverImages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	images, err := s.saveUploadedImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := s.accounts.AddVendorCoverImages(user.ID, images)
	if err != nil {
		if errors.Is(err, accounts.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor information not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// UpdateVendorService flips the vendor's service availability.
func (s *Server) UpdateVendorService(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	vendor, err := s.accounts.ToggleVendorService(user.ID)
	if err != nil {
		if errors.Is(err, accounts.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor information not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// AddFoodItem creates a food item with uploaded images.
func (s *Server) AddFoodItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	var in catalog.FoodItemInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var images []string
	if c.ContentType() == "multipart/form-data" {
		var err error
		if images, err = s.saveUploadedImages(c); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	item, err := s.catalog.AddFoodItem(user.ID, in, images)
	if err != nil {
		if errors.Is(err, catalog.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor information not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetFoodItems lists the vendor's food items.
func (s *Server) GetFoodItems(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor information not found."})
		return
	}

	items, err := s.catalog.ListFoodItems(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No food items available."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetVendorOrders lists the vendor's orders with food detail joined.
func (s *Server) GetVendorOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return
	}

	list, err := s.orders.ListForVendor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ProcessOrder applies a status/remarks/preparation-time update.
func (s *Server) ProcessOrder(c *gin.Context) {
	orderID := c.Param("orderId")

	var in struct {
		Status  string `json:"status" binding:"required"`
		Remarks string `json:"remarks"`
		Time    int    `json:"time"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Process(orderID, in.Status, in.Remarks, in.Time)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order ID does not exist."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderDetails returns one order with food detail joined.
func (s *Server) GetOrderDetails(c *gin.Context) {
	order, err := s.orders.Get(c.Param("orderId"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No orders found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
