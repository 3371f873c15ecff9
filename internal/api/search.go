package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lucito/internal/catalog"
)

// Search handlers: public storefront reads scoped to a pin code.

// FoodAvailability lists serviceable vendors in the pin code, best rated
// first, with their menus.
func (s *Server) FoodAvailability(c *gin.Context) {
	vendors, err := s.catalog.FoodAvailability(c.Param("pinCode"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(vendors) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// TopRestaurants returns the best rated serviceable vendor in the pin code.
func (s *Server) TopRestaurants(c *gin.Context) {
	vendor, err := s.catalog.TopRestaurant(c.Param("pinCode"))
	if err != nil {
		if errors.Is(err, catalog.ErrVendorNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// FoodIn30Minutes lists food items preparable within 30 minutes.
func (s *Server) FoodIn30Minutes(c *gin.Context) {
	items, err := s.catalog.FoodIn30Minutes(c.Param("pinCode"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchFoodItems lists every food item sold in the pin code.
func (s *Server) SearchFoodItems(c *gin.Context) {
	items, err := s.catalog.SearchFoodItems(c.Param("pinCode"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetRestaurantByID returns one vendor with its menu.
func (s *Server) GetRestaurantByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
		return
	}

	vendor, err := s.catalog.RestaurantByID(uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrVendorNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No data found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}
