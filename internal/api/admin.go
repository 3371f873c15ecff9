package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lucito/internal/accounts"
)

// CreateVendor registers a new vendor account.
func (s *Server) CreateVendor(c *gin.Context) {
	var in accounts.VendorCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := s.accounts.CreateVendor(in)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"message": "A vendor already exists with this email or phone number."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// GetVendors lists all vendors.
func (s *Server) GetVendors(c *gin.Context) {
	vendors, err := s.accounts.ListVendors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// GetVendorByID returns one vendor.
func (s *Server) GetVendorByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vendor not found."})
		return
	}

	vendor, err := s.accounts.VendorByID(uint(id))
	if err != nil {
		if errors.Is(err, accounts.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendor)
}
