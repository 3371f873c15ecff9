package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lucito/internal/accounts"
	"lucito/internal/auth"
	"lucito/internal/cart"
	"lucito/internal/models"
	"lucito/internal/orders"
)

func (s *Server) signatureFor(customer *models.Customer) (string, error) {
	return auth.Sign(auth.Payload{
		ID:       customer.ID,
		Email:    customer.Email,
		Phone:    customer.Phone,
		Verified: customer.Verified,
	}, s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL)
}

// SignUpCustomer opens an account and sends the first OTP.
func (s *Server) SignUpCustomer(c *gin.Context) {
	var in accounts.CustomerSignUpInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := s.accounts.SignUpCustomer(in)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email or phone already in use."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if s.metrics != nil {
		s.metrics.OTPsSent.Inc()
	}

	signature, err := s.signatureFor(customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"signature": signature,
		"verified":  customer.Verified,
		"email":     customer.Email,
	})
}

// LoginCustomer signs a token for valid credentials.
func (s *Server) LoginCustomer(c *gin.Context) {
	var in accounts.CustomerLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := s.accounts.LoginCustomer(in)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrCustomerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email not found!"})
		case errors.Is(err, accounts.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	signature, err := s.signatureFor(customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"signature": signature,
		"verified":  customer.Verified,
		"email":     customer.Email,
	})
}

// VerifyCustomer checks the submitted OTP and marks the account verified.
func (s *Server) VerifyCustomer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Can not verify OTP"})
		return
	}

	var in struct {
		OTP int `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := s.accounts.VerifyCustomer(user.ID, in.OTP)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidOTP):
			c.JSON(http.StatusConflict, gin.H{"message": "Invalid OTP"})
		case errors.Is(err, accounts.ErrCustomerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Can not verify OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	signature, err := s.signatureFor(customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"signature": signature,
		"verified":  customer.Verified,
		"email":     customer.Email,
	})
}

// RequestOTP regenerates and resends the customer's OTP.
func (s *Server) RequestOTP(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Can not request OTP"})
		return
	}

	if err := s.accounts.RequestOTP(user.ID); err != nil {
		if errors.Is(err, accounts.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Can not request OTP"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if s.metrics != nil {
		s.metrics.OTPsSent.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your registered phone number!"})
}

// GetCustomerProfile returns the caller's profile.
func (s *Server) GetCustomerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please try again."})
		return
	}

	customer, err := s.accounts.CustomerByID(user.ID)
	if err != nil {
		if errors.Is(err, accounts.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerProfile overwrites the caller's profile fields.
func (s *Server) UpdateCustomerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please try again."})
		return
	}

	var in accounts.CustomerProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := s.accounts.UpdateCustomerProfile(user.ID, in)
	if err != nil {
		if errors.Is(err, accounts.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// AddToCart upserts or removes one cart line.
func (s *Server) AddToCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unauthenticated"})
		return
	}

	var in orders.LineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.cart.AddOrUpdateLine(user.ID, in.ID, in.Unit)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrFoodItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found."})
		case errors.Is(err, cart.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCart returns the resolved cart.
func (s *Server) GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unauthenticated"})
		return
	}

	result, err := s.cart.Get(user.ID)
	if err != nil {
		if errors.Is(err, cart.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// EmptyCart clears the cart and returns the customer record.
func (s *Server) EmptyCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unauthenticated"})
		return
	}

	customer, err := s.cart.Clear(user.ID)
	if err != nil {
		if errors.Is(err, cart.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateOrder places an order from the requested lines.
func (s *Server) CreateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	var lines []orders.LineInput
	if err := c.ShouldBindJSON(&lines); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Create(user.ID, lines)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrCustomerNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		case errors.Is(err, orders.ErrNothingToOrder):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unexpected error while placing an order"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if s.metrics != nil {
		s.metrics.OrderPlaced(order.TotalAmount)
	}
	c.JSON(http.StatusOK, order)
}

// GetCustomerOrders lists the caller's orders.
func (s *Server) GetCustomerOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	list, err := s.orders.ListForCustomer(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCustomerOrderByID returns one order with food detail joined.
func (s *Server) GetCustomerOrderByID(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	order, err := s.orders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
