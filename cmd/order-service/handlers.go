package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/storefront-account/internal/account"
	"github.com/MikeMC777/storefront-account/internal/notify"
	"github.com/MikeMC777/storefront-account/internal/order"
	"github.com/MikeMC777/storefront-account/internal/product"
	"github.com/MikeMC777/storefront-account/internal/remote"
)

func newRouter(s *account.Session) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	registerRoutes(r, s)
	return r
}

func registerRoutes(r gin.IRouter, s *account.Session) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	g := r.Group("/account")
	g.GET("/orders", listOrdersHandler(s))
	g.GET("/orders/summary", orderSummaryHandler(s))
	g.POST("/orders/:id/cancel", cancelOrderHandler(s))
	g.DELETE("/orders/:id", deleteOrderHandler(s))
	g.GET("/warranties", listWarrantiesHandler(s))
	g.GET("/notifications", listNotificationsHandler(s))
	g.POST("/notifications/read-all", markAllReadHandler(s))
	g.POST("/notifications/:id/read", markReadHandler(s))
}

// writeError maps core errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	code := http.StatusBadGateway
	switch {
	case errors.Is(err, remote.ErrRemote):
		// upstream fault, even when it wraps a core error
	case errors.Is(err, order.ErrNotCancelled), errors.Is(err, order.ErrTerminal):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidStatus):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrNotFound), errors.Is(err, remote.ErrNotFound):
		code = http.StatusNotFound
	}
	c.JSON(code, product.HTTPError{Error: err.Error()})
}

// listOrdersHandler godoc
// @Summary      Order history of the signed-in customer
// @Tags         orders
// @Produce      json
// @Success      200  {array}   account.OrderView
// @Failure      502  {object}  product.HTTPError
// @Router       /account/orders [get]
func listOrdersHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.Orders(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// orderSummaryHandler godoc
// @Summary      Order count, revenue and orders in delivery
// @Tags         orders
// @Produce      json
// @Success      200  {object}  order.Summary
// @Failure      502  {object}  product.HTTPError
// @Router       /account/orders/summary [get]
func orderSummaryHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := s.Summary(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}

// cancelOrderHandler godoc
// @Summary      Cancel an order
// @Description  Cancelling an already cancelled order is a no-op.
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  account.OrderView
// @Failure      404  {object}  product.HTTPError
// @Failure      409  {object}  product.HTTPError
// @Failure      502  {object}  product.HTTPError
// @Router       /account/orders/{id}/cancel [post]
func cancelOrderHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.Cancel(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteOrderHandler godoc
// @Summary      Delete a cancelled order
// @Tags         orders
// @Param        id   path      string  true  "Order ID"
// @Success      204
// @Failure      404  {object}  product.HTTPError
// @Failure      409  {object}  product.HTTPError
// @Failure      502  {object}  product.HTTPError
// @Router       /account/orders/{id} [delete]
func deleteOrderHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// listWarrantiesHandler godoc
// @Summary      Warranty lookup for delivered items
// @Tags         warranties
// @Produce      json
// @Success      200  {array}   warranty.View
// @Failure      502  {object}  product.HTTPError
// @Router       /account/warranties [get]
func listWarrantiesHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := s.Warranties(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// NotificationList is the header dropdown payload.
// swagger:model NotificationList
type NotificationList struct {
	Items  []notify.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

// listNotificationsHandler godoc
// @Summary      Recent order notifications
// @Description  Reloads the customer's orders on every call; read flags are kept.
// @Tags         notifications
// @Produce      json
// @Success      200      {object}  NotificationList
// @Failure      502      {object}  product.HTTPError
// @Router       /account/notifications [get]
func listNotificationsHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, unread, err := s.Notifications(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, NotificationList{Items: items, Unread: unread})
	}
}

// markReadHandler godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  map[string]int
// @Router       /account/notifications/{id}/read [post]
func markReadHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"unread": s.MarkAsRead(c.Param("id"))})
	}
}

// markAllReadHandler godoc
// @Summary      Mark every notification as read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /account/notifications/read-all [post]
func markAllReadHandler(s *account.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.MarkAllAsRead()
		c.JSON(http.StatusOK, gin.H{"unread": 0})
	}
}
