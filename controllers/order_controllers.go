package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/models"
	"github.com/restaurantsys/backoffice/services"
	"github.com/restaurantsys/backoffice/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB, limits config.Limits) *OrderController {
	return &OrderController{service: services.NewOrderService(db, limits)}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.service.GetByID(c.Request.Context(), parseID(c, "order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New(services.NotFoundMessage))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := oc.service.Create(c.Request.Context(), &order)
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}

	created, _ := res.Data()
	utils.InfoLogger.Printf("Order created (ID=%d) number=%s customer=%d", created.ID, created.OrderNumber, created.CustomerID)
	utils.RespondJSON(c, http.StatusCreated, res.Message(), created)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	order.ID = parseID(c, "order_id")

	respondMutation(c, oc.service.Update(c.Request.Context(), &order))
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	respondMutation(c, oc.service.Delete(c.Request.Context(), parseID(c, "order_id")))
}
