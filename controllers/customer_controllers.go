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

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(db *gorm.DB, limits config.Limits) *CustomerController {
	return &CustomerController{service: services.NewCustomerService(db, limits)}
}

// GetAllCustomers -> list every customer ordered by id
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> detail of one customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customer, err := cc.service.GetByID(c.Request.Context(), parseID(c, "customer_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if customer == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New(services.NotFoundMessage))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// CreateCustomer -> validate and persist a new customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := cc.service.Create(c.Request.Context(), &customer)
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}

	created, _ := res.Data()
	utils.InfoLogger.Printf("Customer created (ID=%d) %s", created.ID, created.FullName())
	utils.RespondJSON(c, http.StatusCreated, res.Message(), created)
}

// UpdateCustomer -> full-record replacement of an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	customer.ID = parseID(c, "customer_id")

	respondMutation(c, cc.service.Update(c.Request.Context(), &customer))
}

// DeleteCustomer -> delete by id; orders and reservations cascade
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	respondMutation(c, cc.service.Delete(c.Request.Context(), parseID(c, "customer_id")))
}
