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

type WaiterController struct {
	service *services.WaiterService
}

func NewWaiterController(db *gorm.DB, limits config.Limits) *WaiterController {
	return &WaiterController{service: services.NewWaiterService(db, limits)}
}

func (wc *WaiterController) GetAllWaiters(c *gin.Context) {
	waiters, err := wc.service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of waiters", waiters)
}

func (wc *WaiterController) GetWaiterByID(c *gin.Context) {
	waiter, err := wc.service.GetByID(c.Request.Context(), parseID(c, "waiter_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if waiter == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New(services.NotFoundMessage))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waiter detail", waiter)
}

func (wc *WaiterController) CreateWaiter(c *gin.Context) {
	var waiter models.Waiter
	if err := c.ShouldBindJSON(&waiter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := wc.service.Create(c.Request.Context(), &waiter)
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}

	created, _ := res.Data()
	utils.InfoLogger.Printf("Waiter created (ID=%d) shift=%s", created.ID, created.Shift)
	utils.RespondJSON(c, http.StatusCreated, res.Message(), created)
}

func (wc *WaiterController) UpdateWaiter(c *gin.Context) {
	var waiter models.Waiter
	if err := c.ShouldBindJSON(&waiter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	waiter.ID = parseID(c, "waiter_id")

	respondMutation(c, wc.service.Update(c.Request.Context(), &waiter))
}

func (wc *WaiterController) DeleteWaiter(c *gin.Context) {
	respondMutation(c, wc.service.Delete(c.Request.Context(), parseID(c, "waiter_id")))
}
