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

type DishController struct {
	service *services.DishService
}

func NewDishController(db *gorm.DB, limits config.Limits) *DishController {
	return &DishController{service: services.NewDishService(db, limits)}
}

func (dc *DishController) GetAllDishes(c *gin.Context) {
	dishes, err := dc.service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

func (dc *DishController) GetDishByID(c *gin.Context) {
	dish, err := dc.service.GetByID(c.Request.Context(), parseID(c, "dish_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if dish == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New(services.NotFoundMessage))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

func (dc *DishController) CreateDish(c *gin.Context) {
	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := dc.service.Create(c.Request.Context(), &dish)
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}

	created, _ := res.Data()
	utils.InfoLogger.Printf("Dish created (ID=%d) %q at %s", created.ID, created.Name, utils.FormatPrice(created.Price))
	utils.RespondJSON(c, http.StatusCreated, res.Message(), created)
}

func (dc *DishController) UpdateDish(c *gin.Context) {
	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	dish.ID = parseID(c, "dish_id")

	respondMutation(c, dc.service.Update(c.Request.Context(), &dish))
}

func (dc *DishController) DeleteDish(c *gin.Context) {
	respondMutation(c, dc.service.Delete(c.Request.Context(), parseID(c, "dish_id")))
}
