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

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB, limits config.Limits) *ReservationController {
	return &ReservationController{service: services.NewReservationService(db, limits)}
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.service.GetByID(c.Request.Context(), parseID(c, "reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New(services.NotFoundMessage))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := rc.service.Create(c.Request.Context(), &reservation)
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}

	created, _ := res.Data()
	utils.InfoLogger.Printf("Reservation created (ID=%d) people=%d customer=%d", created.ID, created.NumberOfPeople, created.CustomerID)
	utils.RespondJSON(c, http.StatusCreated, res.Message(), created)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	reservation.ID = parseID(c, "reservation_id")

	respondMutation(c, rc.service.Update(c.Request.Context(), &reservation))
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	respondMutation(c, rc.service.Delete(c.Request.Context(), parseID(c, "reservation_id")))
}
