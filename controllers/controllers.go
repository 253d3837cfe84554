// Package controllers maps HTTP requests onto the entity services. The
// controllers stay thin: bind, call the service, translate the result.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restaurantsys/backoffice/results"
	"github.com/restaurantsys/backoffice/services"
	"github.com/restaurantsys/backoffice/utils"
)

// parseID reads a numeric path parameter. Anything non-numeric or negative
// comes back as 0, which the services treat as invalid.
func parseID(c *gin.Context, param string) uint {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}

// failureStatus picks the HTTP code for a failed OperationResult. Not-found
// outcomes map to 404 and store faults to 500; everything else (validation,
// referential miss, bad id) is a 400. Only fault results carry detail, which
// is how the two client-error classes are told apart from an outage. The
// message travels verbatim in every case.
func failureStatus(message, detail string) int {
	if message == services.NotFoundMessage {
		return http.StatusNotFound
	}
	if detail != "" {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func respondMutation(c *gin.Context, res results.OperationResult[bool]) {
	if !res.IsSuccess() {
		utils.RespondJSON(c, failureStatus(res.Message(), res.Detail()), res.Message(), nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, res.Message(), nil)
}
