package handlers

import (
	"net/http"

	response "limpeza_xpto/internal/adapter/http/dto/response"
	"limpeza_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	usecase usecase.ICrewLedgerUseCase
}

func NewCrewHandler(uc usecase.ICrewLedgerUseCase) *CrewHandler {
	return &CrewHandler{usecase: uc}
}

// GetCrew godoc
// @Summary      Crew ledger (confirmed hours and amount)
// @Tags         crews
// @Produce      json
// @Param        crew_id  path      string  true  "Crew ID"
// @Success      200      {object}  response.CrewResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /crews/{crew_id} [get]
func (h *CrewHandler) GetCrew(c *gin.Context) {
	crew, err := h.usecase.GetCrew(c.Request.Context(), c.Param("crew_id"))
	if err != nil {
		writeAppError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrew(crew))
}
