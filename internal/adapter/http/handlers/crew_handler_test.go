package handlers

import (
	"net/http"
	"testing"

	"limpeza_xpto/internal/adapter/http/handlers/mocks"
	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCrewHandler_GetCrew(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICrewLedgerUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/crews/:crew_id", NewCrewHandler(uc).GetCrew)

		uc.EXPECT().GetCrew(gomock.Any(), "crew-x").Return(entities.Crew{}, usecase.ErrCrewNotFound)

		w := serve(r, http.MethodGet, "/v1/crews/crew-x", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICrewLedgerUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/crews/:crew_id", NewCrewHandler(uc).GetCrew)

		uc.EXPECT().GetCrew(gomock.Any(), "crew-a").Return(entities.Crew{ID: "crew-a", Hours: 4, TotalAmount: 100}, nil)

		w := serve(r, http.MethodGet, "/v1/crews/crew-a", "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["hours"] != float64(4) || body["total_amount"] != float64(100) {
			t.Fatalf("unexpected crew: %v", body)
		}
	})
}
