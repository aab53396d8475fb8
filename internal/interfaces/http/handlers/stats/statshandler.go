package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/j-kappa/ticketing-system/internal/application/ticket/usecases"
	"github.com/j-kappa/ticketing-system/internal/shared/utils"
)

type StatsHandler struct {
	getStatsUC usecases.GetDashboardStatsExecutor
}

func NewStatsHandler(getStatsUC usecases.GetDashboardStatsExecutor) *StatsHandler {
	return &StatsHandler{getStatsUC: getStatsUC}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
