package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/webcalc/calc-backend/pkg/apihelpers/middlewares"
	"github.com/webcalc/calc-backend/pkg/calcengine"
)

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	root := rg.Group("/")

	if len(h.apiKeys) > 0 {
		root.POST("/calculate",
			mw.HasValidAPIKey(h.apiKeys),
			mw.RequirePayload(),
			h.calculate)
		return
	}

	root.POST("/calculate",
		mw.RequirePayload(),
		h.calculate)
}

type CalculateReq struct {
	Expression string `json:"expression"`
}

func (h *HttpEndpoints) calculate(c *gin.Context) {
	var req CalculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()), slog.String("requestID", mw.GetRequestID(c)))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := calcengine.Evaluate(req.Expression)
	if err != nil {
		slog.Info("expression rejected",
			slog.String("error", err.Error()),
			slog.String("requestID", mw.GetRequestID(c)))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Debug("expression evaluated",
		slog.String("result", result.String()),
		slog.String("requestID", mw.GetRequestID(c)))
	c.JSON(http.StatusOK, gin.H{"result": result})
}
