package api

import (
	"fmt"
	"net/http"

	api "folio/api-types"
	"folio/internal/prices"
	"folio/internal/resolver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartApi(port int, r resolver.Resolver) error {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to folio"})
	})

	router.GET("/universe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"indices":    prices.USIndices,
			"sectorEtfs": prices.USSectorETFs,
			"popular":    prices.PopularUSStocks,
			"sp500":      prices.SP500Components,
			"nasdaq100":  prices.Nasdaq100Components,
		})
	})

	router.POST("/metrics", func(c *gin.Context) {
		var req api.MetricsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.PortfolioMetrics(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.POST("/optimize", func(c *gin.Context) {
		var req api.OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.Optimize(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.POST("/backtest", func(c *gin.Context) {
		var req api.BacktestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.Backtest(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.POST("/correlationMatrix", func(c *gin.Context) {
		var req api.CorrelationMatrixRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		out, err := r.CorrelationMatrix(c.Request.Context(), req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
