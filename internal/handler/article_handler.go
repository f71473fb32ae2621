package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madmax304/news-aggregator-test/internal/model"
	"github.com/madmax304/news-aggregator-test/internal/pipeline"
)

type PipelineRunner interface {
	Run(ctx context.Context) (*model.PipelineResult, error)
}

type ArticleHandler struct {
	pipeline PipelineRunner
}

func NewArticleHandler(pipeline PipelineRunner) *ArticleHandler {
	return &ArticleHandler{pipeline: pipeline}
}

// ProcessArticle runs the whole pipeline for one request. The run is detached from the
// client connection: only stage timeouts end it early.
func (h *ArticleHandler) ProcessArticle(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.pipeline.Run(ctx)
	if err != nil {
		slog.Error("error processing article", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: pipeline.Message(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
