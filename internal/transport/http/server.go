package http

import (
	"github.com/gin-gonic/gin"

	appsvc "docuchat/internal/app"
	"docuchat/internal/bootstrap"
	"docuchat/internal/pkg/ocr"
	"docuchat/internal/pkg/pdfextract"
	"docuchat/internal/transport/http/handler"
	"docuchat/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	var ocrBackend appsvc.TextBackend
	if app.Config.Extract.OCREnabled {
		ocrBackend = ocr.New(app.Config.Extract.OCRLanguage, app.Config.Extract.OCRDPI)
	}
	extractService := appsvc.NewExtractService(
		pdfextract.New(),
		ocrBackend,
		app.Config.Extract.MinDirectTextLen,
		app.Logger,
	)
	indexService := appsvc.NewIndexService(app.Store, app.Config.Retrieval.VectorizerEnabled, app.Logger)
	answerService := appsvc.NewAnswerService(
		app.Store,
		app.Config.Retrieval.TopK,
		app.Config.Retrieval.MinSimilarity,
		app.Logger,
	)

	documentHandler := handler.NewDocumentHandler(
		extractService,
		indexService,
		app.Store,
		app.Config.Storage,
		app.Config.MaxUploadBytes(),
		app.Logger,
	)
	chatHandler := handler.NewChatHandler(answerService, app.Store)
	healthHandler := handler.NewHealthHandler(app)

	router.StaticFile("/", "web/index.html")
	router.GET("/healthz", healthHandler.Check)
	router.GET("/download/:name", documentHandler.Download)

	v1 := router.Group("/api/v1")
	v1.POST("/documents", documentHandler.Upload)
	v1.POST("/chat", chatHandler.Ask)

	return router
}
