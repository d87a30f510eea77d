package api

import (
	"github.com/gin-gonic/gin"

	"examprep/internal/api/middleware"
	"examprep/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AdminAPIKey  string
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	ingestService *service.IngestService,
	summaryService *service.SummaryService,
	generateService *service.GenerateService,
	statsService *service.StatsService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := &Handler{
		chat:     chatService,
		ingest:   ingestService,
		summary:  summaryService,
		generate: generateService,
		stats:    statsService,
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/chat", h.Chat)
		apiGroup.GET("/sessions", h.ListSessions)
		apiGroup.GET("/sessions/:id", h.GetSession)
		apiGroup.DELETE("/sessions/:id", middleware.AdminKey(cfg.AdminAPIKey), h.DeleteSession)

		apiGroup.POST("/papers", h.UploadPaper)
		apiGroup.GET("/papers", h.ListPapers)
		apiGroup.GET("/papers/:id", h.GetPaper)

		apiGroup.POST("/summarize", h.SummarizePDF)
		apiGroup.POST("/summarize-text", h.SummarizeText)

		apiGroup.POST("/mindmaps", h.GenerateMindMap)
		apiGroup.GET("/mindmaps", h.ListMindMaps)
		apiGroup.GET("/mindmaps/:id", h.GetMindMap)

		apiGroup.POST("/modules", h.GenerateModule)
		apiGroup.GET("/modules", h.ListModules)
		apiGroup.GET("/modules/:id", h.GetModule)

		apiGroup.POST("/podcasts", h.GeneratePodcast)
		apiGroup.GET("/podcasts", h.ListPodcasts)
		apiGroup.GET("/podcasts/:id", h.GetPodcast)
		apiGroup.GET("/podcasts/:id/audio", h.GetPodcastAudio)

		apiGroup.GET("/stats", h.GetStats)
	}

	return r
}
