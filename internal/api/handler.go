package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"examprep/internal/domain"
	"examprep/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler holds the service dependencies for all API routes
type Handler struct {
	chat     *service.ChatService
	ingest   *service.IngestService
	summary  *service.SummaryService
	generate *service.GenerateService
	stats    *service.StatsService
}

// Chat handles a chat turn
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.chat.Chat(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSessions returns all sessions
func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.chat.ListSessions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "total": len(sessions)})
}

// GetSession returns a session by id
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.chat.GetSession(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.chat.DeleteSession(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadPaper handles an exam paper upload
func (h *Handler) UploadPaper(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	contents, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	year := 0
	if raw := c.PostForm("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return
		}
	}

	paper, err := h.ingest.UploadPaper(c.Request.Context(), file.Filename, contents, c.PostForm("subject"), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, paper)
}

// ListPapers returns all paper records
func (h *Handler) ListPapers(c *gin.Context) {
	papers, err := h.ingest.ListPapers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"papers": papers, "total": len(papers)})
}

// GetPaper returns a paper record by id
func (h *Handler) GetPaper(c *gin.Context) {
	paper, err := h.ingest.GetPaper(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paper)
}

// SummarizePDF summarizes an uploaded PDF in the requested mode
func (h *Handler) SummarizePDF(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	contents, err := readUpload(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.summary.SummarizePDF(c.Request.Context(), file.Filename, contents, c.PostForm("mode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SummarizeText summarizes raw text in the requested mode
func (h *Handler) SummarizeText(c *gin.Context) {
	var req domain.SummarizeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.summary.SummarizeText(c.Request.Context(), req.Text, req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateMindMap generates and persists a mind map
func (h *Handler) GenerateMindMap(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mindMap, err := h.generate.GenerateMindMap(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mindMap)
}

// ListMindMaps returns all mind maps
func (h *Handler) ListMindMaps(c *gin.Context) {
	mindMaps, err := h.generate.ListMindMaps()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mind_maps": mindMaps, "total": len(mindMaps)})
}

// GetMindMap returns a mind map by id
func (h *Handler) GetMindMap(c *gin.Context) {
	mindMap, err := h.generate.GetMindMap(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mindMap)
}

// GenerateModule generates and persists a learning module
func (h *Handler) GenerateModule(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.generate.GenerateModule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

// ListModules returns all learning modules
func (h *Handler) ListModules(c *gin.Context) {
	modules, err := h.generate.ListModules()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules, "total": len(modules)})
}

// GetModule returns a learning module by id
func (h *Handler) GetModule(c *gin.Context) {
	module, err := h.generate.GetModule(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

// GeneratePodcast generates and persists a podcast
func (h *Handler) GeneratePodcast(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	podcast, err := h.generate.GeneratePodcast(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, podcast)
}

// ListPodcasts returns all podcasts
func (h *Handler) ListPodcasts(c *gin.Context) {
	podcasts, err := h.generate.ListPodcasts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"podcasts": podcasts, "total": len(podcasts)})
}

// GetPodcast returns a podcast by id
func (h *Handler) GetPodcast(c *gin.Context) {
	podcast, err := h.generate.GetPodcast(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, podcast)
}

// GetPodcastAudio serves the synthesized audio file for a podcast
func (h *Handler) GetPodcastAudio(c *gin.Context) {
	path, err := h.generate.PodcastAudioPath(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.File(path)
}

// GetStats returns entity counts
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.stats.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	contents, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return contents, nil
}
