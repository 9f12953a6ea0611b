// Package gin provides the HTTP serving layer. It translates request
// envelopes into calls on the extraction cascade, transcript source, and
// quote ranker, and maps application error codes onto HTTP statuses.
package gin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/youtube"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server serves the content extraction and quote ranking API.
type Server struct {
	extractor   pullquote.Extractor
	scorer      pullquote.Scorer
	transcripts pullquote.TranscriptSource
	logger      *slog.Logger
	router      *gin.Engine
}

// NewServer creates a Server and registers its routes.
func NewServer(extractor pullquote.Extractor, scorer pullquote.Scorer, transcripts pullquote.TranscriptSource, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		extractor:   extractor,
		scorer:      scorer,
		transcripts: transcripts,
		logger:      logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.GET("/healthz", s.handleHealth)
	router.POST("/webpage", s.handleWebpage)
	router.POST("/transcript", s.handleTranscript)
	router.POST("/quotes", s.handleQuotes)
	router.POST("/content", s.handleContent)
	s.router = router

	return s
}

// Handler exposes the router for testing and custom server setups.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// requestLogger tags every request with a UUID and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Header("X-Request-ID", id)

		begin := time.Now()
		c.Next()

		s.logger.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type webpageRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) handleWebpage(c *gin.Context) {
	var req webpageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "invalid request body: %v", err))
		return
	}

	ext, err := s.extractor.Run(c.Request.Context(), req.URL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ext)
}

type transcriptRequest struct {
	URL      string `json:"url" binding:"required"`
	Language string `json:"language"`
}

func (s *Server) handleTranscript(c *gin.Context) {
	var req transcriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "invalid request body: %v", err))
		return
	}

	videoID, ok := youtube.VideoID(req.URL)
	if !ok {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "not a video URL: %q", req.URL))
		return
	}

	segments, err := s.transcripts.Transcript(c.Request.Context(), videoID, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videoId":    videoID,
		"transcript": pullquote.FormatTranscript(segments),
	})
}

type quotesRequest struct {
	URL       string `json:"url"`
	Text      string `json:"text"`
	TopN      int    `json:"topN"`
	Sentiment string `json:"sentiment"`
}

func (s *Server) handleQuotes(c *gin.Context) {
	var req quotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "invalid request body: %v", err))
		return
	}

	polarity := pullquote.Positive
	switch req.Sentiment {
	case "", string(pullquote.Positive):
	case string(pullquote.Negative):
		polarity = pullquote.Negative
	default:
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "unknown sentiment %q", req.Sentiment))
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = pullquote.DefaultTopN
	}

	text := req.Text
	if text == "" && req.URL != "" {
		var err error
		text, err = s.resolveText(c.Request.Context(), req.URL)
		if err != nil {
			writeError(c, err)
			return
		}
	}
	if text == "" {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "either url or text is required"))
		return
	}

	quotes := pullquote.TopQuotes(s.scorer, text, topN, polarity)
	if quotes == nil {
		quotes = []pullquote.ScoredQuote{}
	}

	c.JSON(http.StatusOK, gin.H{
		"sentiment": polarity,
		"count":     len(quotes),
		"quotes":    quotes,
	})
}

// resolveText produces ranking input for a URL: a formatted transcript for
// video URLs, extracted article text for everything else.
func (s *Server) resolveText(ctx context.Context, url string) (string, error) {
	if videoID, ok := youtube.VideoID(url); ok {
		segments, err := s.transcripts.Transcript(ctx, videoID, "")
		if err != nil {
			return "", err
		}
		return pullquote.FormatTranscript(segments), nil
	}

	ext, err := s.extractor.Run(ctx, url)
	if err != nil {
		return "", err
	}
	return ext.Text, nil
}

type contentRequest struct {
	URL      string `json:"url" binding:"required"`
	Language string `json:"language"`
}

// handleContent auto-detects the resource type: video URLs yield a formatted
// transcript, anything else goes through the extraction cascade.
func (s *Server) handleContent(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pullquote.Errorf(pullquote.EINVALID, "invalid request body: %v", err))
		return
	}

	if videoID, ok := youtube.VideoID(req.URL); ok {
		segments, err := s.transcripts.Transcript(c.Request.Context(), videoID, req.Language)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"contentType": "video",
			"videoId":     videoID,
			"text":        pullquote.FormatTranscript(segments),
		})
		return
	}

	ext, err := s.extractor.Run(c.Request.Context(), req.URL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contentType": "webpage",
		"extraction":  ext,
	})
}

// writeError maps application error codes onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch pullquote.ErrorCode(err) {
	case pullquote.EINVALID:
		status = http.StatusBadRequest
	case pullquote.ENOTFOUND:
		status = http.StatusNotFound
	case pullquote.EUNAVAILABLE:
		status = http.StatusBadGateway
	case pullquote.EEXTRACTION:
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{
		"error": pullquote.ErrorMessage(err),
		"code":  pullquote.ErrorCode(err),
	})
}
