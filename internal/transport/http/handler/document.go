package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"docuchat/internal/app"
	"docuchat/internal/config"
	"docuchat/internal/pkg/docxwriter"
	"docuchat/internal/repository"
	"docuchat/internal/transport/http/response"
)

// placeholderText goes into the output document when extraction yields
// nothing, so the download is never an empty file.
const placeholderText = "No text detected"

type DocumentHandler struct {
	extractService *app.ExtractService
	indexService   *app.IndexService
	store          *repository.DocumentStore
	storage        config.StorageConfig
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewDocumentHandler(
	extractService *app.ExtractService,
	indexService *app.IndexService,
	store *repository.DocumentStore,
	storage config.StorageConfig,
	maxUploadBytes int64,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		extractService: extractService,
		indexService:   indexService,
		store:          store,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload accepts a multipart PDF, extracts its text, writes the DOCX
// rendition, builds the retrieval index and marks the document as the
// latest. Responds with the fresh UID and the download reference.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "no file provided")
		return
	}
	if file.Size > h.maxUploadBytes {
		response.Error(c, http.StatusBadRequest, response.CodeFileTooLarge, "file too large")
		return
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFile, "only PDF files are supported")
		return
	}

	uid := strings.ReplaceAll(uuid.NewString(), "-", "")
	pdfPath := filepath.Join(h.storage.UploadDir, uid+"_"+sanitizeFilename(file.Filename))
	if err := c.SaveUploadedFile(file, pdfPath); err != nil {
		h.logger.Error("save upload failed", zap.String("uid", uid), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to store upload")
		return
	}

	text := h.extractService.Extract(pdfPath)

	docText := text
	if docText == "" {
		docText = placeholderText
	}
	outName := uid + ".docx"
	if err := docxwriter.Write(docText, filepath.Join(h.storage.OutputDir, outName)); err != nil {
		h.logger.Error("write output document failed", zap.String("uid", uid), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to write output document")
		return
	}

	h.indexService.Build(uid, text)
	h.store.SetLatest(uid)

	response.OK(c, gin.H{
		"uid":          uid,
		"download_url": "/download/" + outName,
	})
}

// Download serves a previously produced output document as an attachment.
func (h *DocumentHandler) Download(c *gin.Context) {
	name := c.Param("name")
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".docx") {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid document name")
		return
	}
	path := filepath.Join(h.storage.OutputDir, name)
	if _, err := os.Stat(path); err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "document not found")
		return
	}
	c.FileAttachment(path, name)
}

// sanitizeFilename keeps only the base name and replaces path separators and
// whitespace, mirroring what a careful upload handler does with
// client-supplied names.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_")
	name = replacer.Replace(name)
	if name == "." || name == ".." || name == "" {
		return "upload.pdf"
	}
	return name
}
