package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	store       *service.CaseStore
	editor      *service.Editor
	attachments service.AttachmentStore
	maxSize     int64
}

// NewEditorHandler creates the editor endpoints. Uploads above maxSize bytes are
// refused; zero disables the check.
func NewEditorHandler(store *service.CaseStore, editor *service.Editor, attachments service.AttachmentStore, maxSize int64) *EditorHandler {
	return &EditorHandler{
		store:       store,
		editor:      editor,
		attachments: attachments,
		maxSize:     maxSize,
	}
}

type statusRequest struct {
	Status model.MinutationStatus `json:"status" binding:"required"`
}

type locationRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Open loads a record into the editor, replacing any open one
func (h *EditorHandler) Open(c *gin.Context) {
	record, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	session := h.editor.Open(record)
	logger.Info(c.Request.Context(), "editor opened", "session", session)
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

// Snapshot returns the working copy, pending attachment and summary state
func (h *EditorHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

func (h *EditorHandler) SetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.editor.SetStatus(req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

func (h *EditorHandler) SetLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.editor.SetLocationField(req.Field, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

// Attach uploads a decision PDF and makes it the pending document of the open record
func (h *EditorHandler) Attach(c *gin.Context) {
	st := h.editor.Snapshot()
	if !st.Open {
		respondError(c, service.ErrNoActiveRecord)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}
	if h.maxSize > 0 && header.Size > h.maxSize {
		respondError(c, service.ErrAttachmentTooLarge)
		return
	}

	// Trust the file header over the declared content type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	if !strings.Contains(http.DetectContentType(buffer[:n]), "pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	att, err := h.attachments.Put(c.Request.Context(), header.Filename, file, header.Size, "application/pdf")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.editor.AttachFile(st.Session, att); err != nil {
		respondError(c, err)
		return
	}

	logger.Info(c.Request.Context(), "decision document attached", "filename", att.Filename, "size", att.Size)
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

// Save writes the working copy to the store and closes the editor
func (h *EditorHandler) Save(c *gin.Context) {
	st := h.editor.Snapshot()
	ctx := c.Request.Context()
	if st.Record != nil {
		ctx = logger.WithCaseID(ctx, st.Record.ID)
	}

	record, err := h.editor.Save(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": record})
}

// Cancel discards the working copy
func (h *EditorHandler) Cancel(c *gin.Context) {
	h.editor.Close()
	c.JSON(http.StatusOK, h.editor.Snapshot())
}

// Summary starts generating the archive label text. The result shows up in
// the editor snapshot once it arrives.
func (h *EditorHandler) Summary(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())
	if st := h.editor.Snapshot(); st.Record != nil {
		ctx = logger.WithCaseID(ctx, st.Record.ID)
	}

	done, err := h.editor.RequestSummaryAsync(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	go func() {
		outcome := <-done
		if errors.Is(outcome.Err, service.ErrStaleSummary) {
			return
		}
		logger.Debug(ctx, "summary ready", "result", outcome.Result.Kind.String())
	}()

	c.JSON(http.StatusAccepted, h.editor.Snapshot())
}
