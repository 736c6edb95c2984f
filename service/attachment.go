package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Attachment is a decision document uploaded during an editor session.
// URL is a transient handle; it is not guaranteed to outlive the session.
type Attachment struct {
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// AttachmentStore holds uploaded files and hands out references to them
type AttachmentStore interface {
	Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (Attachment, error)
}

// HeldFile is an attachment kept in memory
type HeldFile struct {
	Attachment
	Data []byte
}

// MemoryAttachments keeps uploads in an LRU with a TTL. Entries vanish on
// eviction, expiry or restart.
type MemoryAttachments struct {
	cache     *expirable.LRU[string, *HeldFile]
	maxSize   int64
	urlPrefix string
}

// NewMemoryAttachments creates a store holding at most maxItems files of at most
// maxSize bytes each for ttl. URLs are urlPrefix + key.
func NewMemoryAttachments(maxItems int, ttl time.Duration, maxSize int64, urlPrefix string) *MemoryAttachments {
	return &MemoryAttachments{
		cache:     expirable.NewLRU[string, *HeldFile](maxItems, nil, ttl),
		maxSize:   maxSize,
		urlPrefix: urlPrefix,
	}
}

func (m *MemoryAttachments) Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (Attachment, error) {
	if m.maxSize > 0 && size > m.maxSize {
		return Attachment{}, fmt.Errorf("%w: %d bytes", ErrAttachmentTooLarge, size)
	}

	var buf bytes.Buffer
	src := r
	if m.maxSize > 0 {
		src = io.LimitReader(r, m.maxSize+1)
	}
	n, err := io.Copy(&buf, src)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}
	if m.maxSize > 0 && n > m.maxSize {
		return Attachment{}, fmt.Errorf("%w: more than %d bytes", ErrAttachmentTooLarge, m.maxSize)
	}

	key := uuid.New().String()
	held := &HeldFile{
		Attachment: Attachment{
			Key:         key,
			Filename:    filename,
			ContentType: contentType,
			Size:        n,
			URL:         m.urlPrefix + key,
		},
		Data: buf.Bytes(),
	}
	m.cache.Add(key, held)
	attachmentsTotal.WithLabelValues("memory").Inc()

	return held.Attachment, nil
}

// Open returns the held file for key, if it is still held
func (m *MemoryAttachments) Open(key string) (*HeldFile, bool) {
	return m.cache.Get(key)
}

// Len returns the number of held files
func (m *MemoryAttachments) Len() int {
	return m.cache.Len()
}
