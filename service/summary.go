package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/config"
	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
)

// Fixed texts shown when no summary could be produced
const (
	MsgSummaryNotConfigured = "API Key not configured. Unable to generate AI summary."
	MsgSummaryEmpty         = "Gagal membuat ringkasan."
	MsgSummaryFailed        = "Terjadi kesalahan saat menghubungi layanan AI."
)

// SummaryKind tells how a summary request ended
type SummaryKind int

const (
	SummaryOK SummaryKind = iota
	SummaryNotConfigured
	SummaryEmpty
	SummaryFailed
)

func (k SummaryKind) String() string {
	switch k {
	case SummaryOK:
		return "ok"
	case SummaryNotConfigured:
		return "not_configured"
	case SummaryEmpty:
		return "empty"
	case SummaryFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SummaryResult is the outcome of a summary request. It always has display text.
type SummaryResult struct {
	Kind SummaryKind
	text string
}

// Text returns the generated summary or the fixed message for Kind
func (r SummaryResult) Text() string {
	switch r.Kind {
	case SummaryOK:
		return r.text
	case SummaryNotConfigured:
		return MsgSummaryNotConfigured
	case SummaryEmpty:
		return MsgSummaryEmpty
	default:
		return MsgSummaryFailed
	}
}

// SummaryService calls a Gemini-compatible generateContent endpoint
type SummaryService struct {
	config     *config.SummaryConfig
	httpClient *http.Client
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func NewSummaryService(cfg *config.SummaryConfig) *SummaryService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SummaryService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether a credential is set
func (s *SummaryService) Configured() bool {
	return s.config.APIKey != ""
}

// Generate asks the service for an archive label summary of record.
// Errors are logged and reported through the result, never returned.
func (s *SummaryService) Generate(ctx context.Context, record model.CaseRecord) SummaryResult {
	ctx = logger.WithCaseID(ctx, record.ID)

	if !s.Configured() {
		summaryRequestsTotal.WithLabelValues(SummaryNotConfigured.String()).Inc()
		return SummaryResult{Kind: SummaryNotConfigured}
	}

	start := time.Now()
	text, err := s.generateContent(ctx, BuildSummaryPrompt(record))
	summaryDuration.Observe(time.Since(start).Seconds())

	var result SummaryResult
	switch {
	case err != nil:
		logger.Error(ctx, "summary generation failed", "error", err)
		result = SummaryResult{Kind: SummaryFailed}
	case text == "":
		logger.Warn(ctx, "summary service returned empty text")
		result = SummaryResult{Kind: SummaryEmpty}
	default:
		result = SummaryResult{Kind: SummaryOK, text: text}
	}

	summaryRequestsTotal.WithLabelValues(result.Kind.String()).Inc()
	return result
}

// BuildSummaryPrompt renders the instruction sent for record
func BuildSummaryPrompt(record model.CaseRecord) string {
	parties := record.Parties
	if parties == "" {
		parties = "N/A"
	}
	finality := record.FinalityDate
	if finality == "" {
		finality = "Belum BHT"
	}

	var b strings.Builder
	b.WriteString("Bertindaklah sebagai asisten panitera pengadilan yang profesional.\n")
	b.WriteString("Buatkan ringkasan singkat (maksimal 2 paragraf) untuk keperluan label arsip minutasi berdasarkan data perkara berikut.\n")
	b.WriteString("Gunakan Bahasa Indonesia yang formal.\n\n")
	b.WriteString("Data Perkara:\n")
	fmt.Fprintf(&b, "- Nomor: %s\n", record.CaseNumber)
	fmt.Fprintf(&b, "- Jenis: %s\n", record.Kind)
	fmt.Fprintf(&b, "- Klasifikasi: %s\n", record.Classification)
	fmt.Fprintf(&b, "- Tahun: %d\n", record.Year)
	fmt.Fprintf(&b, "- Pihak: %s\n", parties)
	fmt.Fprintf(&b, "- Tanggal Putus: %s\n", record.DecisionDate)
	fmt.Fprintf(&b, "- Status BHT: %s\n", finality)
	return b.String()
}

func (s *SummaryService) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(s.config.APIURL, "/"), s.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("summary API error %d %s: %s", result.Error.Code, result.Error.Status, result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary API returned status %d", resp.StatusCode)
	}

	if len(result.Candidates) == 0 {
		return "", nil
	}
	var text strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return strings.TrimSpace(text.String()), nil
}
