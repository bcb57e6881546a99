package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/config"
)

// GeminiService Gemini APIとの通信を管理するサービス
type GeminiService interface {
	GenerateContent(ctx context.Context, prompt, model string) (string, error)
}

// geminiService GeminiServiceの実装
type geminiService struct {
	config     *config.Config
	httpClient *http.Client
}

// NewGeminiService GeminiServiceを作成
func NewGeminiService(cfg *config.Config) GeminiService {
	return &geminiService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Gemini.Timeout,
		},
	}
}

// generateContentRequest Gemini APIに送るリクエスト構造体
type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// generateContentResponse Gemini APIからのレスポンス構造体
type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateContent プロンプトからテキストを生成する
func (s *geminiService) GenerateContent(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = s.config.Gemini.Model
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.config.Gemini.BaseURL, model, url.QueryEscape(s.config.Gemini.APIKey))

	requestBody, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewServiceUnavailable("Service unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini APIがエラーを返しました: HTTP %d", resp.StatusCode)
	}

	var response generateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("Gemini APIのレスポンスをパースできませんでした: %v", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini APIから空のレスポンスが返されました")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
