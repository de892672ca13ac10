package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HuggingFaceProvider calls the hosted inference API for a text-generation
// model.
type HuggingFaceProvider struct {
	BaseURL string
	Model   string
	Token   string
	Client  *http.Client
}

func NewHuggingFaceProvider(baseURL, model, token string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	if model == "" {
		model = "microsoft/DialoGPT-medium"
	}
	return &HuggingFaceProvider{
		BaseURL: baseURL,
		Model:   model,
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type hfGenerateReq struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
}

type hfGenerateResp struct {
	GeneratedText string `json:"generated_text"`
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.Client == nil {
		return "", errors.New("huggingface: http client is nil")
	}

	b, err := json.Marshal(hfGenerateReq{
		Inputs:     prompt,
		Parameters: hfParameters{MaxLength: 200},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s", p.BaseURL, p.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("huggingface: status %d", resp.StatusCode)
	}

	var decoded []hfGenerateResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded) == 0 || decoded[0].GeneratedText == "" {
		return "", errors.New("huggingface: empty response")
	}
	return decoded[0].GeneratedText, nil
}
