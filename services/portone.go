package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

const portoneBaseURL = "https://api.iamport.kr"

// PortoneVerifier xác minh thanh toán qua Portone (아임포트) REST API
type PortoneVerifier struct {
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewPortoneVerifier() *PortoneVerifier {
	return &PortoneVerifier{
		apiKey:    os.Getenv("PORTONE_API_KEY"),
		apiSecret: os.Getenv("PORTONE_API_SECRET"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type portoneTokenResponse struct {
	Response struct {
		AccessToken string `json:"access_token"`
	} `json:"response"`
}

type portonePaymentResponse struct {
	Response struct {
		Amount int    `json:"amount"`
		Status string `json:"status"`
	} `json:"response"`
}

func (v *PortoneVerifier) getAccessToken(ctx context.Context) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"imp_key":    v.apiKey,
		"imp_secret": v.apiSecret,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, portoneBaseURL+"/users/getToken", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("portone token request failed: status %d", resp.StatusCode)
	}

	var tokenResp portoneTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	if tokenResp.Response.AccessToken == "" {
		return "", fmt.Errorf("portone token response empty")
	}
	return tokenResp.Response.AccessToken, nil
}

// Verify đối chiếu trạng thái và số tiền của giao dịch impUID với cổng thanh toán
func (v *PortoneVerifier) Verify(ctx context.Context, impUID string, amount int) error {
	token, err := v.getAccessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, portoneBaseURL+"/payments/"+impUID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("portone payment lookup failed: status %d", resp.StatusCode)
	}

	var payResp portonePaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payResp); err != nil {
		return err
	}

	if payResp.Response.Status != "paid" {
		return fmt.Errorf("payment %s not paid: status %s", impUID, payResp.Response.Status)
	}
	if payResp.Response.Amount != amount {
		return fmt.Errorf("payment %s amount mismatch: expected %d, got %d", impUID, amount, payResp.Response.Amount)
	}
	return nil
}
