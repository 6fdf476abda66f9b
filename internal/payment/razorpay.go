package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// RazorpayClient creates orders through the Razorpay Orders API using
// the key pair from the environment.
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayClient() *RazorpayClient {
	return &RazorpayClient{
		keyID:     os.Getenv("RAZORPAY_KEY_ID"),
		keySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		baseURL:   "https://api.razorpay.com/v1",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *RazorpayClient) Create(
	ctx context.Context,
	amountPaise int64,
	currency string,
	receipt string,
) (string, error) {

	if r.keyID == "" || r.keySecret == "" {
		return "", errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
	}
	if amountPaise <= 0 {
		return "", fmt.Errorf("%w: non-positive amount", ErrPaymentFailed)
	}

	payload := map[string]any{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.baseURL+"/orders",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: razorpay api error: %s", ErrPaymentFailed, string(raw))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("%w: empty order id in response", ErrPaymentFailed)
	}

	return result.ID, nil
}
