package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
)

// Client verifies M-PESA transaction references against the Daraja API.
// Verification is advisory: payment recording proceeds even when the
// gateway is unreachable, the caller decides what to do with the result.
type Client interface {
	VerifyTransaction(ctx context.Context, txnRef string, amount decimal.Decimal) (*TransactionStatus, error)
}

// TransactionStatus is the subset of the transaction query response we
// care about when reconciling a recorded payment.
type TransactionStatus struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Phone         string          `json:"phone"`
	CompletedAt   time.Time       `json:"completed_at"`
	AmountMatches bool            `json:"amount_matches"`
}

type client struct {
	cfg    config.MpesaConfig
	http   *retryablehttp.Client
	logger *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg *config.Configuration, log *logger.Logger) Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = cfg.Mpesa.Timeout()
	rc.Logger = log.GetRetryableHTTPLogger()

	return &client{
		cfg:    cfg.Mpesa,
		http:   rc,
		logger: log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (c *client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	url := fmt.Sprintf("%s/oauth/v1/generate?grant_type=client_credentials", strings.TrimRight(c.cfg.BaseURL, "/"))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ierr.NewErrorf("failed to build token request").
			WithHint("M-PESA gateway configuration may be invalid").
			Mark(ierr.ErrHTTPClient)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("M-PESA gateway is unreachable").
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", ierr.NewErrorf("token request failed with status %d", resp.StatusCode).
			WithHint("Check M-PESA consumer key and secret").
			WithReportableDetails(map[string]any{"status": resp.StatusCode}).
			Mark(ierr.ErrHTTPClient)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", ierr.WithError(err).
			WithHint("Unexpected token response from M-PESA gateway").
			Mark(ierr.ErrHTTPClient)
	}

	c.accessToken = tok.AccessToken
	// Daraja tokens last an hour; refresh a minute early.
	c.tokenExpiry = time.Now().Add(59 * time.Minute)
	return c.accessToken, nil
}

type queryResponse struct {
	TransactionID string `json:"TransactionID"`
	Amount        string `json:"Amount"`
	Phone         string `json:"PhoneNumber"`
	FinalisedTime string `json:"FinalisedTime"`
	ResultCode    int    `json:"ResultCode"`
	ResultDesc    string `json:"ResultDesc"`
}

func (c *client) VerifyTransaction(ctx context.Context, txnRef string, amount decimal.Decimal) (*TransactionStatus, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"TransactionID":   txnRef,
		"IdentifierType":  "4",
		"CommandID":       "TransactionStatusQuery",
		"ResultURL":       "",
		"QueueTimeOutURL": "",
		"Remarks":         "rent payment verification",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	url := fmt.Sprintf("%s/mpesa/transactionstatus/v1/query", strings.TrimRight(c.cfg.BaseURL, "/"))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrHTTPClient)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("M-PESA gateway is unreachable").
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, ierr.NewErrorf("transaction query failed with status %d", resp.StatusCode).
			WithReportableDetails(map[string]any{
				"status":  resp.StatusCode,
				"txn_ref": txnRef,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	var qr queryResponse
	if err := json.Unmarshal(raw, &qr); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unexpected query response from M-PESA gateway").
			Mark(ierr.ErrHTTPClient)
	}
	if qr.ResultCode != 0 {
		return nil, ierr.NewErrorf("transaction %s not found: %s", txnRef, qr.ResultDesc).
			WithHint("The transaction reference could not be verified").
			WithReportableDetails(map[string]any{"txn_ref": txnRef, "result_code": qr.ResultCode}).
			Mark(ierr.ErrNotFound)
	}

	gwAmount, err := decimal.NewFromString(qr.Amount)
	if err != nil {
		gwAmount = decimal.Zero
	}
	completed, _ := time.Parse("20060102150405", qr.FinalisedTime)

	status := &TransactionStatus{
		TransactionID: qr.TransactionID,
		Amount:        gwAmount,
		Phone:         qr.Phone,
		CompletedAt:   completed,
		AmountMatches: gwAmount.Equal(amount),
	}

	c.logger.Debugw("verified mpesa transaction",
		"txn_ref", txnRef,
		"amount_matches", status.AmountMatches,
	)
	return status, nil
}
