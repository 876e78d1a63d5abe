package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/models"
)

// Client talks to the carrier's booking and waybill APIs. One call per
// customer-number group, no retry at this layer; retries are operator
// driven.
type Client struct {
	cfg        config.CarrierConfig
	httpClient *http.Client
}

func NewClient(cfg config.CarrierConfig) *Client {
	return &Client{
		cfg: cfg,
		// Timeout prevents a hanging booking call from pinning a request.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// waybillRequest is the outbound body of a waybill booking. Waybill
// booking has no test option.
type waybillRequest struct {
	CustomerNumber     string   `json:"customerNumber"`
	ConsignmentNumbers []string `json:"consignmentNumbers"`
}

// errorResponse is the structured error body of a failed carrier call.
type errorResponse struct {
	Errors []models.CarrierError `json:"errors"`
}

// BookConsignment posts a booking payload. On 201 the decoded response is
// returned; otherwise the flattened error strings.
func (c *Client) BookConsignment(ctx context.Context, payload models.BookingPayload) (*models.BookingResponse, []string) {
	status, body, err := c.post(ctx, c.cfg.BookingURL, payload)
	if err != nil {
		return nil, []string{err.Error()}
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return nil, flattenErrors(status, body)
	}
	var response models.BookingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, []string{fmt.Sprintf("invalid booking response: %v", err)}
	}
	return &response, nil
}

// BookWaybill books the consignment numbers of one customer-number group
// into a waybill. A non-201 response yields the flattened errors and a
// nil waybill; the caller decides what to keep.
func (c *Client) BookWaybill(ctx context.Context, customerNumber string, consignmentNumbers map[string]string) ([]string, *models.WaybillData) {
	numbers := make([]string, 0, len(consignmentNumbers))
	for _, number := range consignmentNumbers {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	status, body, err := c.post(ctx, c.cfg.WaybillURL, waybillRequest{
		CustomerNumber:     customerNumber,
		ConsignmentNumbers: numbers,
	})
	if err != nil {
		return []string{err.Error()}, nil
	}
	if status != http.StatusCreated {
		return flattenErrors(status, body), nil
	}

	var waybill models.WaybillData
	if err := json.Unmarshal(body, &waybill); err != nil {
		return []string{fmt.Sprintf("invalid waybill response: %v", err)}, nil
	}
	return nil, &waybill
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) (int, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-MyBring-API-Uid", c.cfg.APIUID)
	req.Header.Set("X-MyBring-API-Key", c.cfg.APIKey)
	req.Header.Set("X-Bring-Client-URL", c.cfg.ClientURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// flattenErrors turns a structured errors array into "CODE: title"
// strings; bodies without one fall back to the HTTP status.
func flattenErrors(status int, body []byte) []string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		flattened := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			flattened = append(flattened, fmt.Sprintf("%s: %s", e.Code, e.Title))
		}
		return flattened
	}
	return []string{fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))}
}
