package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(bookingURL, waybillURL string) config.CarrierConfig {
	return config.CarrierConfig{
		BookingURL: bookingURL,
		WaybillURL: waybillURL,
		APIUID:     "uid-1",
		APIKey:     "key-1",
		ClientURL:  "https://shop.example.com",
	}
}

func TestBookWaybill(t *testing.T) {
	var received waybillRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "uid-1", r.Header.Get("X-MyBring-API-Uid"))
		assert.Equal(t, "key-1", r.Header.Get("X-MyBring-API-Key"))
		assert.Equal(t, "https://shop.example.com", r.Header.Get("X-Bring-Client-URL"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"WB-1","links":{"pdf":"https://api.example/wb-1.pdf"}}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))
	bookingErrors, waybill := client.BookWaybill(context.Background(), "500", map[string]string{
		"l2": "B2", "l1": "B1",
	})

	assert.Nil(t, bookingErrors)
	require.NotNil(t, waybill)
	assert.Equal(t, "WB-1", waybill.Data.ID)
	assert.Equal(t, "https://api.example/wb-1.pdf", waybill.Data.Links["pdf"])

	assert.Equal(t, "500", received.CustomerNumber)
	// Numbers travel sorted so identical submissions produce identical
	// request bodies.
	assert.Equal(t, []string{"B1", "B2"}, received.ConsignmentNumbers)
}

func TestBookWaybillStructuredErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"E1","title":"Invalid address"},{"code":"E2","title":"Unknown customer"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))
	bookingErrors, waybill := client.BookWaybill(context.Background(), "500", map[string]string{"l1": "B1"})

	assert.Nil(t, waybill)
	assert.Equal(t, []string{"E1: Invalid address", "E2: Unknown customer"}, bookingErrors)
}

func TestBookWaybillFallbackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway blew up"))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))
	bookingErrors, waybill := client.BookWaybill(context.Background(), "500", map[string]string{"l1": "B1"})

	assert.Nil(t, waybill)
	assert.Equal(t, []string{"HTTP 500: Internal Server Error"}, bookingErrors)
}

func TestBookConsignment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload models.BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "500", payload.Product.CustomerNumber)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"consignments":[{"correlationId":"corr-1","confirmation":{"consignmentNumber":"A1"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))
	response, bookingErrors := client.BookConsignment(context.Background(), models.BookingPayload{
		Product: models.Product{ID: "SERVICEPAKKE", CustomerNumber: "500"},
	})

	assert.Nil(t, bookingErrors)
	require.NotNil(t, response)
	require.Len(t, response.Consignments, 1)
	assert.Equal(t, "A1", response.Consignments[0].Confirmation.ConsignmentNumber)
}

func TestBookConsignmentErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"E1","title":"Missing sender"}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))
	response, bookingErrors := client.BookConsignment(context.Background(), models.BookingPayload{})

	assert.Nil(t, response)
	assert.Equal(t, []string{"E1: Missing sender"}, bookingErrors)
}
