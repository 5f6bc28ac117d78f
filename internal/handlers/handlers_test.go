package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paisa/internal/models"
	"paisa/internal/services/simulator"
	"paisa/internal/store"
)

type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

// newSimulator builds the backend with delays and failures disabled so
// handler behavior is deterministic.
func newSimulator(roll float64) simulator.Service {
	return simulator.NewService(simulator.DefaultConfig(), simulator.DefaultProfile(), nil,
		simulator.WithRandomSource(fixedRand{roll}),
		simulator.WithSleep(func(time.Duration) {}),
	)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(payload, &env))
	return resp.StatusCode, env
}

func TestLoginHandler(t *testing.T) {
	newApp := func(roll float64) (*fiber.App, *store.Container) {
		st := store.NewContainer(store.NewMemoryPort(), nil)
		h := NewAuthHandler(newSimulator(roll), st, "test-secret", time.Hour, zap.NewNop())
		app := fiber.New()
		app.Post("/api/login", h.Login)
		return app, st
	}

	t.Run("success returns token and stores the user", func(t *testing.T) {
		app, st := newApp(0.9)
		status, env := postJSON(t, app, "/api/login", fiber.Map{"phone": "9876543210", "otp": "123456"})
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, env.Success)

		var data struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.Token)
		assert.Equal(t, "user-1", data.User.ID)

		snap := st.Snapshot()
		require.NotNil(t, snap.User)
		assert.Equal(t, "9876543210", snap.User.Phone)
	})

	t.Run("wrong OTP maps to 401", func(t *testing.T) {
		app, _ := newApp(0.9)
		status, env := postJSON(t, app, "/api/login", fiber.Map{"phone": "9876543210", "otp": "000000"})
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid OTP. Please try again.", env.Error)
	})

	t.Run("bad phone fails validation before the service runs", func(t *testing.T) {
		app, _ := newApp(0.0)
		status, env := postJSON(t, app, "/api/login", fiber.Map{"phone": "12345", "otp": "123456"})
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.False(t, env.Success)
	})

	t.Run("injected failure maps to 503", func(t *testing.T) {
		app, _ := newApp(0.0)
		status, env := postJSON(t, app, "/api/login", fiber.Map{"phone": "9876543210", "otp": "123456"})
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, "Network error. Please try again.", env.Error)
	})
}

func TestProcessPaymentHandler(t *testing.T) {
	newApp := func() (*fiber.App, *store.Container) {
		st := store.NewContainer(store.NewMemoryPort(), nil)
		h := NewPaymentHandler(newSimulator(0.9), st, zap.NewNop())
		app := fiber.New()
		app.Post("/api/payments", h.ProcessPayment)
		return app, st
	}

	valid := func() fiber.Map {
		return fiber.Map{
			"amount":            "2500.50",
			"recipient":         fiber.Map{"type": "vpa", "value": "priya.patel@paytm"},
			"description":       "Lunch",
			"sender_account_id": "acc-1",
		}
	}

	t.Run("success records the transaction", func(t *testing.T) {
		app, st := newApp()
		status, env := postJSON(t, app, "/api/payments", valid())
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, env.Success)
		require.Len(t, st.Snapshot().Transactions, 1)
	})

	t.Run("malformed amount is a validation error", func(t *testing.T) {
		body := valid()
		body["amount"] = "abc"
		app, st := newApp()
		status, env := postJSON(t, app, "/api/payments", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "Please enter a valid amount", env.Error)
		assert.Empty(t, st.Snapshot().Transactions)
	})

	t.Run("unknown provider is a validation error", func(t *testing.T) {
		body := valid()
		body["recipient"] = fiber.Map{"type": "vpa", "value": "someone@nosuchbank"}
		app, _ := newApp()
		status, _ := postJSON(t, app, "/api/payments", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("amount over ceiling is rejected before the service runs", func(t *testing.T) {
		body := valid()
		body["amount"] = "150000"
		app, st := newApp()
		status, env := postJSON(t, app, "/api/payments", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "Amount cannot exceed 100000", env.Error)
		assert.Empty(t, st.Snapshot().Transactions)
	})

	t.Run("missing sender account is a validation error", func(t *testing.T) {
		body := valid()
		delete(body, "sender_account_id")
		app, _ := newApp()
		status, _ := postJSON(t, app, "/api/payments", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
}

func TestParseQRHandler(t *testing.T) {
	newApp := func() (*fiber.App, *store.Container) {
		st := store.NewContainer(store.NewMemoryPort(), nil)
		h := NewQRHandler(newSimulator(0.9), st, zap.NewNop())
		app := fiber.New()
		app.Post("/api/qr/parse", h.Parse)
		return app, st
	}

	t.Run("unknown payloads parse normally", func(t *testing.T) {
		app, _ := newApp()
		status, env := postJSON(t, app, "/api/qr/parse", fiber.Map{"data": "upi://priya.patel@paytm"})
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, env.Success)
	})

	t.Run("a stored code past its expiry is rejected", func(t *testing.T) {
		app, st := newApp()
		expired := time.Now().Add(-time.Hour)
		st.AddQRCode(models.QRCode{
			ID:        "qr-old",
			Type:      models.QRTypePayment,
			Payload:   "upi://rahul.sharma@hdfc?am=100",
			ExpiresAt: &expired,
		})

		status, env := postJSON(t, app, "/api/qr/parse", fiber.Map{"data": "upi://rahul.sharma@hdfc?am=100"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "QR code has expired", env.Error)
	})

	t.Run("a stored code still inside its window parses", func(t *testing.T) {
		app, st := newApp()
		future := time.Now().Add(time.Hour)
		st.AddQRCode(models.QRCode{
			ID:        "qr-new",
			Type:      models.QRTypePayment,
			Payload:   "upi://rahul.sharma@hdfc?am=200",
			ExpiresAt: &future,
		})

		status, _ := postJSON(t, app, "/api/qr/parse", fiber.Map{"data": "upi://rahul.sharma@hdfc?am=200"})
		assert.Equal(t, fiber.StatusOK, status)
	})
}

func TestSnapshotHandler(t *testing.T) {
	st := store.NewContainer(store.NewMemoryPort(), nil)
	h := NewTransactionHandler(newSimulator(0.9), st, zap.NewNop())
	app := fiber.New()
	app.Get("/api/snapshot", h.Snapshot)

	now := time.Now()
	st.UpsertRequest(models.PaymentRequest{
		ID:        "req-stale",
		Status:    models.RequestStatusPending,
		ExpiresAt: now.Add(-time.Hour),
	})
	st.UpsertRequest(models.PaymentRequest{
		ID:        "req-open",
		Status:    models.RequestStatusPending,
		ExpiresAt: now.Add(time.Hour),
	})

	req := httptest.NewRequest("GET", "/api/snapshot", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(payload, &env))
	var data struct {
		Requests []models.PaymentRequest `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Requests, 2)

	byID := map[string]string{}
	for _, r := range data.Requests {
		byID[r.ID] = r.Status
	}
	assert.Equal(t, models.RequestStatusExpired, byID["req-stale"])
	assert.Equal(t, models.RequestStatusPending, byID["req-open"])

	// The rendering is display-only; the stored record stays pending.
	assert.Equal(t, models.RequestStatusPending, st.Snapshot().Requests[0].Status)
}
