package settings

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/events"
)

func newTestApp() (*fiber.App, *events.Recorder) {
	recorder := events.NewRecorder()
	h := NewHandler(NewMemoryStore(), recorder)
	app := fiber.New()
	app.Get("/payment-info", h.Get)
	app.Put("/payment-info", h.Save)
	return app, recorder
}

func TestGetServesDefaultsUntilSaved(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/payment-info", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, resp.StatusCode)
	}

	var info PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info != DefaultPaymentInfo() {
		t.Fatalf("expected defaults, got %+v", info)
	}
}

func TestSavePersistsAndSignals(t *testing.T) {
	app, recorder := newTestApp()

	payload := `{"bankName":"EasyPaisa","accountTitle":"Bazario Ops","accountNumber":"03119876543","instructions":"Reference your shop id."}`
	req := httptest.NewRequest(fiber.MethodPut, "/payment-info", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/payment-info", nil))
	if err != nil {
		t.Fatalf("get after save: %v", err)
	}
	var info PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.BankName != "EasyPaisa" || info.AccountNumber != "03119876543" {
		t.Fatalf("saved settings not served back: %+v", info)
	}

	got := recorder.Events()
	if len(got) != 1 || got[0] != events.PaymentInfoUpdated {
		t.Fatalf("expected one payment_info_updated event, got %v", got)
	}
}

func TestSaveValidatesRequiredFields(t *testing.T) {
	app, recorder := newTestApp()

	payload := `{"bankName":"EasyPaisa"}`
	req := httptest.NewRequest(fiber.MethodPut, "/payment-info", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected %d got %d", fiber.StatusBadRequest, resp.StatusCode)
	}
	if len(recorder.Events()) != 0 {
		t.Fatalf("no event may be published on validation failure, got %v", recorder.Events())
	}
}
