package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/usecase"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	apphttp "github.com/yonaiky/ResidentManagement-sub000/internal/interfaces/http"
	"github.com/yonaiky/ResidentManagement-sub000/internal/mocks"
)

const residentID = "7b0c6a52-4f0e-4f4a-9a43-3c1f4b0d2e11"

var routerNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

type routerFixture struct {
	app       *fiber.App
	residents *mocks.MockResidentRepo
	payments  *mocks.MockPaymentRepo
	invoices  *mocks.MockInvoiceRepo
	settings  *mocks.MockSettingsRepo
	pdf       *mocks.MockPDFGenerator
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		residents: new(mocks.MockResidentRepo),
		payments:  new(mocks.MockPaymentRepo),
		invoices:  new(mocks.MockInvoiceRepo),
		settings:  new(mocks.MockSettingsRepo),
		pdf:       new(mocks.MockPDFGenerator),
	}
	log := zerolog.Nop()
	fee := decimal.NewFromInt(700)
	clock := invoicing.ClockFunc(func() time.Time { return routerNow })
	seq := func(n int64) invoicing.Sequence {
		return invoicing.SequenceFunc(func(context.Context) (int64, error) { return n, nil })
	}

	periods := billing.NewPeriodUseCase(f.residents, f.payments, fee, clock)
	tx := &mocks.TxRunner{Invoices: f.invoices, Payments: f.payments, Sequences: new(mocks.MockSequenceRepo)}
	ids := invoicing.NewIdentifierGenerator(clock, seq(42), seq(7), "B01")

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		ResidentUC: billing.NewResidentUseCase(f.residents, log),
		PaymentUC:  billing.NewPaymentUseCase(f.residents, f.payments, fee, clock, log),
		PeriodUC:   periods,
		InvoiceUC: billing.NewInvoiceUseCase(periods, f.residents, f.invoices, f.settings, tx, f.pdf, ids, clock,
			billing.InvoiceConfig{TaxRate: decimal.NewFromInt(18), Currency: "pesos dominicanos"}, log),
		SettingsUC: usecase.NewSettingsUseCase(f.settings, clock, log),
		JWTSecret:  testJWTSecret,
		JWTIssuer:  testIssuer,
		Logger:     log,
	})
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, role string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func routerResident() *entity.Resident {
	return &entity.Resident{
		ID: residentID, FirstName: "Juan", LastName: "Pérez",
		NationalID: "001-1234567-3", Status: entity.ResidentStatusActive,
	}
}

func TestRouter_RequiereToken(t *testing.T) {
	f := newRouterFixture()
	req := httptest.NewRequest(http.MethodGet, "/api/residents/"+residentID, nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResidentHandler_CreateValidaCuerpo(t *testing.T) {
	f := newRouterFixture()
	resp := f.do(t, http.MethodPost, "/api/residents/", entity.RoleOperator, map[string]string{"first_name": "Ana"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "obligatorio", body.Fields["last_name"])
	assert.Equal(t, "obligatorio", body.Fields["national_id"])
	f.residents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResidentHandler_GetByID(t *testing.T) {
	f := newRouterFixture()
	f.residents.On("GetByID", mock.Anything, residentID).Return(routerResident(), nil)

	resp := f.do(t, http.MethodGet, "/api/residents/"+residentID, entity.RoleOperator, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ResidentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Juan Pérez", out.FullName)
}

func TestResidentHandler_IDInvalidoYNoEncontrado(t *testing.T) {
	f := newRouterFixture()
	f.residents.On("GetByID", mock.Anything, residentID).Return(nil, nil)

	resp := f.do(t, http.MethodGet, "/api/residents/no-es-uuid", entity.RoleOperator, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/residents/"+residentID, entity.RoleOperator, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestPaymentHandler_Periods(t *testing.T) {
	f := newRouterFixture()
	f.residents.On("GetByID", mock.Anything, residentID).Return(routerResident(), nil)
	f.payments.On("ListByResident", mock.Anything, residentID).Return([]*entity.Payment{}, nil)

	resp := f.do(t, http.MethodGet, "/api/residents/"+residentID+"/periods", entity.RoleOperator, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PeriodsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.History)
	assert.Len(t, out.Available, 12)
	assert.Len(t, out.Selected, 5)
}

func TestInvoiceHandler_IssueJSON(t *testing.T) {
	f := newRouterFixture()
	f.settings.On("GetCompany", mock.Anything).Return(&entity.CompanySettings{Name: "Residencial Las Palmas", TaxID: "131123457"}, nil)
	f.settings.On("GetFiscal", mock.Anything).Return(nil, nil)
	f.residents.On("GetByID", mock.Anything, residentID).Return(routerResident(), nil)
	f.payments.On("ListByResident", mock.Anything, residentID).Return([]*entity.Payment{}, nil)
	f.pdf.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("CreateLine", mock.Anything, mock.Anything).Return(nil)

	resp := f.do(t, http.MethodPost, "/api/residents/"+residentID+"/invoices", entity.RoleOperator,
		dto.IssueInvoiceRequest{Periods: []dto.PeriodRef{{Month: 10, Year: 2026}}})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "FAC-2610-0042", out.InvoiceNumber)
	assert.Equal(t, "B0100000007", out.NCF)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(826)))
	assert.True(t, strings.HasPrefix(out.DataURL, "data:application/pdf;base64,"))
	f.payments.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_IssuePDF(t *testing.T) {
	f := newRouterFixture()
	f.settings.On("GetCompany", mock.Anything).Return(&entity.CompanySettings{Name: "Residencial Las Palmas", TaxID: "131123457"}, nil)
	f.settings.On("GetFiscal", mock.Anything).Return(nil, nil)
	f.residents.On("GetByID", mock.Anything, residentID).Return(routerResident(), nil)
	f.payments.On("ListByResident", mock.Anything, residentID).Return([]*entity.Payment{}, nil)
	f.pdf.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF-1.3"), nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("CreateLine", mock.Anything, mock.Anything).Return(nil)

	resp := f.do(t, http.MethodPost, "/api/residents/"+residentID+"/invoices?format=pdf", entity.RoleOperator, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="factura_FAC-2610-0042.pdf"`, resp.Header.Get("Content-Disposition"))
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.3", string(raw))
}

func TestInvoiceHandler_PeriodoPagadoEsConflicto(t *testing.T) {
	f := newRouterFixture()
	f.settings.On("GetCompany", mock.Anything).Return(&entity.CompanySettings{Name: "Residencial Las Palmas", TaxID: "131123457"}, nil)
	f.settings.On("GetFiscal", mock.Anything).Return(nil, nil)
	f.residents.On("GetByID", mock.Anything, residentID).Return(routerResident(), nil)
	f.payments.On("ListByResident", mock.Anything, residentID).Return([]*entity.Payment{
		{ResidentID: residentID, Month: 9, Year: 2026, Amount: decimal.NewFromInt(700), Status: entity.PaymentStatusPaid},
	}, nil)

	resp := f.do(t, http.MethodPost, "/api/residents/"+residentID+"/invoices", entity.RoleOperator,
		dto.IssueInvoiceRequest{Periods: []dto.PeriodRef{{Month: 9, Year: 2026}}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp).Code)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSettingsHandler_EscrituraSoloAdmin(t *testing.T) {
	f := newRouterFixture()
	in := dto.CompanySettingsRequest{Name: "Residencial Las Palmas", TaxID: "131123457"}

	resp := f.do(t, http.MethodPut, "/api/settings/company", entity.RoleOperator, in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	f.settings.AssertNotCalled(t, "SaveCompany", mock.Anything, mock.Anything)

	f.settings.On("SaveCompany", mock.Anything, mock.Anything).Return(nil)
	resp = f.do(t, http.MethodPut, "/api/settings/company", entity.RoleAdmin, in)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CompanySettingsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "1-31-12345-7", out.TaxID)
}
