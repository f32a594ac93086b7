package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulseauto/internal/desking"
	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func newRouter(handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	for _, h := range handlers {
		h.RegisterRoutes(&router.RouterGroup)
	}
	return router
}

func perform(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad status", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: loan_term", desking.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: vehicle", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: Funded to Pending", service.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: zero denominator", desking.ErrComputation), http.StatusUnprocessableEntity},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestDeskingCalculateReturnsBareResult(t *testing.T) {
	router := newRouter(NewDeskingHandler(service.NewDeskingService(zap.NewNop())))

	w := perform(router, http.MethodPost, "/api/desking/calculate",
		`{"vehicle_price": 30000, "trade_value": 5000, "down_payment": 2000}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "status")
	assert.Equal(t, 25648.0, body["total_amount_financed"])
	assert.Equal(t, 443.46, body["monthly_payment"])
	assert.Equal(t, 72.0, body["loan_term"])
}

func TestDeskingCalculateRejectsBadInput(t *testing.T) {
	router := newRouter(NewDeskingHandler(service.NewDeskingService(zap.NewNop())))

	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"trade_value": 5000}`},
		{"malformed json", `{"vehicle_price": `},
		{"negative price", `{"vehicle_price": -5}`},
		{"tax as percent", `{"vehicle_price": 30000, "sales_tax_rate": 9.25}`},
		{"zero term", `{"vehicle_price": 30000, "loan_term": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/api/desking/calculate", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestDeskingCalculateOverflowIsUnprocessable(t *testing.T) {
	router := newRouter(NewDeskingHandler(service.NewDeskingService(zap.NewNop())))

	w := perform(router, http.MethodPost, "/api/desking/calculate",
		`{"vehicle_price": 1e400, "loan_term": 12}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Error, "JSON number")
}

type failingDeskingService struct {
	err error
}

func (s failingDeskingService) Calculate(context.Context, service.DeskingCalculateRequest) (service.DeskingResponse, error) {
	return service.DeskingResponse{}, s.err
}

func TestDeskingCalculateMapsComputationError(t *testing.T) {
	svc := failingDeskingService{err: fmt.Errorf("%w: annuity factor collapsed", desking.ErrComputation)}
	router := newRouter(NewDeskingHandler(svc))

	w := perform(router, http.MethodPost, "/api/desking/calculate", `{"vehicle_price": 30000}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusUnprocessableEntity, env.StatusCode)
	assert.Contains(t, env.Error, "annuity factor collapsed")
}

type stubVehicleService struct {
	service.VehicleService
	lastFilter model.VehicleFilter
	lastActor  string
	err        error
}

func (s *stubVehicleService) ListVehicles(_ context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error) {
	s.lastFilter = filter
	return []model.Vehicle{{Make: "Honda"}}, 41, s.err
}

func (s *stubVehicleService) GetVehicle(_ context.Context, id string) (*model.Vehicle, error) {
	return nil, fmt.Errorf("%w: vehicle", service.ErrNotFound)
}

func (s *stubVehicleService) DeleteVehicle(_ context.Context, actor, id string) error {
	s.lastActor = actor
	return s.err
}

func TestListVehiclesParsesFiltersAndWindow(t *testing.T) {
	stub := &stubVehicleService{}
	router := newRouter(NewVehicleHandler(stub))

	w := perform(router, http.MethodGet, "/api/vehicles?make=hon&year=2021&min_price=15000.50&status=Available&skip=20&limit=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "hon", stub.lastFilter.Make)
	assert.Equal(t, 2021, stub.lastFilter.Year)
	require.NotNil(t, stub.lastFilter.MinPrice)
	assert.Equal(t, "15000.5", stub.lastFilter.MinPrice.String())
	assert.Nil(t, stub.lastFilter.MaxPrice)
	assert.Equal(t, 20, stub.lastFilter.Skip)
	assert.Equal(t, 10, stub.lastFilter.Limit)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(41), env.Meta.Total)
	assert.Equal(t, 20, env.Meta.Skip)
	assert.Equal(t, 10, env.Meta.Limit)
}

func TestListVehiclesRejectsBadQuery(t *testing.T) {
	router := newRouter(NewVehicleHandler(&stubVehicleService{}))

	for _, query := range []string{"limit=0", "limit=1001", "skip=-1", "year=new", "max_price=cheap"} {
		w := perform(router, http.MethodGet, "/api/vehicles?"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestVehicleErrorsUseEnvelope(t *testing.T) {
	stub := &stubVehicleService{err: errors.New("connection reset")}
	router := newRouter(NewVehicleHandler(stub))

	w := perform(router, http.MethodGet, "/api/vehicles/0d6b9a52-8f0e-4c55-9bd1-8c1f25a0f7a1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, decodeEnvelope(t, w).StatusCode)

	w = perform(router, http.MethodDelete, "/api/vehicles/x", "", map[string]string{"X-Actor": "jamie"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "jamie", stub.lastActor)
}

type stubLeadService struct {
	service.LeadService
	lastReq service.UpdateLeadRequest
}

func (s *stubLeadService) UpdateLead(_ context.Context, _, id string, req service.UpdateLeadRequest) (*model.Lead, error) {
	s.lastReq = req
	return &model.Lead{Status: req.Status}, nil
}

func TestUpdateLeadAcceptsBodyOrQuery(t *testing.T) {
	stub := &stubLeadService{}
	router := newRouter(NewLeadHandler(stub))

	w := perform(router, http.MethodPut, "/api/leads/abc", `{"status": "Contacted", "notes": "called back"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Contacted", stub.lastReq.Status)
	assert.Equal(t, "called back", stub.lastReq.Notes)

	w = perform(router, http.MethodPut, "/api/leads/abc?status=Qualified&notes=wants+test+drive", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Qualified", stub.lastReq.Status)
	assert.Equal(t, "wants test drive", stub.lastReq.Notes)

	w = perform(router, http.MethodPut, "/api/leads/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeadReadsChunkedBody(t *testing.T) {
	stub := &stubLeadService{}
	router := newRouter(NewLeadHandler(stub))

	// a reader of unknown size leaves ContentLength at -1, as with chunked transfer
	body := io.MultiReader(strings.NewReader(`{"status": "Qualified", "notes": "sent trade quote"}`))
	req := httptest.NewRequest(http.MethodPut, "/api/leads/abc", body)
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, int64(-1), req.ContentLength)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Qualified", stub.lastReq.Status)
	assert.Equal(t, "sent trade quote", stub.lastReq.Notes)
}

func TestHealthReportsDatabaseState(t *testing.T) {
	healthy := newRouter(NewHealthHandler(func(context.Context) error { return nil }))
	down := newRouter(NewHealthHandler(func(context.Context) error { return errors.New("refused") }))

	for _, path := range []string{"/health", "/api/health"} {
		w := perform(healthy, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "ok", body["database"])
		assert.NotEmpty(t, body["timestamp"])
	}

	w := perform(down, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"unavailable"`)
}
