package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"receptionist/models"
	"receptionist/services/admin"
	"receptionist/services/booking"
	"receptionist/services/business"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock services ──

type mockBusinessService struct {
	profile *models.BusinessProfile
	err     error
}

func (m *mockBusinessService) GetProfile(context.Context) (*models.BusinessProfile, error) {
	return m.profile, m.err
}

func (m *mockBusinessService) GetServices(context.Context) ([]models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile.Services, nil
}

type mockBookingService struct {
	appt     *models.Appointment
	bookErr  error
	gotReq   models.BookingRequest
	appts    []models.Appointment
	slots    []models.CalendarSlot
	slotsErr error
	gotDate  string
}

func (m *mockBookingService) Book(_ context.Context, req models.BookingRequest) (*models.Appointment, error) {
	m.gotReq = req
	return m.appt, m.bookErr
}

func (m *mockBookingService) ListAppointments(context.Context) ([]models.Appointment, error) {
	return m.appts, nil
}

func (m *mockBookingService) ListAvailableSlots(_ context.Context, date string) ([]models.CalendarSlot, error) {
	m.gotDate = date
	return m.slots, m.slotsErr
}

type mockTemplateService struct {
	saved  *models.CustomResponseTemplate
	tpl    *models.CustomResponseTemplate
	tpls   []models.CustomResponseTemplate
	getErr error
}

func (m *mockTemplateService) SaveTemplate(_ context.Context, tpl models.CustomResponseTemplate) error {
	m.saved = &tpl
	return nil
}

func (m *mockTemplateService) GetTemplate(context.Context, string) (*models.CustomResponseTemplate, error) {
	return m.tpl, m.getErr
}

func (m *mockTemplateService) ListTemplates(context.Context) ([]models.CustomResponseTemplate, error) {
	return m.tpls, nil
}

type mockResolver struct {
	resp     *models.QueryResponse
	err      error
	gotQuery string
}

func (m *mockResolver) Resolve(_ context.Context, query string) (*models.QueryResponse, error) {
	m.gotQuery = query
	return m.resp, m.err
}

type mockTranscriber struct {
	text string
	err  error
}

func (m *mockTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return m.text, m.err
}

// ── helpers ──

func doJSON(h gin.HandlerFunc, method, route, target string, body interface{}) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, route, h)

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var out utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ── business ──

func TestGetBusinessHandler(t *testing.T) {
	svc := &mockBusinessService{profile: &models.BusinessProfile{
		Name:     "TechFix Solutions",
		Services: []models.Service{{Name: "Laptop Repair"}},
	}}

	w := doJSON(GetBusinessHandler(svc, zap.NewNop()), http.MethodGet, "/business", "/business", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"business_name":"TechFix Solutions"`)

	w = doJSON(GetServicesHandler(svc, zap.NewNop()), http.MethodGet, "/services", "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Laptop Repair")
}

func TestGetBusinessHandler_NotFound(t *testing.T) {
	svc := &mockBusinessService{err: business.ErrBusinessNotFound}

	w := doJSON(GetServicesHandler(svc, zap.NewNop()), http.MethodGet, "/services", "/services", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "business_not_found", decodeError(t, w).Error)
}

func TestGetBusinessHandler_StoreFailureHidesCause(t *testing.T) {
	svc := &mockBusinessService{err: utils.Internal("get business profile", errors.New("mongo: secret host unreachable"))}

	w := doJSON(GetBusinessHandler(svc, zap.NewNop()), http.MethodGet, "/business", "/business", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret host")
}

func TestGetSlotsHandler(t *testing.T) {
	svc := &mockBookingService{slots: []models.CalendarSlot{{Date: "2025-03-01", StartTime: "09:00", Available: true}}}

	w := doJSON(GetSlotsHandler(svc, zap.NewNop()), http.MethodGet, "/slots", "/slots?date=2025-03-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-03-01", svc.gotDate)
	assert.Contains(t, w.Body.String(), `"start_time":"09:00"`)

	svc.slotsErr = booking.ErrInvalidFormat
	w = doJSON(GetSlotsHandler(svc, zap.NewNop()), http.MethodGet, "/slots", "/slots?date=bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── booking ──

func TestScheduleHandler(t *testing.T) {
	svc := &mockBookingService{appt: &models.Appointment{
		ID: "a1", CustomerName: "Ada", Service: "Laptop Repair", Date: "2025-03-01", Time: "09:00",
	}}
	body := models.BookingRequest{CustomerName: "Ada", Service: "Laptop Repair", Date: "2025-03-01", Time: "09:00"}

	w := doJSON(ScheduleHandler(svc, zap.NewNop()), http.MethodPost, "/schedule", "/schedule", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"a1"`)

	var out models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Appointment booked!", out.Message)
	assert.Equal(t, "a1", out.Appointment.ID)
	assert.Equal(t, body, svc.gotReq)
}

func TestScheduleHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		bookErr  error
		wantCode int
		wantErr  string
	}{
		{"malformed json", "{", nil, http.StatusBadRequest, "invalid_request"},
		{"missing fields", map[string]string{"customer_name": "Ada"}, nil, http.StatusBadRequest, "invalid_request"},
		{"bad format", models.BookingRequest{CustomerName: "A", Service: "S", Date: "2025/03/01", Time: "09:00"}, booking.ErrInvalidFormat, http.StatusBadRequest, "invalid_format"},
		{"past date", models.BookingRequest{CustomerName: "A", Service: "S", Date: "2020-01-01", Time: "09:00"}, booking.ErrPastDate, http.StatusBadRequest, "past_date"},
		{"unavailable", models.BookingRequest{CustomerName: "A", Service: "S", Date: "2025-03-01", Time: "09:00"}, booking.ErrSlotUnavailable, http.StatusBadRequest, "slot_unavailable"},
		{"store down", models.BookingRequest{CustomerName: "A", Service: "S", Date: "2025-03-01", Time: "09:00"}, utils.Internal("reserve slot", errors.New("x")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{bookErr: tt.bookErr}
			w := doJSON(ScheduleHandler(svc, zap.NewNop()), http.MethodPost, "/schedule", "/schedule", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, w).Error)
		})
	}
}

func TestListAppointmentsHandler_Empty(t *testing.T) {
	svc := &mockBookingService{appts: []models.Appointment{}}

	w := doJSON(ListAppointmentsHandler(svc, zap.NewNop()), http.MethodGet, "/appointments", "/appointments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ── admin ──

func TestSaveCustomResponseHandler(t *testing.T) {
	svc := &mockTemplateService{}
	body := models.CustomResponseTemplate{QueryType: "greeting", Template: "Hello {user_name}"}

	w := doJSON(SaveCustomResponseHandler(svc, zap.NewNop()), http.MethodPost, "/admin/custom-response", "/admin/custom-response", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Custom response saved successfully."}`, w.Body.String())
	require.NotNil(t, svc.saved)
	assert.Equal(t, "greeting", svc.saved.QueryType)

	w = doJSON(SaveCustomResponseHandler(svc, zap.NewNop()), http.MethodPost, "/admin/custom-response", "/admin/custom-response", `{"query_type":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomResponseHandler(t *testing.T) {
	svc := &mockTemplateService{tpl: &models.CustomResponseTemplate{QueryType: "hours", Template: "9 to 6"}}
	route := "/admin/custom-response/:query_type"

	w := doJSON(GetCustomResponseHandler(svc, zap.NewNop()), http.MethodGet, route, "/admin/custom-response/hours", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"custom_response_template":"9 to 6"`)

	svc.getErr = admin.ErrTemplateNotFound
	w = doJSON(GetCustomResponseHandler(svc, zap.NewNop()), http.MethodGet, route, "/admin/custom-response/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "template_not_found", decodeError(t, w).Error)
}

func TestListCustomResponsesHandler(t *testing.T) {
	svc := &mockTemplateService{tpls: []models.CustomResponseTemplate{{QueryType: "a", Template: "b"}}}

	w := doJSON(ListCustomResponsesHandler(svc, zap.NewNop()), http.MethodGet, "/admin/custom-response", "/admin/custom-response", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"query_type":"a"`)
}

// ── ai ──

func TestAskAIHandler(t *testing.T) {
	res := &mockResolver{resp: &models.QueryResponse{
		Message: "Our operating hours are:",
		Hours:   &models.OperatingHours{Open: "09:00 AM", Close: "06:00 PM"},
	}}

	w := doJSON(AskAIHandler(res, zap.NewNop()), http.MethodPost, "/ai/ask-ai", "/ai/ask-ai", models.QueryRequest{UserQuery: "What are your hours?"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "What are your hours?", res.gotQuery)
	assert.JSONEq(t, `{"message":"Our operating hours are:","hours":{"open":"09:00 AM","close":"06:00 PM"}}`, w.Body.String())

	res.gotQuery = "unset"
	w = doJSON(AskAIHandler(res, zap.NewNop()), http.MethodPost, "/ai/ask-ai", "/ai/ask-ai", `{"user_query": ""}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", res.gotQuery)

	w = doJSON(AskAIHandler(res, zap.NewNop()), http.MethodPost, "/ai/ask-ai", "/ai/ask-ai", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	res.err = utils.Internal("classify query", errors.New("quota"))
	w = doJSON(AskAIHandler(res, zap.NewNop()), http.MethodPost, "/ai/ask-ai", "/ai/ask-ai", models.QueryRequest{UserQuery: "hi"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func testWAV(rate uint32, channels uint16) []byte {
	var buf bytes.Buffer
	samples := make([]byte, 320)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, channels)
	_ = binary.Write(&buf, binary.LittleEndian, rate)
	_ = binary.Write(&buf, binary.LittleEndian, rate*uint32(channels)*2)
	_ = binary.Write(&buf, binary.LittleEndian, channels*2)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)
	return buf.Bytes()
}

func doVoice(h gin.HandlerFunc, audio []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if audio != nil {
		fw, _ := mw.CreateFormFile("audio", "query.wav")
		_, _ = fw.Write(audio)
	}
	_ = mw.WriteField("language", "en-US")
	_ = mw.Close()

	r := gin.New()
	r.POST("/ai/ask-ai/voice", h)
	req := httptest.NewRequest(http.MethodPost, "/ai/ask-ai/voice", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAskAIVoiceHandler(t *testing.T) {
	res := &mockResolver{resp: &models.QueryResponse{Message: "Here are the available time slots:"}}
	h := AskAIVoiceHandler(&mockTranscriber{text: " I want to book "}, res, zap.NewNop())

	w := doVoice(h, testWAV(16000, 1))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I want to book", res.gotQuery)

	var out models.VoiceQueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "I want to book", out.Transcript)
	assert.Equal(t, "Here are the available time slots:", out.Response.Message)
}

func TestAskAIVoiceHandler_Errors(t *testing.T) {
	res := &mockResolver{resp: &models.QueryResponse{Message: "ok"}}

	w := doVoice(AskAIVoiceHandler(nil, res, zap.NewNop()), testWAV(16000, 1))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	h := AskAIVoiceHandler(&mockTranscriber{text: "hi"}, res, zap.NewNop())
	w = doVoice(h, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doVoice(h, testWAV(44100, 2))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_audio", decodeError(t, w).Error)

	w = doVoice(AskAIVoiceHandler(&mockTranscriber{text: "   "}, res, zap.NewNop()), testWAV(16000, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doVoice(AskAIVoiceHandler(&mockTranscriber{err: errors.New("rpc error")}, res, zap.NewNop()), testWAV(16000, 1))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "rpc error"))
}

func TestHealthHandler_NoMonitor(t *testing.T) {
	w := doJSON(HealthHandler(nil), http.MethodGet, "/health", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
