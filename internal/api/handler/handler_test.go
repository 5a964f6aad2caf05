package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ems/backend/internal/api/middleware"
	"ems/backend/internal/dto"
	"ems/backend/internal/model"
	"ems/backend/internal/service"
	"ems/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.RegisterResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	logoutErr      error
	meResult       *dto.UserResponse
	meErr          error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ int64) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}

// ── Mock LeaveService ──

type mockLeaveService struct {
	createResult *model.Leave
	createErr    error
	updateResult *model.Leave
	updateErr    error
	deleteErr    error
	listResult   []model.Leave
	listErr      error
}

func (m *mockLeaveService) Create(_ context.Context, _ *model.Leave) (*model.Leave, error) {
	return m.createResult, m.createErr
}
func (m *mockLeaveService) UpdateStatus(_ context.Context, _ int64, _ string) (*model.Leave, error) {
	return m.updateResult, m.updateErr
}
func (m *mockLeaveService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockLeaveService) List(_ context.Context) ([]model.Leave, error) {
	return m.listResult, m.listErr
}

// ── Mock SalaryService ──

type mockSalaryService struct {
	createResult *model.Salary
	createErr    error
	updateResult *model.Salary
	updateErr    error
	deleteErr    error
	listResult   []model.Salary
	listErr      error
}

func (m *mockSalaryService) Create(_ context.Context, _ *model.Salary) (*model.Salary, error) {
	return m.createResult, m.createErr
}
func (m *mockSalaryService) Update(_ context.Context, _ int64, _ *model.Salary) (*model.Salary, error) {
	return m.updateResult, m.updateErr
}
func (m *mockSalaryService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockSalaryService) List(_ context.Context) ([]model.Salary, error) {
	return m.listResult, m.listErr
}

// ── Mock EmployeeService ──

type mockEmployeeService struct {
	createResult *model.Employee
	createErr    error
	getResult    *model.Employee
	getErr       error
	updateResult *model.Employee
	updateErr    error
	deleteErr    error
	listResult   []model.Employee
	listErr      error
}

func (m *mockEmployeeService) Create(_ context.Context, _ *model.Employee) (*model.Employee, error) {
	return m.createResult, m.createErr
}
func (m *mockEmployeeService) GetByID(_ context.Context, _ int64) (*model.Employee, error) {
	return m.getResult, m.getErr
}
func (m *mockEmployeeService) Update(_ context.Context, _ int64, _ *model.Employee) (*model.Employee, error) {
	return m.updateResult, m.updateErr
}
func (m *mockEmployeeService) Delete(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockEmployeeService) List(_ context.Context) ([]model.Employee, error) {
	return m.listResult, m.listErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportSalaries(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportEventsICS(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.RegisterResponse{ID: 1, Username: "alice", Role: model.RoleEmployee},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrUsernameExists}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Set(middleware.CtxTokenJTI, "test-jti")
		c.Set(middleware.CtxTokenExp, time.Now().Add(15*time.Minute))
	}, h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// LeaveHandler Tests
// ═══════════════════════════════════════════════════════════

func TestLeaveHandler_Create_Success(t *testing.T) {
	mock := &mockLeaveService{
		createResult: &model.Leave{ID: 1, Name: "张三", Status: model.LeaveStatusPending},
	}
	h := NewLeaveHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/leaves", jsonBody(model.Leave{Name: "张三"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/leaves", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestLeaveHandler_UpdateStatus_NotFound(t *testing.T) {
	mock := &mockLeaveService{updateErr: service.ErrLeaveNotFound}
	h := NewLeaveHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/leaves/999", jsonBody(dto.UpdateLeaveStatusRequest{
		Status: model.LeaveStatusApproved,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/leaves/:id", h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15001 {
		t.Errorf("expected error code 15001, got %d", resp.Code)
	}
}

func TestLeaveHandler_UpdateStatus_MissingStatus(t *testing.T) {
	h := NewLeaveHandler(&mockLeaveService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/leaves/1", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/leaves/:id", h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLeaveHandler_Delete_InvalidID(t *testing.T) {
	h := NewLeaveHandler(&mockLeaveService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/leaves/abc", nil)

	r := gin.New()
	r.DELETE("/leaves/:id", h.Delete)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SalaryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSalaryHandler_Update_NotFound(t *testing.T) {
	mock := &mockSalaryService{updateErr: service.ErrSalaryNotFound}
	h := NewSalaryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/salaries/999", jsonBody(model.Salary{Amount: 1}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/salaries/:id", h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16001 {
		t.Errorf("expected error code 16001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// EmployeeHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEmployeeHandler_Create_DuplicateEmail(t *testing.T) {
	mock := &mockEmployeeService{createErr: service.ErrEmployeeEmailExists}
	h := NewEmployeeHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/employees", jsonBody(model.Employee{
		Name:  "张三",
		Email: "dup@example.com",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/employees", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12002 {
		t.Errorf("expected error code 12002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ChatbotHandler Tests
// ═══════════════════════════════════════════════════════════

func TestChatbotHandler_Send(t *testing.T) {
	h := NewChatbotHandler(service.NewChatbotService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chatbot", jsonBody(dto.ChatRequest{
		Message:  "hello",
		Language: "en",
		Role:     model.RoleEmployee,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/chatbot", h.Send)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("You said: hello (Language: en, Role: ROLE_EMPLOYEE)")) {
		t.Errorf("unexpected reply body: %s", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportSalaries_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "salaries_20260828.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/salaries", nil)

	r := gin.New()
	r.GET("/export/salaries", h.ExportSalaries)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected Content-Type: %s", ct)
	}
}

func TestExportHandler_ExportSalaries_Empty(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoSalaries}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/salaries", nil)

	r := gin.New()
	r.GET("/export/salaries", h.ExportSalaries)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 18001 {
		t.Errorf("expected error code 18001, got %d", resp.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
