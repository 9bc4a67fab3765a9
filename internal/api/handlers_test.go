package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"fintrack-backend-go/internal/api"
	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/middleware"
	"fintrack-backend-go/internal/models"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.err
}

var _ middleware.TokenVerifier = (*fakeVerifier)(nil)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetOrProvision(ctx context.Context, identity core.Identity) (*models.User, bool, error) {
	args := m.Called(ctx, identity)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockUserService) Create(ctx context.Context, identity core.Identity, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, identity, req)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	args := m.Called(ctx, userID, fields)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) LatestVersionSnapshot(ctx context.Context, userID string) (*models.UserVersion, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*models.UserVersion); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ core.UserService = (*mockUserService)(nil)

type mockPlanService struct{ mock.Mock }

func (m *mockPlanService) List(ctx context.Context, ownerID string) ([]*models.Plan, error) {
	args := m.Called(ctx, ownerID)
	if p, ok := args.Get(0).([]*models.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanService) Get(ctx context.Context, ownerID, planID string) (*models.Plan, error) {
	args := m.Called(ctx, ownerID, planID)
	if p, ok := args.Get(0).(*models.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanService) Create(ctx context.Context, ownerID string, req models.CreatePlanRequest) (*models.Plan, error) {
	args := m.Called(ctx, ownerID, req)
	if p, ok := args.Get(0).(*models.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanService) Update(ctx context.Context, ownerID, planID string, fields map[string]interface{}) (*models.Plan, error) {
	args := m.Called(ctx, ownerID, planID, fields)
	if p, ok := args.Get(0).(*models.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanService) Delete(ctx context.Context, ownerID, planID string) error {
	return m.Called(ctx, ownerID, planID).Error(0)
}

var _ core.PlanService = (*mockPlanService)(nil)

type mockBudgetService struct{ mock.Mock }

func (m *mockBudgetService) List(ctx context.Context, ownerID string) ([]*models.Budget, error) {
	args := m.Called(ctx, ownerID)
	if b, ok := args.Get(0).([]*models.Budget); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetService) Get(ctx context.Context, ownerID, budgetID string) (*models.Budget, error) {
	args := m.Called(ctx, ownerID, budgetID)
	if b, ok := args.Get(0).(*models.Budget); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetService) Create(ctx context.Context, ownerID string, req models.CreateBudgetRequest) (*models.Budget, error) {
	args := m.Called(ctx, ownerID, req)
	if b, ok := args.Get(0).(*models.Budget); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetService) Update(ctx context.Context, ownerID, budgetID string, fields map[string]interface{}) (*models.Budget, error) {
	args := m.Called(ctx, ownerID, budgetID, fields)
	if b, ok := args.Get(0).(*models.Budget); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBudgetService) Delete(ctx context.Context, ownerID, budgetID string) error {
	return m.Called(ctx, ownerID, budgetID).Error(0)
}

var _ core.BudgetService = (*mockBudgetService)(nil)

type mockAssetService struct{ mock.Mock }

func (m *mockAssetService) List(ctx context.Context, ownerID string) ([]*models.Asset, error) {
	args := m.Called(ctx, ownerID)
	if a, ok := args.Get(0).([]*models.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetService) Get(ctx context.Context, ownerID, assetID string) (*models.Asset, error) {
	args := m.Called(ctx, ownerID, assetID)
	if a, ok := args.Get(0).(*models.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetService) Create(ctx context.Context, ownerID string, req models.CreateAssetRequest) (*models.Asset, error) {
	args := m.Called(ctx, ownerID, req)
	if a, ok := args.Get(0).(*models.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetService) Update(ctx context.Context, ownerID, assetID string, fields map[string]interface{}) (*models.Asset, error) {
	args := m.Called(ctx, ownerID, assetID, fields)
	if a, ok := args.Get(0).(*models.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetService) Delete(ctx context.Context, ownerID, assetID string) error {
	return m.Called(ctx, ownerID, assetID).Error(0)
}

var _ core.AssetService = (*mockAssetService)(nil)

type mockDebtService struct{ mock.Mock }

func (m *mockDebtService) List(ctx context.Context, ownerID string) ([]*models.Debt, error) {
	args := m.Called(ctx, ownerID)
	if d, ok := args.Get(0).([]*models.Debt); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDebtService) Get(ctx context.Context, ownerID, debtID string) (*models.Debt, error) {
	args := m.Called(ctx, ownerID, debtID)
	if d, ok := args.Get(0).(*models.Debt); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDebtService) Create(ctx context.Context, ownerID string, req models.CreateDebtRequest) (*models.Debt, error) {
	args := m.Called(ctx, ownerID, req)
	if d, ok := args.Get(0).(*models.Debt); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDebtService) Update(ctx context.Context, ownerID, debtID string, fields map[string]interface{}) (*models.Debt, error) {
	args := m.Called(ctx, ownerID, debtID, fields)
	if d, ok := args.Get(0).(*models.Debt); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDebtService) Delete(ctx context.Context, ownerID, debtID string) error {
	return m.Called(ctx, ownerID, debtID).Error(0)
}

var _ core.DebtService = (*mockDebtService)(nil)

type mockFeedbackService struct{ mock.Mock }

func (m *mockFeedbackService) Generate(ctx context.Context, req models.FeedbackRequest) (*models.BudgetFeedback, error) {
	args := m.Called(ctx, req)
	if f, ok := args.Get(0).(*models.BudgetFeedback); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ core.FeedbackService = (*mockFeedbackService)(nil)

type testEnv struct {
	users    *mockUserService
	plans    *mockPlanService
	budgets  *mockBudgetService
	assets   *mockAssetService
	debts    *mockDebtService
	feedback *mockFeedbackService
}

func newTestRouter(verifier middleware.TokenVerifier) (*gin.Engine, *testEnv) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	env := &testEnv{
		users:    new(mockUserService),
		plans:    new(mockPlanService),
		budgets:  new(mockBudgetService),
		assets:   new(mockAssetService),
		debts:    new(mockDebtService),
		feedback: new(mockFeedbackService),
	}

	router := gin.New()
	authMW := middleware.NewAuthMiddleware(verifier, logger)
	api.SetupRoutes(router, logger, authMW,
		env.users, env.plans, env.budgets, env.assets, env.debts, env.feedback)
	return router, env
}

func authedRouter() (*gin.Engine, *testEnv) {
	return newTestRouter(&fakeVerifier{token: &auth.Token{
		UID: "u1",
		Claims: map[string]interface{}{
			"email": "jordan@example.com",
			"name":  "Jordan",
		},
	}})
}

func perform(router *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_MissingTokenIsRejected(t *testing.T) {
	router, env := authedRouter()

	w := perform(router, http.MethodGet, "/api/v1/assets", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, w.Body.String())
	env.assets.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRoutes_UnverifiableTokenIsRejected(t *testing.T) {
	router, _ := newTestRouter(&fakeVerifier{err: errors.New("token expired")})

	w := perform(router, http.MethodGet, "/api/v1/plans", "", true)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, w.Body.String())
}

func TestRoutes_MalformedAuthorizationHeader(t *testing.T) {
	router, _ := authedRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_UnwiredVerbGets405(t *testing.T) {
	router, _ := authedRouter()

	w := perform(router, http.MethodPatch, "/api/v1/assets", "", true)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestHealthEndpoint_NoAuthRequired(t *testing.T) {
	router, _ := authedRouter()

	w := perform(router, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}

func TestAssetHandler_List(t *testing.T) {
	router, env := authedRouter()

	env.assets.On("List", mock.Anything, "u1").
		Return([]*models.Asset{{ID: "a1", OwnerID: "u1", Name: "Savings", CurrentValue: 1000, AnnualAPY: 0.03, Version: 1}}, nil).Once()

	w := perform(router, http.MethodGet, "/api/v1/assets", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"a1"`)
	env.assets.AssertExpectations(t)
}

func TestAssetHandler_Create(t *testing.T) {
	router, env := authedRouter()

	env.assets.On("Create", mock.Anything, "u1", models.CreateAssetRequest{
		Name:         "Savings",
		CurrentValue: 1000,
		AnnualAPY:    0.03,
	}).Return(&models.Asset{ID: "a1", OwnerID: "u1", Name: "Savings", CurrentValue: 1000, AnnualAPY: 0.03, Version: 1}, nil).Once()

	body := `{"name":"Savings","currentValue":1000,"annualAPY":0.03}`
	w := perform(router, http.MethodPost, "/api/v1/assets", body, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ownerId":"u1"`)
	assert.Contains(t, w.Body.String(), `"version":1`)
	env.assets.AssertExpectations(t)
}

func TestAssetHandler_Create_MissingFields(t *testing.T) {
	router, env := authedRouter()

	// currentValue:0 is treated as missing by the required-field policy.
	body := `{"name":"Savings","currentValue":0}`
	w := perform(router, http.MethodPost, "/api/v1/assets", body, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields","details":"currentValue, annualAPY"}`, w.Body.String())
	env.assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssetHandler_Create_MalformedJSON(t *testing.T) {
	router, env := authedRouter()

	w := perform(router, http.MethodPost, "/api/v1/assets", `{"name": `, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	env.assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssetHandler_Update_PassesRawFieldsThrough(t *testing.T) {
	router, env := authedRouter()

	// The handler forwards the raw body untouched; protected-field stripping
	// happens below it.
	env.assets.On("Update", mock.Anything, "u1", "a1", map[string]interface{}{
		"name":    "Emergency fund",
		"ownerId": "u2",
	}).Return(&models.Asset{ID: "a1", OwnerID: "u1", Name: "Emergency fund", Version: 2}, nil).Once()

	body := `{"name":"Emergency fund","ownerId":"u2"}`
	w := perform(router, http.MethodPut, "/api/v1/assets/a1", body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":2`)
	env.assets.AssertExpectations(t)
}

func TestAssetHandler_Delete(t *testing.T) {
	router, env := authedRouter()

	env.assets.On("Delete", mock.Anything, "u1", "a1").Return(nil).Once()

	w := perform(router, http.MethodDelete, "/api/v1/assets/a1", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Asset deleted successfully"}`, w.Body.String())
	env.assets.AssertExpectations(t)
}

func TestAssetHandler_Delete_Absent(t *testing.T) {
	router, env := authedRouter()

	env.assets.On("Delete", mock.Anything, "u1", "gone").Return(core.ErrAssetNotFound).Once()

	w := perform(router, http.MethodDelete, "/api/v1/assets/gone", "", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Asset not found"}`, w.Body.String())
}

func TestAssetHandler_Get_StoreFaultIsGeneric500(t *testing.T) {
	router, env := authedRouter()

	env.assets.On("Get", mock.Anything, "u1", "a1").
		Return(nil, errors.New("rpc error: code = Unavailable")).Once()

	w := perform(router, http.MethodGet, "/api/v1/assets/a1", "", true)

	// Internal detail never reaches the response body.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestUserHandler_GetMe_PassesClaimsIdentity(t *testing.T) {
	router, env := authedRouter()

	env.users.On("GetOrProvision", mock.Anything, core.Identity{
		Subject:     "u1",
		Email:       "jordan@example.com",
		DisplayName: "Jordan",
	}).Return(&models.User{ID: "u1", OwnerID: "u1", DisplayName: "Jordan", Version: 1}, false, nil).Once()

	w := perform(router, http.MethodGet, "/api/v1/users/me", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	env.users.AssertExpectations(t)
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	router, env := authedRouter()

	env.users.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("models.CreateUserRequest")).
		Return(nil, core.ErrUserAlreadyExists).Once()

	body := `{"displayName":"Jordan","email":"jordan@example.com"}`
	w := perform(router, http.MethodPost, "/api/v1/users", body, true)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())
}

func TestUserHandler_GetVersions_Absent(t *testing.T) {
	router, env := authedRouter()

	env.users.On("LatestVersionSnapshot", mock.Anything, "u1").
		Return(nil, core.ErrSnapshotNotFound).Once()

	w := perform(router, http.MethodGet, "/api/v1/users/versions", "", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Version snapshot not found"}`, w.Body.String())
}

func TestFeedbackHandler_Generate(t *testing.T) {
	router, env := authedRouter()

	env.feedback.On("Generate", mock.Anything, mock.AnythingOfType("models.FeedbackRequest")).
		Return(&models.BudgetFeedback{
			Improvements: []string{"Cut groceries"},
			Strengths:    []string{"Good surplus"},
			Summary:      "Looks fine.",
		}, nil).Once()

	body := `{
		"budgetName":"August",
		"income":[{"name":"Salary","amount":5000}],
		"expenses":[{"name":"Rent","amount":1500}],
		"totalIncome":5000,
		"totalExpenses":1500
	}`
	w := perform(router, http.MethodPost, "/api/v1/budgets/feedback", body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Cut groceries"`)
	env.feedback.AssertExpectations(t)
}

func TestFeedbackHandler_Generate_MissingFields(t *testing.T) {
	router, env := authedRouter()

	body := `{"budgetName":"August","income":[],"expenses":[]}`
	w := perform(router, http.MethodPost, "/api/v1/budgets/feedback", body, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields","details":"totalIncome, totalExpenses"}`, w.Body.String())
	env.feedback.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestFeedbackHandler_Generate_UpstreamFault(t *testing.T) {
	router, env := authedRouter()

	env.feedback.On("Generate", mock.Anything, mock.AnythingOfType("models.FeedbackRequest")).
		Return(nil, errors.New("backend unavailable")).Once()

	body := `{
		"budgetName":"August",
		"income":[{"name":"Salary","amount":5000}],
		"expenses":[{"name":"Rent","amount":1500}],
		"totalIncome":5000,
		"totalExpenses":1500
	}`
	w := perform(router, http.MethodPost, "/api/v1/budgets/feedback", body, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestBudgetHandler_Create_RequiresIsActive(t *testing.T) {
	router, env := authedRouter()

	// isActive:false fails its own required-field check under the truthiness
	// policy.
	body := `{"name":"August","isActive":false}`
	w := perform(router, http.MethodPost, "/api/v1/budgets", body, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields","details":"isActive"}`, w.Body.String())
	env.budgets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
