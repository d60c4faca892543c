package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/handler"
	"eldercare_booking/helper"
	"eldercare_booking/model"
	"eldercare_booking/service"
	"eldercare_booking/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	app   *fiber.App
	users store.UserStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	users := store.NewMemoryUserStore()
	activities := store.NewMemoryActivityStore()
	codes := service.NewCodeGenerator(store.NewMemorySequenceCounter())

	auth := service.NewAuthService(users, nil, time.Hour)
	orders := service.NewOrderService(store.NewMemoryOrderStore(users), users, codes, nil,
		service.BankAccount{BankID: "VCB", AccountNo: "0123456789", AccountName: "SONG VUI KHOE"})
	bookings := service.NewBookingService(store.NewMemoryBookingStore(users), users, activities, codes, nil)

	handler.Setup(handler.Services{
		Auth:       auth,
		Orders:     orders,
		Bookings:   bookings,
		History:    service.NewHistoryService(orders, bookings),
		Activities: service.NewActivityService(activities, nil),
		Chat:       service.NewChatService(nil, activities),
		Uploads:    service.NewUploadService(nil),
	})

	app := fiber.New()
	SetupRoutes(app, auth)
	return &testApp{app: app, users: users}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (a *testApp) register(t *testing.T, name, email, phone string) string {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "phone": phone, "password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var result model.AuthResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	return result.Token
}

func (a *testApp) admin(t *testing.T) string {
	t.Helper()
	user := &model.User{Name: "Admin", Email: "admin@example.com", Phone: "0900000000", Password: "x", Role: constants.ROLE_ADMIN}
	require.NoError(t, a.users.Create(context.Background(), user))
	token, _, err := helper.GenerateAccessToken(user.ID, time.Now(), time.Hour)
	require.NoError(t, err)
	return token
}

func checkoutBody(pricePerDay float64, days int, total float64) fiber.Map {
	return fiber.Map{
		"paymentMethod": "bank",
		"totalAmount":   total,
		"items": []fiber.Map{{
			"serviceName":       "Gói chăm sóc thường",
			"serviceType":       "package",
			"packageType":       "standard",
			"elderName":         "Nguyễn Văn Bình",
			"elderAge":          80,
			"elderGender":       "Nam",
			"elderRelationship": "Bố",
			"startDate":         "2025-10-20",
			"endDate":           fmt.Sprintf("2025-10-%02d", 20+days),
			"pricePerDay":       pricePerDay,
			"totalDays":         days,
			"itemTotal":         pricePerDay * float64(days),
		}},
	}
}

func decodeOrder(t *testing.T, env envelope) model.Order {
	t.Helper()
	var order model.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	return order
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])
}

func TestCheckoutFlow(t *testing.T) {
	a := newTestApp(t)
	token := a.register(t, "Phạm Long", "long@example.com", "0905123456")

	status, env := a.do(t, http.MethodPost, "/api/orders", token, checkoutBody(250000, 3, 750000))
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	assert.True(t, env.Success)
	order := decodeOrder(t, env)
	assert.Regexp(t, `^SVK\d{8}001$`, order.OrderCode)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "long@example.com", order.BookedByEmail)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].TotalDays)

	status, env = a.do(t, http.MethodGet, "/api/orders/my-orders", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, order.OrderCode, decodeOrder(t, env).OrderCode)

	status, env = a.do(t, http.MethodGet, "/api/history/my", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, *env.Count)
}

func TestCheckout_Rejections(t *testing.T) {
	a := newTestApp(t)
	token := a.register(t, "Phạm Long", "long@example.com", "0905123456")

	status, env := a.do(t, http.MethodPost, "/api/orders", token, checkoutBody(250000, 3, 1))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, constants.AMOUNT_MISMATCH, env.Message)

	status, _ = a.do(t, http.MethodPost, "/api/orders", token, fiber.Map{"items": []fiber.Map{}, "totalAmount": 0})
	assert.Equal(t, fiber.StatusBadRequest, status)

	blank := checkoutBody(250000, 3, 750000)
	blank["items"].([]fiber.Map)[0]["elderName"] = "   "
	status, env = a.do(t, http.MethodPost, "/api/orders", token, blank)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constants.ERROR_INPUT, env.Message)

	status, env = a.do(t, http.MethodPost, "/api/orders", "", checkoutBody(250000, 3, 750000))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.MISSING_TOKEN, env.Message)

	status, env = a.do(t, http.MethodGet, "/api/orders/my-orders", "garbage", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.INVALID_TOKEN, env.Message)

	status, _ = a.do(t, http.MethodGet, "/api/orders/abc", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAdminLifecycle(t *testing.T) {
	a := newTestApp(t)
	userToken := a.register(t, "Phạm Long", "long@example.com", "0905123456")
	adminToken := a.admin(t)

	_, env := a.do(t, http.MethodPost, "/api/orders", userToken, checkoutBody(250000, 2, 500000))
	order := decodeOrder(t, env)
	statusPath := fmt.Sprintf("/api/orders/%d/status", order.ID)
	paymentPath := fmt.Sprintf("/api/orders/%d/payment", order.ID)

	status, env := a.do(t, http.MethodPut, statusPath, userToken, fiber.Map{"status": "approved"})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, constants.ADMIN_ONLY, env.Message)

	status, _ = a.do(t, http.MethodGet, "/api/orders", userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = a.do(t, http.MethodPut, statusPath, adminToken, fiber.Map{"status": "approved"})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	assert.Equal(t, model.OrderApproved, decodeOrder(t, env).Status)

	status, env = a.do(t, http.MethodPut, statusPath, adminToken, fiber.Map{"status": "rejected"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, constants.ILLEGAL_TRANSITION, env.Message)

	status, _ = a.do(t, http.MethodPut, statusPath, adminToken, fiber.Map{"status": "shipped"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = a.do(t, http.MethodPut, paymentPath, adminToken, fiber.Map{"paymentStatus": "paid"})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	updated := decodeOrder(t, env)
	assert.Equal(t, model.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, model.OrderApproved, updated.Status)

	status, _ = a.do(t, http.MethodPut, "/api/orders/9999/status", adminToken, fiber.Map{"status": "approved"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d/events", order.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, *env.Count)

	status, env = a.do(t, http.MethodGet, "/api/orders", adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var all model.Orders
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Booker)
	assert.Equal(t, "long@example.com", all[0].Booker.Email)
}

func TestOwnershipIsolation(t *testing.T) {
	a := newTestApp(t)
	owner := a.register(t, "Phạm Long", "long@example.com", "0905123456")
	other := a.register(t, "Trần Hoa", "hoa@example.com", "0905654321")

	_, env := a.do(t, http.MethodPost, "/api/orders", owner, checkoutBody(100000, 1, 100000))
	order := decodeOrder(t, env)

	status, env := a.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), other, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, constants.ORDER_NOT_FOUND, env.Message)

	status, _ = a.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d/payment-qr", order.ID), other, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = a.do(t, http.MethodGet, "/api/orders/my-orders", other, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, *env.Count)
}

func TestRegister_DuplicateReturnsConflict(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "Phạm Long", "long@example.com", "0905123456")

	status, env := a.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Khác", "email": "LONG@example.com", "phone": "0905000000", "password": "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, constants.DUPLICATE_ACCOUNT, env.Message)

	status, env = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "long@example.com", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.INVALID_LOGIN, env.Message)
}

func TestChat_NotConfigured(t *testing.T) {
	a := newTestApp(t)
	status, env := a.do(t, http.MethodPost, "/api/ai/chat", "", fiber.Map{
		"messages": []fiber.Map{{"role": "user", "content": "Xin chào"}},
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, constants.AI_NOT_CONFIGURED, env.Message)
}
