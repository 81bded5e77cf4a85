package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"storeadmin/internal/handlers"
	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"
	"storeadmin/pkg/imagehost"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "adminpass123"
	custEmail     = "amina@example.com"
	custPassword  = "custpass123"
)

var dbCounter int64

type testEnv struct {
	app         *fiber.App
	jwtSecret   string
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	profileRepo repositories.ProfileRepository
	customerID  string
}

// setupApp builds a full Fiber app over an in-memory SQLite database for
// products and profiles and the in-memory order repository, with the upload
// handler pointed at the given image host URL.
func setupApp(t *testing.T, imageHostURL string) *testEnv {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:itest%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Product{}))

	productRepo := repositories.NewGORMProductRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	orderRepo := repositories.NewMockOrderRepository()

	authService := services.NewAuthService(profileRepo, jwtSecret)
	productService := services.NewProductService(productRepo, nil)
	orderService := services.NewOrderService(orderRepo, profileRepo, nil)
	userService := services.NewUserService(profileRepo, nil)
	dashboardService := services.NewDashboardService(productRepo, profileRepo, nil)
	uploader := imagehost.NewClient(imagehost.Config{
		BaseURL:      imageHostURL,
		CloudName:    "test-cloud",
		UploadPreset: "test-preset",
	})

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("", middleware.AuthRequired(authService), middleware.AdminRequired(authService))
	handlers.NewDashboardHandler(dashboardService).RegisterRoutes(adminRoutes)
	handlers.NewProductHandler(productService).RegisterRoutes(adminRoutes)
	handlers.NewOrderHandler(orderService).RegisterRoutes(adminRoutes)
	handlers.NewUserHandler(userService).RegisterRoutes(adminRoutes)
	handlers.NewUploadHandler(uploader).RegisterRoutes(adminRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	env := &testEnv{
		app:         app,
		jwtSecret:   jwtSecret,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
	}
	seedTestData(t, env)
	return env
}

func seedTestData(t *testing.T, env *testEnv) {
	t.Helper()

	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	admin := models.Profile{
		Email:    adminEmail,
		FullName: "Store Admin",
		Password: string(adminHash),
		Role:     models.RoleAdmin,
	}
	assert.NoError(t, env.profileRepo.Create(&admin))

	custHash, _ := bcrypt.GenerateFromPassword([]byte(custPassword), bcrypt.DefaultCost)
	customer := models.Profile{
		Email:    custEmail,
		FullName: "Amina Hassan",
		Password: string(custHash),
		Role:     models.RoleCustomer,
	}
	assert.NoError(t, env.profileRepo.Create(&customer))
	env.customerID = customer.ID

	products := []models.Product{
		{Name: "Rose Perfume", Category: "Perfumes", Price: 49.99, Stock: 10, ImageURL: "https://img.example/rose.jpg"},
		{Name: "Lipstick", Category: "Makeup", Price: 12.50, Stock: 40, ImageURL: "https://img.example/lip.jpg"},
	}
	for i := range products {
		assert.NoError(t, env.productRepo.Create(&products[i]))
	}

	// One order owned by the customer, one owned by a user with no profile.
	owned := models.Order{
		ID: "o1", UserID: customer.ID, TotalAmount: 49.99,
		Status: models.StatusPending, ShippingAddress: "1 Rose St", Phone: "0123456789",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, env.orderRepo.Create(&owned, []models.OrderItem{
		{ProductName: "Rose Perfume", ProductImageURL: "https://img.example/rose.jpg", Quantity: 1, Price: 49.99, Subtotal: 49.99},
	}))

	orphan := models.Order{
		ID: "o2", UserID: "u1", TotalAmount: 12.50,
		Status: models.StatusShipped, CreatedAt: time.Now().Add(-time.Hour),
	}
	assert.NoError(t, env.orderRepo.Create(&orphan, nil))
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginAdmin(t *testing.T, env *testEnv) string {
	t.Helper()
	req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	})
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

// forgeToken signs a token directly so the guard can be exercised with
// identities that could never obtain one through the login flow.
func forgeToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestLoginOutcomes(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")

	t.Run("admin login succeeds", func(t *testing.T) {
		token := loginAdmin(t, env)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    adminEmail,
			"password": "wrongpassword",
		})
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Contains(t, body["message"], "Invalid email or password")
	})

	t.Run("valid customer credentials are admins-only denied", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    custEmail,
			"password": custPassword,
		})
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Contains(t, body["message"], "Admins only")
	})
}

func TestAdminGuard(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")

	adminOnlyRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/dashboard/stats"},
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/users"},
	}

	t.Run("no identity is turned away", func(t *testing.T) {
		for _, route := range adminOnlyRoutes {
			resp, err := env.app.Test(httptest.NewRequest(route.method, route.path, nil), -1)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
			resp.Body.Close()
		}
	})

	t.Run("non-admin role is denied on every route", func(t *testing.T) {
		token := forgeToken(t, env.jwtSecret, env.customerID, models.RoleCustomer)
		for _, route := range adminOnlyRoutes {
			resp, err := env.app.Test(authed(httptest.NewRequest(route.method, route.path, nil), token), -1)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", route.method, route.path)
			resp.Body.Close()
		}
	})

	t.Run("identity with no profile row is denied", func(t *testing.T) {
		token := forgeToken(t, env.jwtSecret, "ghost-id", models.RoleAdmin)
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("admin passes", func(t *testing.T) {
		token := loginAdmin(t, env)
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestProductLifecycle(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")
	token := loginAdmin(t, env)

	newProduct := map[string]interface{}{
		"name":        "Oud Perfume",
		"description": "Rich oud fragrance",
		"price":       89.00,
		"category":    "Perfumes",
		"image_url":   "https://img.example/oud.jpg",
		"stock":       5,
	}

	// Create.
	resp, err := env.app.Test(authed(jsonRequest(http.MethodPost, "/api/v1/products", newProduct), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)

	// Round-trip: the list must contain an entry with identical fields.
	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []models.Product
	decodeBody(t, resp, &listed)

	var found *models.Product
	for i := range listed {
		if listed[i].ID == created.ID {
			found = &listed[i]
			break
		}
	}
	assert.NotNil(t, found)
	assert.Equal(t, "Oud Perfume", found.Name)
	assert.Equal(t, 89.00, found.Price)
	assert.Equal(t, "Perfumes", found.Category)
	assert.Equal(t, 5, found.Stock)
	assert.Equal(t, "https://img.example/oud.jpg", found.ImageURL)

	// The newest product leads the list.
	assert.Equal(t, created.ID, listed[0].ID)

	// Categories: distinct values prefixed with the sentinel.
	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil), token), -1)
	assert.NoError(t, err)
	var categories []string
	decodeBody(t, resp, &categories)
	assert.Equal(t, "All", categories[0])
	assert.Contains(t, categories, "Perfumes")
	assert.Contains(t, categories, "Makeup")

	// Category filter: exact matches only, "All" returns everything.
	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Makeup", nil), token), -1)
	assert.NoError(t, err)
	var makeup []models.Product
	decodeBody(t, resp, &makeup)
	assert.Len(t, makeup, 1)
	assert.Equal(t, "Lipstick", makeup[0].Name)

	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products?category=All", nil), token), -1)
	assert.NoError(t, err)
	var all []models.Product
	decodeBody(t, resp, &all)
	assert.Len(t, all, len(listed))

	// Update, then confirm via reload.
	update := map[string]interface{}{
		"name":        "Oud Perfume Deluxe",
		"description": "Rich oud fragrance",
		"price":       99.00,
		"category":    "Perfumes",
		"image_url":   "https://img.example/oud.jpg",
		"stock":       4,
	}
	resp, err = env.app.Test(authed(jsonRequest(http.MethodPut, "/api/v1/products/"+created.ID, update), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products/"+created.ID, nil), token), -1)
	assert.NoError(t, err)
	var reloaded models.Product
	decodeBody(t, resp, &reloaded)
	assert.Equal(t, "Oud Perfume Deluxe", reloaded.Name)
	assert.Equal(t, 99.00, reloaded.Price)
	assert.Equal(t, 4, reloaded.Stock)

	// Delete without confirmation leaves the catalog unchanged.
	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+created.ID, nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products/"+created.ID, nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Confirmed delete removes it.
	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+created.ID+"?confirm=true", nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/products/"+created.ID, nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAddProductWithoutImage(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")
	token := loginAdmin(t, env)

	before, err := env.productRepo.Count()
	assert.NoError(t, err)

	missingImage := map[string]interface{}{
		"name":     "Invisible",
		"price":    10.0,
		"category": "Makeup",
		"stock":    3,
	}
	resp, err := env.app.Test(authed(jsonRequest(http.MethodPost, "/api/v1/products", missingImage), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	after, err := env.productRepo.Count()
	assert.NoError(t, err)
	assert.Equal(t, before, after, "no insert may be issued for a product without an image")
}

func TestOrderWorkflows(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")
	token := loginAdmin(t, env)

	t.Run("list joins customers and degrades missing profiles", func(t *testing.T) {
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var orders []models.OrderSummary
		decodeBody(t, resp, &orders)
		assert.Len(t, orders, 2)

		byID := make(map[string]models.OrderSummary)
		for _, o := range orders {
			byID[o.ID] = o
		}
		assert.Equal(t, "Amina Hassan", byID["o1"].CustomerName)
		assert.Equal(t, custEmail, byID["o1"].CustomerEmail)
		assert.Equal(t, "Unknown", byID["o2"].CustomerName)
		assert.Equal(t, "-", byID["o2"].CustomerEmail)
	})

	t.Run("detail carries customer and items", func(t *testing.T) {
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/orders/o1", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var detail models.OrderDetail
		decodeBody(t, resp, &detail)
		assert.Equal(t, "Amina Hassan", detail.CustomerName)
		assert.Len(t, detail.Items, 1)
		assert.Equal(t, "Rose Perfume", detail.Items[0].ProductName)
		assert.Equal(t, 49.99, detail.Items[0].Subtotal)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/orders/nope", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		resp, err := env.app.Test(authed(jsonRequest(http.MethodPatch, "/api/v1/orders/o1/status",
			map[string]string{"status": "teleported"}), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("sequential updates persist only the final status", func(t *testing.T) {
		for _, status := range []string{models.StatusPending, models.StatusShipped} {
			resp, err := env.app.Test(authed(jsonRequest(http.MethodPatch, "/api/v1/orders/o1/status",
				map[string]string{"status": status}), token), -1)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}

		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/orders/o1", nil), token), -1)
		assert.NoError(t, err)
		var detail models.OrderDetail
		decodeBody(t, resp, &detail)
		assert.Equal(t, models.StatusShipped, detail.Status)
	})

	t.Run("setting the current status is a no-op in effect", func(t *testing.T) {
		resp, err := env.app.Test(authed(jsonRequest(http.MethodPatch, "/api/v1/orders/o2/status",
			map[string]string{"status": models.StatusShipped}), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp, err = env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/orders/o2", nil), token), -1)
		assert.NoError(t, err)
		var detail models.OrderDetail
		decodeBody(t, resp, &detail)
		assert.Equal(t, models.StatusShipped, detail.Status)
	})
}

func TestUserManagement(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")
	token := loginAdmin(t, env)

	t.Run("list exposes email and role", func(t *testing.T) {
		resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/users", nil), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var users []models.Profile
		decodeBody(t, resp, &users)
		assert.Len(t, users, 2)
	})

	t.Run("promotion to admin converges after reload", func(t *testing.T) {
		resp, err := env.app.Test(authed(jsonRequest(http.MethodPatch, "/api/v1/users/"+env.customerID+"/role",
			map[string]string{"role": models.RoleAdmin}), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		promoted, err := env.profileRepo.GetByID(env.customerID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, promoted.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		resp, err := env.app.Test(authed(jsonRequest(http.MethodPatch, "/api/v1/users/"+env.customerID+"/role",
			map[string]string{"role": "superuser"}), token), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestDashboardStats(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")
	token := loginAdmin(t, env)

	resp, err := env.app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil), token), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats services.Stats
	decodeBody(t, resp, &stats)
	assert.Equal(t, int64(2), stats.Products)
	assert.Equal(t, int64(2), stats.Users)
}

func multipartImageRequest(t *testing.T, target, filename string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImageUpload(t *testing.T) {
	t.Run("successful upload returns the hosted URL", func(t *testing.T) {
		imageHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"secure_url":"https://img.example/hosted.png"}`))
		}))
		defer imageHost.Close()

		env := setupApp(t, imageHost.URL)
		token := loginAdmin(t, env)

		req := authed(multipartImageRequest(t, "/api/v1/uploads/image", "photo.png"), token)
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "https://img.example/hosted.png", body["secure_url"])
	})

	t.Run("host response without secure_url fails the upload", func(t *testing.T) {
		imageHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		defer imageHost.Close()

		env := setupApp(t, imageHost.URL)
		token := loginAdmin(t, env)

		req := authed(multipartImageRequest(t, "/api/v1/uploads/image", "photo.png"), token)
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unsupported extension is rejected locally", func(t *testing.T) {
		env := setupApp(t, "http://image-host.invalid")
		token := loginAdmin(t, env)

		req := authed(multipartImageRequest(t, "/api/v1/uploads/image", "notes.txt"), token)
		resp, err := env.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestHealthCheck(t *testing.T) {
	env := setupApp(t, "http://image-host.invalid")

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}
