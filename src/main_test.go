package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rms/src/config"
	"rms/src/db"
	"rms/src/middlewares"
	"rms/src/types"
	"rms/src/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	Token string
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "secret")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("reservabledate", reservationDateTimeValidatorFunc)
		v.RegisterValidation("gtdate", gtfield)
	}

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock

	token, err := utils.GenerateJWT("manager@example.com", 1, "manager")
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	s.Token = token
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestMenuRoutes() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	menuHandlers(apiv1)

	s.Mock.ExpectQuery(`SELECT (.+) FROM "menu_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "is_active"}).
			AddRow(1, "Burger", "House burger", "9.50", true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/menu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(1), gjson.Get(sjson, "count").Int())
	assert.Equal(s.T(), "Burger", gjson.Get(sjson, "data.0.name").String())
}

func (s *TestSuite) TestUnauthorizedRequest() {
	router := setupRouter()
	authorized := apiv1Group(router)
	authorized.Use(middlewares.AuthMiddleware)
	orderHandlers(authorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)
}

func (s *TestSuite) TestAuthorizedOrderList() {
	router := setupRouter()
	authorized := apiv1Group(router)
	authorized.Use(middlewares.AuthMiddleware)
	orderHandlers(authorized)

	s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
			AddRow(1, "Test Manager", "manager@example.com", "manager", true))
	s.Mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status", "total_amount"}).
			AddRow(1, 1, "COMPLETED", "19.00"))
	s.Mock.ExpectQuery(`SELECT (.+) FROM "order_lines"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "quantity", "unit_price"}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	sjson := string(rbytes)
	assert.Equal(s.T(), int64(1), gjson.Get(sjson, "count").Int())
	assert.Equal(s.T(), "COMPLETED", gjson.Get(sjson, "data.0.status").String())
}

func (s *TestSuite) TestReservationSlotValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(s.T(), ok)

	start := time.Now().Add(24 * time.Hour).Format(config.TIME_PARSE_FORMAT)
	body := types.CreateReservationRequestBody{
		TableID:   1,
		StartTime: start,
		EndTime:   start,
	}
	assert.NotNil(s.T(), v.Struct(&body), "zero-length slot must not validate")

	body.EndTime = time.Now().Add(26 * time.Hour).Format(config.TIME_PARSE_FORMAT)
	assert.Nil(s.T(), v.Struct(&body))
}

func (s *TestSuite) TestMenuItemStockValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(s.T(), ok)

	body := types.CreateMenuItemRequestBody{Name: "Burger", Price: "9.50", Quantity: -5}
	assert.NotNil(s.T(), v.Struct(&body), "negative quantity must not validate")

	negative := -1
	body = types.CreateMenuItemRequestBody{Name: "Burger", Price: "9.50", Threshold: &negative}
	assert.NotNil(s.T(), v.Struct(&body), "negative threshold must not validate")

	body = types.CreateMenuItemRequestBody{Name: "Burger", Price: "9.50", Quantity: 10}
	assert.Nil(s.T(), v.Struct(&body))
}

func (s *TestSuite) TestCompleteRequiresProcessingOrder() {
	router := setupRouter()
	authorized := apiv1Group(router)
	authorized.Use(middlewares.AuthMiddleware)
	managers := authorized.Group("/")
	managers.Use(middlewares.ManagerOnly)
	orderManagerHandlers(managers)

	s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
			AddRow(1, "Test Manager", "manager@example.com", "manager", true))
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status", "total_amount"}).
			AddRow(1, 1, "PENDING", "0.00"))
	s.Mock.ExpectRollback()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/orders/1/complete", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 409, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "PENDING", gjson.Get(string(rbytes), "status").String())
}

func (s *TestSuite) TestManagerOnlyRejectsCustomers() {
	router := setupRouter()
	authorized := apiv1Group(router)
	authorized.Use(middlewares.AuthMiddleware)
	managers := authorized.Group("/")
	managers.Use(middlewares.ManagerOnly)
	userAdminHandlers(managers)

	token, err := utils.GenerateJWT("customer@example.com", 2, "customer")
	assert.Nil(s.T(), err)

	s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
			AddRow(2, "Test Customer", "customer@example.com", "customer", true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 403, w.Code)
}

func (s *TestSuite) TestAuthRoutes() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	authHandlers(apiv1)

	s.Run("login returns a token for a known account", func() {
		s.Mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
				AddRow(1, "Test Manager", "manager@example.com", "manager", true))

		jbody := map[string]any{"email": "manager@example.com"}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		token := gjson.Get(string(rbytes), "token").String()
		assert.NotEmpty(s.T(), token)
	})

	s.Run("register rejects a malformed body", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
