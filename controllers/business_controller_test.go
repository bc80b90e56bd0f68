package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func rejectRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())

	// A nil client panics on any database call, so these requests must
	// be refused before the handler touches Mongo
	bc := NewBusinessController(nil, nil)
	require.NoError(t, bc.RejectBusiness(c))
	return rec
}

func TestRejectBusinessRequiresReason(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		rec := rejectRequest(t, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty reason", func(t *testing.T) {
		rec := rejectRequest(t, `{"reason":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenerateProfileQR(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://karetou.app")

	qrCode, err := generateProfileQR("64f0c2a1b3d4e5f6a7b8c9d0")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(qrCode, "data:image/png;base64,"))
	assert.Greater(t, len(qrCode), 100)
}

func TestGenerateProfileQRDefaultBaseURL(t *testing.T) {
	t.Setenv("APP_BASE_URL", "")

	qrCode, err := generateProfileQR("abc123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qrCode, "data:image/png;base64,"))
}
