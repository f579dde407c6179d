package inquiry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familysoo/studio-web/internal/middleware"
)

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return rr, out
}

func TestSubmitHandlerCreatesInquiry(t *testing.T) {
	repo := &memoryRepo{}
	h := NewHandler(NewService(repo)).Routes(nil)

	rr, body := post(t, h, `{
		"name": " 김하늘 ",
		"phone": "01012345678",
		"shoot_type": "family",
		"people": "5+",
		"privacy_consent": true
	}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var data InquirySubmittedResponse
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, MsgSubmitted, data.Message)
	require.Len(t, repo.inquiries, 1)
	assert.Equal(t, data.InquiryID, repo.inquiries[0].ID)
	assert.Equal(t, "김하늘", repo.inquiries[0].Name)
}

func TestSubmitHandlerValidation(t *testing.T) {
	repo := &memoryRepo{}
	h := NewHandler(NewService(repo)).Routes(nil)

	rr, body := post(t, h, `{
		"name": "",
		"phone": "12345",
		"shoot_type": "wedding",
		"people": "9",
		"preferred_date": "06/01/2024",
		"privacy_consent": false
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var details map[string]string
	require.NoError(t, json.Unmarshal(body["details"], &details))
	for _, field := range []string{"name", "phone", "shoot_type", "people", "preferred_date", "privacy_consent"} {
		assert.Contains(t, details, field)
	}
	assert.Empty(t, repo.inquiries)
}

func TestSubmitHandlerRejectsMalformedJSON(t *testing.T) {
	h := NewHandler(NewService(&memoryRepo{})).Routes(nil)

	rr, _ := post(t, h, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitHandlerIsRateLimited(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(1, 1)
	h := NewHandler(NewService(&memoryRepo{})).Routes(limiter.Handler)
	body := `{"name":"a","phone":"010-1234-5678","shoot_type":"baby","privacy_consent":true}`

	first, _ := post(t, h, body)
	second, _ := post(t, h, body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestFromForm(t *testing.T) {
	values := url.Values{
		"name":            {"김하늘"},
		"phone":           {"010-1234-5678"},
		"shoot_type":      {"remind"},
		"privacy_consent": {"on"},
	}

	req := FromForm(values)
	assert.True(t, req.PrivacyConsent)
	assert.Equal(t, "remind", req.ShootType)

	values.Del("privacy_consent")
	assert.False(t, FromForm(values).PrivacyConsent)
}
