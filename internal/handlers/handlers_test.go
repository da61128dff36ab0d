package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/models"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/services"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/store"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/validation"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/zodiac"
)

// brokenStore fails every save so the transaction-failure response can be
// observed end to end.
type brokenStore struct {
	*store.Memory
}

func (b *brokenStore) SaveUser(u models.User) (models.User, error) {
	return models.User{}, errors.New("persistence down")
}

func newTestHandler(st Store) *Handler {
	return New(st, zodiac.NewEngine(), validation.NewUserValidator(),
		services.NewConsultationFeed(zap.NewNop()), zap.NewNop())
}

const validBody = `{"surname":"CRUZ","firstName":"ANA","gender":"FEMALE","month":7,"day":15,"year":1995}`

func TestRegisterUser_Success(t *testing.T) {
	m := store.NewMemory()
	h := newTestHandler(m)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RegisterUserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.UserID, "USER_"))
	assert.Equal(t, "Cancer", resp.ZodiacSign)

	// The commit persisted the user and appended exactly one record.
	assert.True(t, m.UserExists(resp.UserID))
	assert.Len(t, m.GetAllConsultations(), 1)
}

func TestRegisterUser_InvalidBody(t *testing.T) {
	h := newTestHandler(store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterUser_ValidationErrorsListEveryRule(t *testing.T) {
	m := store.NewMemory()
	h := newTestHandler(m)

	body := `{"surname":"smith","firstName":"JUAN","gender":"MALE","month":13,"day":32,"year":1900}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "uppercase letters")
	assert.Contains(t, resp.Error, "Invalid month")
	assert.Contains(t, resp.Error, "Invalid day")
	assert.Contains(t, resp.Error, "Invalid year")

	// Nothing was persisted.
	assert.Empty(t, m.GetAllUsers())
	assert.Empty(t, m.GetAllConsultations())
}

func TestRegisterUser_TransactionFailure(t *testing.T) {
	b := &brokenStore{Memory: store.NewMemory()}
	h := newTestHandler(b)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Transaction failed", resp.Error)
	assert.Empty(t, b.GetAllConsultations())
}

func TestGetConsultation_MissingParameter(t *testing.T) {
	h := newTestHandler(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/api/consultations", nil)
	rec := httptest.NewRecorder()
	h.GetConsultation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConsultation_UnknownUser(t *testing.T) {
	h := newTestHandler(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/api/consultations?userId=USER_0_ghost", nil)
	rec := httptest.NewRecorder()
	h.GetConsultation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetConsultation_GeneratesProphecy(t *testing.T) {
	m := store.NewMemory()
	h := newTestHandler(m)

	saved, err := m.SaveUser(models.NewUser("CRUZ", "ANA", "", "", "FEMALE", 7, 15, 1995))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/consultations?userId="+saved.ID, nil)
	rec := httptest.NewRecorder()
	h.GetConsultation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConsultationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Cancer", resp.ZodiacSign)
	assert.NotEmpty(t, resp.Prophecy.Main)
	assert.Equal(t, strings.ToUpper(resp.Prophecy.Main), resp.Prophecy.Main)
	assert.True(t, strings.HasPrefix(resp.Prophecy.Love, "\U0001F495 "))
	assert.True(t, strings.HasPrefix(resp.Prophecy.Career, "\U0001F680 "))
	assert.True(t, strings.HasPrefix(resp.Prophecy.Health, "\U0001F4AA "))
	assert.True(t, strings.HasPrefix(resp.Prophecy.Money, "\U0001F4B0 "))
}

func registerTestUser(t *testing.T, h *Handler, body string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminStatsAndListing(t *testing.T) {
	m := store.NewMemory()
	h := newTestHandler(m)

	registerTestUser(t, h, validBody)
	registerTestUser(t, h, `{"surname":"SANTOS","firstName":"JOSE","gender":"MALE","month":1,"day":5,"year":1988}`)

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats services.Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.MaleUsers)
	assert.Equal(t, 1, stats.FemaleUsers)
	assert.Equal(t, 2, stats.TodayConsultations)

	rec = httptest.NewRecorder()
	h.ListConsultations(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.ConsultationSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "CRUZ, ANA", list[0].Name)
	assert.Equal(t, "Capricorn", list[1].ZodiacSign)
}

func TestAdminExportCSV(t *testing.T) {
	h := newTestHandler(store.NewMemory())
	registerTestUser(t, h, validBody)

	rec := httptest.NewRecorder()
	h.ExportData(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=zodiac_data.csv", rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Surname,First Name"))
	assert.Contains(t, rec.Body.String(), "CRUZ,ANA")
}

func TestAdminExportDefaultsToJSON(t *testing.T) {
	h := newTestHandler(store.NewMemory())
	registerTestUser(t, h, validBody)

	rec := httptest.NewRecorder()
	h.ExportData(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var list []models.ConsultationSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestAdminClearData(t *testing.T) {
	m := store.NewMemory()
	h := newTestHandler(m)
	registerTestUser(t, h, validBody)

	rec := httptest.NewRecorder()
	h.ClearData(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/clear", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, m.GetAllUsers())
	assert.Empty(t, m.GetAllConsultations())
}

func TestDailyProphecyStub(t *testing.T) {
	h := newTestHandler(store.NewMemory())

	rec := httptest.NewRecorder()
	h.DailyProphecy(rec, httptest.NewRequest(http.MethodPost, "/api/prophecy", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DailyProphecyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Your daily cosmic guidance is revealed", resp.Prophecy)
}
