package masters

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	config.DB = gdb
	t.Cleanup(func() { db.Close() })
	return mock
}

func appendTo(t *testing.T, category, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/masters/"+category,
		strings.NewReader(body))
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	r.HandleFunc("/masters/{category}", AppendRecord).Methods(http.MethodPost)
	r.ServeHTTP(w, req)
	return w
}

// Appending a name that already exists in the category must not create
// another record; the existing one comes back with appended=false.
func TestAppendExistingNameIsNoOp(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "master_records"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "category", "name", "position"}).
			AddRow(uuid.NewString(), models.CategoryPOL, "Nhava Sheva", 0))

	w := appendTo(t, models.CategoryPOL, `{"name":"Nhava Sheva"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Appended bool                `json:"appended"`
		Record   models.MasterRecord `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Appended {
		t.Error("duplicate append should report appended=false")
	}
	if resp.Record.Name != "Nhava Sheva" {
		t.Errorf("record name = %q, want the existing record back", resp.Record.Name)
	}
	// The lookup must be the only statement: no insert, count unchanged.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("duplicate append ran extra statements: %v", err)
	}
}

func TestAppendUnknownCategoryRejected(t *testing.T) {
	newMockDB(t)

	w := appendTo(t, "starSign", `{"name":"Aries"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
