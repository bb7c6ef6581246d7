package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mlefevre-dev/vitrine-backend/internal/content"
	"github.com/mlefevre-dev/vitrine-backend/internal/ordering"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "controllers-test", Output: io.Discard})
}

func newFaqCollection(t *testing.T) *content.Collection[models.FaqItem, *models.FaqItem] {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.FaqItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		conn.Exec("DELETE FROM faq_items")
	})
	return content.NewCollection[models.FaqItem, *models.FaqItem](
		conn, ordering.Config{Name: "faq", ReindexOnDelete: true}, nil, nil, testLogger())
}

func newFaqRouter(t *testing.T) (chi.Router, *content.Collection[models.FaqItem, *models.FaqItem]) {
	t.Helper()
	svc := newFaqCollection(t)
	logg := testLogger()
	r := chi.NewRouter()
	r.Get("/faq", CollectionList(svc, logg))
	r.Get("/faq/{id}", CollectionGet(svc, logg))
	r.Post("/faq", CollectionCreate(svc, logg, BindFaqCreate))
	r.Put("/faq/{id}", CollectionUpdate(svc, logg, BindFaqUpdate))
	r.Patch("/faq/{id}", CollectionPatch(svc, logg, FaqPatchColumns))
	r.Delete("/faq/{id}", CollectionDelete(svc, logg))
	r.Post("/faq/{id}/move", CollectionMove(svc, logg))
	r.Post("/faq/reindex", CollectionReindex(svc, logg))
	return r, svc
}

func doJSON(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func seedFaqItems(t *testing.T, r http.Handler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		rec := doJSON(t, r, http.MethodPost, "/faq",
			`{"question":"Q","answer":"A","category":"general"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed %d: expected 201, got %d (%s)", i, rec.Code, rec.Body.String())
		}
	}
}

func listOrders(t *testing.T, r http.Handler) []int {
	t.Helper()
	rec := doJSON(t, r, http.MethodGet, "/faq", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var items []models.FaqItem
	decodeData(t, rec, &items)
	orders := make([]int, 0, len(items))
	for _, item := range items {
		orders = append(orders, item.Position)
	}
	return orders
}

func TestCollectionCreateAppends(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 2)

	rec := doJSON(t, r, http.MethodPost, "/faq",
		`{"question":"troisieme","answer":"A","category":"general"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created models.FaqItem
	decodeData(t, rec, &created)
	if created.Position != 3 {
		t.Fatalf("expected new item appended at order 3, got %d", created.Position)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}
}

func TestCollectionCreateRejectsUnknownField(t *testing.T) {
	r, _ := newFaqRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/faq",
		`{"question":"Q","answer":"A","category":"general","bogus":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestCollectionMoveSwapsNeighbors(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 3)

	rec := doJSON(t, r, http.MethodPost, "/faq/1/move", `{"direction":"down"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var items []models.FaqItem
	decodeData(t, rec, &items)
	if len(items) != 3 {
		t.Fatalf("expected full collection back, got %d items", len(items))
	}
	// Sorted by order: item 2 now leads, item 1 second.
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected ids [2 1 3] after move, got [%d %d %d]", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestCollectionMoveBoundaryNoop(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 2)

	rec := doJSON(t, r, http.MethodPost, "/faq/1/move", `{"direction":"up"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if orders := listOrders(t, r); orders[0] != 1 || orders[1] != 2 {
		t.Fatalf("boundary move must not change orders, got %v", orders)
	}
}

func TestCollectionMoveRejectsBadDirection(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 1)

	rec := doJSON(t, r, http.MethodPost, "/faq/1/move", `{"direction":"sideways"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad direction, got %d", rec.Code)
	}
}

func TestCollectionPatchOrderCollision(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 3)

	rec := doJSON(t, r, http.MethodPatch, "/faq/1", `{"order":2}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for taken order, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestCollectionPatchRejectsDisallowedField(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 1)

	rec := doJSON(t, r, http.MethodPatch, "/faq/1", `{"id":42}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for disallowed field, got %d", rec.Code)
	}
}

func TestCollectionPatchUpdatesColumn(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 1)

	rec := doJSON(t, r, http.MethodPatch, "/faq/1", `{"category":"livraison"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var item models.FaqItem
	decodeData(t, rec, &item)
	if item.Category != "livraison" {
		t.Fatalf("expected patched category, got %q", item.Category)
	}
}

func TestCollectionDeleteReindexes(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 3)

	rec := doJSON(t, r, http.MethodDelete, "/faq/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if orders := listOrders(t, r); len(orders) != 2 || orders[0] != 1 || orders[1] != 2 {
		t.Fatalf("expected dense orders [1 2] after delete, got %v", orders)
	}
}

func TestCollectionGetMissing(t *testing.T) {
	r, _ := newFaqRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/faq/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCollectionUpdateKeepsOrderWhenOmitted(t *testing.T) {
	r, _ := newFaqRouter(t)
	seedFaqItems(t, r, 3)

	rec := doJSON(t, r, http.MethodPut, "/faq/2",
		`{"question":"nouvelle","answer":"reponse","category":"general"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var item models.FaqItem
	decodeData(t, rec, &item)
	if item.Position != 2 {
		t.Fatalf("omitting order on PUT must keep rank 2, got %d", item.Position)
	}
	if item.Question != "nouvelle" {
		t.Fatalf("expected updated question, got %q", item.Question)
	}
}
