package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sumtl/restaurant-reviews-app/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.MenuItem{}, &entity.Review{}))

	r := gin.New()
	RegisterRoutes(r, db, zap.NewNop())
	return r, db
}

func doJSON(r *gin.Engine, method, path, email, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedItem(t *testing.T, db *gorm.DB, name string) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestLogin_CreatesThenConnects(t *testing.T) {
	r, _ := setupRouter(t)

	// base vide: 201 et isNewUser=true
	w := doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "a@x.com", data["email"])
	assert.Equal(t, true, data["isNewUser"])
	assert.Nil(t, data["name"])

	// même email: 200 et isNewUser=false
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = parseBody(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["isNewUser"])
}

func TestLogin_MissingEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email est obligatoire", parseBody(t, w)["error"])
}

func TestMenuItems_ListAndDetail(t *testing.T) {
	r, db := setupRouter(t)
	seedItem(t, db, "Poutine")
	seedItem(t, db, "Frites")

	w := doJSON(r, http.MethodGet, "/api/menu-items", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	items := body["data"].([]any)
	require.Len(t, items, 2)
	// tri par nom ascendant
	assert.Equal(t, "Frites", items[0].(map[string]any)["name"])
	assert.Equal(t, "Poutine", items[1].(map[string]any)["name"])

	w = doJSON(r, http.MethodGet, "/api/menu-items/1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/menu-items/999", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu item non trouvé", parseBody(t, w)["error"])
}

func TestCreateReview_FullFlow(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Poutine")
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)

	// sans identité → 400
	w := doJSON(r, http.MethodPost, "/api/reviews", "", `{"menuItemId":1,"rating":5,"comment":"top"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email utilisateur requis", parseBody(t, w)["error"])

	// utilisateur inconnu → 400
	w = doJSON(r, http.MethodPost, "/api/reviews", "ghost@x.com", `{"menuItemId":1,"rating":5,"comment":"top"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Utilisateur non trouvé", parseBody(t, w)["error"])

	// champs manquants → 400
	w = doJSON(r, http.MethodPost, "/api/reviews", "a@x.com", `{"rating":5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Données manquantes", parseBody(t, w)["error"])

	// rating=6 → 400 avec details sur le champ rating
	w = doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":6,"comment":"trop bon"}`, item.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := parseBody(t, w)
	details := body["details"].([]any)
	require.NotEmpty(t, details)
	assert.Equal(t, "rating", details[0].(map[string]any)["path"])

	// création valide → 201 avec auteur et plat attachés
	w = doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":5,"comment":"Excellent plat !"}`, item.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	body = parseBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["rating"])
	assert.Equal(t, "Excellent plat !", data["comment"])
	assert.Equal(t, "Poutine", data["menuItem"].(map[string]any)["name"])

	// second avis sur le même plat → 400 doublon
	w = doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":3,"comment":"encore"}`, item.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parseBody(t, w)["error"], "déjà laissé un avis")
}

func TestUpdateReview_OwnershipAndValidation(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Frites")
	otherItem := seedItem(t, db, "Poutine")
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"b@x.com"}`)

	w := doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":4,"comment":"bien"}`, item.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(parseBody(t, w)["data"].(map[string]any)["id"].(float64))

	// un autre utilisateur → 403, avis inchangé
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), "b@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":1,"comment":"sabotage"}`, item.ID))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Vous n'êtes pas autorisé à modifier cet avis", parseBody(t, w)["error"])

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/reviews/%d", id), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), parseBody(t, w)["data"].(map[string]any)["rating"])

	// champs manquants → 400
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), "a@x.com", `{"rating":3}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tous les champs sont requis", parseBody(t, w)["error"])

	// l'auteur → 200
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":2,"comment":"déçu"}`, item.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), parseBody(t, w)["data"].(map[string]any)["rating"])

	// changement de plat cible: le nouveau plat doit persister
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":2,"comment":"déçu"}`, otherItem.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Poutine", parseBody(t, w)["data"].(map[string]any)["menuItem"].(map[string]any)["name"])

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/reviews/%d", id), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Poutine", parseBody(t, w)["data"].(map[string]any)["menuItem"].(map[string]any)["name"])

	// id inexistant → 404
	w = doJSON(r, http.MethodPut, "/api/reviews/9999", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":2,"comment":"x"}`, item.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReview_OwnershipFlow(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Sandwich")
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"b@x.com"}`)

	w := doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":5,"comment":"miam"}`, item.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(parseBody(t, w)["data"].(map[string]any)["id"].(float64))

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), "b@x.com", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), "a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Avis supprimé avec succès", parseBody(t, w)["message"])

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), "a@x.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReviews_ByMenuAndByUser(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Biscuit")
	other := seedItem(t, db, "Poutine")
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)

	doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":5,"comment":"top"}`, item.ID))
	doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":3,"comment":"ok"}`, other.ID))

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/reviews/by-menu/%d", item.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	require.Len(t, body["data"].([]any), 1)
	assert.Equal(t, "1 avis trouvés", body["message"])

	w = doJSON(r, http.MethodGet, "/api/reviews/by-menu/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// by-user sans identité → 401
	w = doJSON(r, http.MethodGet, "/api/reviews/by-user", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/reviews/by-user", "a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseBody(t, w)["data"].([]any), 2)

	// liste globale avec email de l'auteur exposé
	w = doJSON(r, http.MethodGet, "/api/reviews", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := parseBody(t, w)["data"].([]any)
	require.Len(t, all, 2)
	user := all[0].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
}

func TestUsersAndProfile(t *testing.T) {
	r, db := setupRouter(t)
	item := seedItem(t, db, "Frites")
	doJSON(r, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com"}`)
	doJSON(r, http.MethodPost, "/api/reviews", "a@x.com",
		fmt.Sprintf(`{"menuItemId":%d,"rating":4,"comment":"bien"}`, item.ID))

	// liste avec compte d'avis
	w := doJSON(r, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := parseBody(t, w)["data"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, float64(1), users[0].(map[string]any)["reviewsCount"])

	// profil par query param
	w = doJSON(r, http.MethodGet, "/api/users/profile?email=a@x.com", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	profile := parseBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), profile["reviewsCount"])

	// ni query ni header → 400
	w = doJSON(r, http.MethodGet, "/api/users/profile", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// inconnu → 404
	w = doJSON(r, http.MethodGet, "/api/users/profile?email=ghost@x.com", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// mise à jour du nom: header obligatoire
	w = doJSON(r, http.MethodPut, "/api/users/profile", "", `{"name":"Jean"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Le header X-User-Email est obligatoire", parseBody(t, w)["error"])

	w = doJSON(r, http.MethodPut, "/api/users/profile", "a@x.com", `{"name":"  Jean Dupont "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jean Dupont", parseBody(t, w)["data"].(map[string]any)["name"])

	// nom trop long → 400
	long := strings.Repeat("x", 51)
	w = doJSON(r, http.MethodPut, "/api/users/profile", "a@x.com", fmt.Sprintf(`{"name":%q}`, long))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Le nom ne peut pas dépasser 50 caractères", parseBody(t, w)["error"])
}

func TestAPIDocsServed(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api-docs", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")

	w = doJSON(r, http.MethodGet, "/api-docs/openapi.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Restaurant Reviews API")
}
