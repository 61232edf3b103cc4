package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/auth"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	storagemocks "github.com/acquisitions-lab/acquisitions/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "catalog-handler-test-secret"

type handlerFixture struct {
	engine   *gin.Engine
	store    *storagemocks.ProductStore
	tokens   *auth.TokenIssuer
	captured []error
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		store:  storagemocks.NewProductStore(t),
		tokens: auth.NewTokenIssuer(testSecret, time.Hour),
	}
	authn := auth.NewAuthenticator(f.tokens, "token")

	f.engine = gin.New()
	f.engine.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			f.captured = append(f.captured, e.Err)
		}
		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boundary"})
		}
	})

	svc := NewService(f.store, false, nil)
	svc.RegisterRoutes(f.engine, authn.Authenticate(), auth.RequireRole(v1.RoleAdmin))
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body interface{}, role v1.Role) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := f.tokens.Issue(&v1.User{ID: 3, Email: "admin@example.com", Role: role})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestHandler_ListProducts(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().ListProducts(mock.Anything).Return([]*v1.Product{{ID: 1, Name: "Serum", Category: v1.CategoryBeauty}}, nil).Once()

	w := f.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products []v1.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	require.Equal(t, "Serum", body.Products[0].Name)
}

func TestHandler_ListProducts_NotReadyGoesToBoundary(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().ListProducts(mock.Anything).Return(nil, storage.ErrTableMissing).Once()

	w := f.do(t, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, f.captured, 1)
	require.ErrorIs(t, f.captured[0], ErrNotReady)
}

func TestHandler_CreateProduct(t *testing.T) {
	valid := map[string]string{"name": "Aloe Gel", "category": "beauty", "imageUrl": "https://x/1.png", "linkUrl": "https://x/1"}

	tests := []struct {
		name       string
		role       v1.Role
		body       interface{}
		setup      func(store *storagemocks.ProductStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "anonymous is rejected",
			body:       valid,
			setup:      func(*storagemocks.ProductStore) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authentication required"}`,
		},
		{
			name:       "non-admin is rejected",
			role:       v1.RoleUser,
			body:       valid,
			setup:      func(*storagemocks.ProductStore) {},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Insufficient permissions"}`,
		},
		{
			name:       "invalid category",
			role:       v1.RoleAdmin,
			body:       map[string]string{"name": "Aloe Gel", "category": "toys", "imageUrl": "https://x/1.png", "linkUrl": "https://x/1"},
			setup:      func(*storagemocks.ProductStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":[{"field":"category","message":"must be one of: beauty, supplement"}]}`,
		},
		{
			name: "admin creates with createdBy",
			role: v1.RoleAdmin,
			body: valid,
			setup: func(store *storagemocks.ProductStore) {
				store.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(p *v1.NewProduct) bool {
						return p.Name == "Aloe Gel" && p.CreatedBy != nil && *p.CreatedBy == 3
					})).
					Return(&v1.Product{ID: 11, Name: "Aloe Gel", Category: v1.CategoryBeauty}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f.store)

			w := f.do(t, http.MethodPost, "/api/products", tt.body, tt.role)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_UpdateProduct(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(t, http.MethodPatch, "/api/products/4", map[string]string{}, v1.RoleAdmin)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"error":"Validation failed","details":[{"field":"body","message":"no updates supplied"}]}`, w.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(t, http.MethodPatch, "/api/products/-2", map[string]string{"name": "New"}, v1.RoleAdmin)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), `"field":"id"`)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.store.EXPECT().UpdateProduct(mock.Anything, int64(4), mock.Anything).Return(nil, storage.ErrNotFound).Once()

		w := f.do(t, http.MethodPatch, "/api/products/4", map[string]string{"name": "New"}, v1.RoleAdmin)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
	})

	t.Run("updates", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.store.EXPECT().
			UpdateProduct(mock.Anything, int64(4), mock.MatchedBy(func(p v1.ProductPatch) bool {
				return p.Name != nil && *p.Name == "New" && p.Category == nil
			})).
			Return(&v1.Product{ID: 4, Name: "New"}, nil).Once()

		w := f.do(t, http.MethodPatch, "/api/products/4", map[string]string{"name": "New"}, v1.RoleAdmin)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"name":"New"`)
	})
}

func TestHandler_DeleteProduct(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().DeleteProduct(mock.Anything, int64(7)).Return(&v1.Product{ID: 7}, nil).Once()
	f.store.EXPECT().DeleteProduct(mock.Anything, int64(8)).Return(nil, storage.ErrNotFound).Once()

	w := f.do(t, http.MethodDelete, "/api/products/7", nil, v1.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Product removed"}`, w.Body.String())

	w = f.do(t, http.MethodDelete, "/api/products/8", nil, v1.RoleAdmin)
	require.Equal(t, http.StatusNotFound, w.Code)
}
