package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	storagemocks "github.com/acquisitions-lab/acquisitions/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(t *testing.T) (*gin.Engine, *storagemocks.UserStore, *TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := storagemocks.NewUserStore(t)
	tokens := NewTokenIssuer("auth-handler-secret", time.Hour)
	authn := NewAuthenticator(tokens, "token")
	h := NewHandler(NewService(users, tokens), authn, CookieOptions{Name: "token", Secure: true, MaxAge: time.Hour})

	r := gin.New()
	h.RegisterRoutes(r)
	return r, users, tokens
}

func postJSON(t *testing.T, r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatalf("no token cookie in response")
	return nil
}

func TestSignUp(t *testing.T) {
	r, users, tokens := newAuthEngine(t)
	now := time.Now()

	users.EXPECT().GetUserByEmail(mock.Anything, "ada@example.com").Return(nil, storage.ErrNotFound).Once()
	users.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(u *v1.NewUser) bool {
			return u.Name == "Ada" && u.Role == v1.RoleUser && ComparePassword(u.PasswordHash, "secret1") == nil
		})).
		Return(&v1.User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: v1.RoleUser, CreatedAt: now, UpdatedAt: now}, nil).Once()

	w := postJSON(t, r, "/api/auth/sign-up", map[string]string{"name": "  Ada  ", "email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"message":"User signed up successfully","user":{"id":1,"name":"Ada","email":"ada@example.com","role":"user"}}`, w.Body.String())

	cookie := tokenCookie(t, w)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Equal(t, 3600, cookie.MaxAge)

	claims, err := tokens.Parse(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.ID)
}

func TestSignUp_Conflict(t *testing.T) {
	r, users, _ := newAuthEngine(t)
	users.EXPECT().GetUserByEmail(mock.Anything, "ada@example.com").Return(&v1.User{ID: 1}, nil).Once()

	w := postJSON(t, r, "/api/auth/sign-up", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())
}

func TestSignUp_InvalidInput(t *testing.T) {
	r, _, _ := newAuthEngine(t)

	w := postJSON(t, r, "/api/auth/sign-up", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "123", "role": "root"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Invalid input", body.Error)
	require.Len(t, body.Details, 2)
	require.Equal(t, "password", body.Details[0].Field)
	require.Equal(t, "role", body.Details[1].Field)
}

func TestSignIn(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	stored := &v1.User{ID: 2, Name: "Bo", Email: "bo@example.com", PasswordHash: hash, Role: v1.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		r, users, _ := newAuthEngine(t)
		users.EXPECT().GetUserByEmail(mock.Anything, "bo@example.com").Return(stored, nil).Once()

		w := postJSON(t, r, "/api/auth/sign-in", map[string]string{"email": "bo@example.com", "password": "secret1"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"message":"User signed in successfully"`)
		require.NotContains(t, w.Body.String(), "password")
		require.NotEmpty(t, tokenCookie(t, w).Value)
	})

	t.Run("wrong password", func(t *testing.T) {
		r, users, _ := newAuthEngine(t)
		users.EXPECT().GetUserByEmail(mock.Anything, "bo@example.com").Return(stored, nil).Once()

		w := postJSON(t, r, "/api/auth/sign-in", map[string]string{"email": "bo@example.com", "password": "wrong12"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		r, users, _ := newAuthEngine(t)
		users.EXPECT().GetUserByEmail(mock.Anything, "nobody@example.com").Return(nil, storage.ErrNotFound).Once()

		w := postJSON(t, r, "/api/auth/sign-in", map[string]string{"email": "nobody@example.com", "password": "secret1"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSignOut_ClearsCookie(t *testing.T) {
	r, _, _ := newAuthEngine(t)

	w := postJSON(t, r, "/api/auth/sign-out", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"User signed out successfully"}`, w.Body.String())

	cookie := tokenCookie(t, w)
	require.Empty(t, cookie.Value)
	require.Less(t, cookie.MaxAge, 0)
}

func TestMe(t *testing.T) {
	r, users, tokens := newAuthEngine(t)
	user := &v1.User{ID: 5, Name: "Cy", Email: "cy@example.com", Role: v1.RoleUser}
	users.EXPECT().GetUserByID(mock.Anything, int64(5)).Return(user, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())

	token, err := tokens.Issue(user)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user":{"id":5,"name":"Cy","email":"cy@example.com","role":"user"}}`, w.Body.String())
}

func TestService_SignUpRace(t *testing.T) {
	users := storagemocks.NewUserStore(t)
	svc := NewService(users, NewTokenIssuer("s", time.Hour))

	users.EXPECT().GetUserByEmail(mock.Anything, "ada@example.com").Return(nil, storage.ErrNotFound).Once()
	users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicate).Once()

	_, _, err := svc.SignUp(context.Background(), SignUpInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrUserExists)
}
