package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sarpras/borrowing-service/pkg/auth"
	md "github.com/sarpras/borrowing-service/pkg/middleware"
)

func signToken(t *testing.T, profile auth.Profile, expiresAt time.Time) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Profile: profile,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)
	return token
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()

	profile := auth.Profile{UserID: 2, Username: "Peminjam", Role: auth.RoleBorrower}

	var tests = []struct {
		name          string
		authorization string
		expectedCode  int
		expectedActor *auth.Actor
	}{
		{
			name:          "ok",
			authorization: "Bearer " + signToken(t, profile, time.Now().Add(time.Hour)),
			expectedCode:  http.StatusOK,
			expectedActor: &auth.Actor{ID: 2, Name: "Peminjam", Role: auth.RoleBorrower},
		},
		{
			name:          "err. no header",
			authorization: "",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. not bearer",
			authorization: "Basic dXNlcjpwYXNz",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. garbage token",
			authorization: "Bearer not.a.token",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "err. expired",
			authorization: "Bearer " + signToken(t, profile, time.Now().Add(-time.Hour)),
			expectedCode:  http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/probe", func(c echo.Context) error {
				actor, err := auth.ActorFromContext(c.Request().Context())
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				require.NotNil(t, tt.expectedActor)
				require.Equal(t, *tt.expectedActor, actor)
				return c.NoContent(http.StatusOK)
			}, md.JwtAuthentication)

			r := httptest.NewRequest(http.MethodGet, "/probe", http.NoBody)
			if tt.authorization != "" {
				r.Header.Set(md.AuthorizationHeader, tt.authorization)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
