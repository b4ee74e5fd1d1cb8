package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/core/store"
)

const (
	ProfileCookie = "studio_profile"
	ProfileHeader = "X-Studio-Profile"

	profileTTL      = 365 * 24 * time.Hour
	profileAudience = "studio:profile"
)

// ContextKeyProfile holds the profile id in the echo context.
const ContextKeyProfile = "profile_id"

// IssueProfileToken signs a profile token for id.
func IssueProfileToken(secret, id string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		Audience:  jwt.ClaimStrings{profileAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(profileTTL)),
	})
	return t.SignedString([]byte(secret))
}

func parseProfileToken(secret, raw string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithAudience(profileAudience))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// Profile identifies the browser profile behind a request. The signed token
// is read from the X-Studio-Profile header or the studio_profile cookie; a
// fresh profile is issued when neither holds a valid token. Session and
// theme keys are scoped to the profile through the request context.
func Profile(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(ProfileHeader)
			if raw == "" {
				if ck, err := c.Cookie(ProfileCookie); err == nil {
					raw = ck.Value
				}
			}

			id, ok := parseProfileToken(secret, raw)
			if !ok {
				id = uuid.NewString()
				token, err := IssueProfileToken(secret, id)
				if err != nil {
					return err
				}
				c.SetCookie(&http.Cookie{
					Name:     ProfileCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(profileTTL),
				})
				c.Response().Header().Set(ProfileHeader, token)
			}

			c.Set(ContextKeyProfile, id)
			req := c.Request()
			c.SetRequest(req.WithContext(store.WithProfile(req.Context(), id)))
			return next(c)
		}
	}
}
