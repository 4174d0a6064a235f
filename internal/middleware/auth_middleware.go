package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rhplus/internal/shared/apperror"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	KeyUserID     = "user_id"
	KeyEmployeeID = "employee_id"
	KeyCompanyID  = "company_id"
	KeyRole       = "role"
)

var (
	errMissingToken = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errInvalidClaim = apperror.New(apperror.CodeUnauthorized, "Invalid token claims", http.StatusUnauthorized)
)

// AuthMiddleware verifies the HS256 access token issued by the auth module and
// exposes its claims to handlers. Tokens are read from the Authorization
// header first and the access_token cookie second.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Abort(c, errMissingToken)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Abort(c, apperror.ErrTokenExpired)
				return
			}
			response.Abort(c, apperror.ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, errInvalidClaim)
			return
		}

		values := make(map[string]string, 3)
		for _, key := range []string{KeyUserID, KeyCompanyID, KeyEmployeeID} {
			v, ok := claims[key].(string)
			if !ok || v == "" {
				response.Abort(c, errInvalidClaim.WithDetails(map[string]string{key: "missing"}))
				return
			}
			values[key] = v
		}

		role, _ := claims[KeyRole].(string)

		c.Set(KeyUserID, values[KeyUserID])
		c.Set(KeyEmployeeID, values[KeyEmployeeID])
		c.Set(KeyCompanyID, values[KeyCompanyID])
		c.Set(KeyRole, role)

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", values[KeyUserID]),
			zap.String("company_id", values[KeyCompanyID]),
		)
		ctx = contextutil.WithUserID(ctx, values[KeyUserID])
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
