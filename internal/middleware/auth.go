package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"clinic-backend/pkg/utils"
)

// AuthMiddleware menjaga route yang butuh dokter login.
// Format header harus "Authorization: Bearer <token>".
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(secret, parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Gagal memproses token", nil)
			c.Abort()
			return
		}

		// JWT parse angka sebagai float64, convert dulu ke uint64
		var doctorID uint64
		if val, ok := claims["doctor_id"].(float64); ok {
			doctorID = uint64(val)
		}
		c.Set("doctorID", doctorID)

		if email, ok := claims["email"].(string); ok {
			c.Set("doctorEmail", email)
		}

		c.Next()
	}
}
