package helper

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// TokenLifetime bounds how long a claims snapshot stays valid. Profile
// fields inside the token go stale until the next login or profile update
// re-issues it; the token is a snapshot, not a live reference.
const TokenLifetime = 72 * time.Hour

type TokenClaims struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	jwt.RegisteredClaims
}

func (c TokenClaims) UserID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Subject)
}

// GenerateToken signs an HS256 token carrying a snapshot of the user's
// profile fields, valid for TokenLifetime.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}
