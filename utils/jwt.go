package utils

import (
    "errors"
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 token carrying the user id, valid for 7 days.
func GenerateJWT(userID uint) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "user_id": userID,
        "exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates a token string and returns the user id claim.
func ParseJWT(tokenString string) (uint, error) {
    secret := []byte(os.Getenv("JWT_SECRET"))
    if len(secret) == 0 {
        return 0, errors.New("JWT_SECRET not set")
    }

    token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return secret, nil
    })
    if err != nil || !token.Valid {
        return 0, errors.New("invalid token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return 0, errors.New("invalid claims")
    }

    id, ok := claims["user_id"].(float64)
    if !ok {
        return 0, errors.New("user_id claim missing")
    }
    return uint(id), nil
}
