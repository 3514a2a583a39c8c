package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL は管理者セッションの有効期間。期限切れのトークンは
// 未認証と同一に扱われる。
const SessionTTL = 24 * time.Hour

const adminSubject = "admin"

const minSecretLen = 32

// SessionSecretBytes は文字列からトークン署名用のバイト列を生成する（最低32バイト）
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// CreateSessionToken は有効期限付きの管理者トークンを発行する。
// 戻り値の time.Time はトークンの失効時刻。
func CreateSessionToken(secret []byte) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(SessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	return signed, exp, err
}

// VerifySessionToken はトークンを検証する。署名不正・期限切れはエラー
func VerifySessionToken(token string, secret []byte) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub != adminSubject {
		return errors.New("invalid subject")
	}
	return nil
}
