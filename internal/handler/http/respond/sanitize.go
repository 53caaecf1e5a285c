package respond

import (
	"regexp"
)

var (
	// Bearer トークンパターン（Authorization ヘッダー経由でエラー文字列に混入することがある）
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/-]+=*`)

	// JWT 本体パターン（三分割の base64url）
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// MaskSecrets は機密情報をマスクしたエラーメッセージを返す
func MaskSecrets(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// トークンのマスク（順序重要: より具体的なパターンから適用）
	msg = jwtPattern.ReplaceAllString(msg, "eyJ****")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
