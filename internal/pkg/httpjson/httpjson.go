package httpjson

import (
	"encoding/json"
	"net/http"
	"unicode"
	"unicode/utf8"

	"tracking/internal/generated/dto"
)

// Write отдаёт body как JSON с кодом status. Ошибку кодирования возвращает
// вызывающему: заголовки к этому моменту уже отправлены.
func Write(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// Error отдаёт тело ошибки {"success": false, "error": message}.
func Error(w http.ResponseWriter, status int, message string) error {
	return Write(w, status, dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// FromError отдаёт текст err с заглавной буквы: "Missing required fields: weight".
func FromError(w http.ResponseWriter, status int, err error) error {
	return Error(w, status, capitalize(err.Error()))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
