package model

import "strings"

// ContentKind - эвристическая классификация текста буфера обмена
type ContentKind string

const (
	KindText     ContentKind = "text"
	KindURL      ContentKind = "url"
	KindCode     ContentKind = "code"
	KindFile     ContentKind = "file"
	KindPassword ContentKind = "password"
)

const passwordSpecials = "!@#$%^&*()-_=+[]{};:,.<>?/\\|`~"

// KindFromContent определяет тип содержимого по тексту.
// Порядок проверок важен: url раньше file, file раньше password.
func KindFromContent(content string) ContentKind {
	switch {
	case strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://"):
		return KindURL
	case strings.Contains(content, "func ") || strings.Contains(content, "struct {") || strings.Contains(content, "interface {"):
		return KindCode
	case strings.Contains(content, "/") && !strings.Contains(content, " ") && len(content) < 256:
		return KindFile
	case content != "" && len(content) < 50 && !strings.Contains(content, " ") && strings.ContainsAny(content, passwordSpecials):
		return KindPassword
	default:
		return KindText
	}
}
