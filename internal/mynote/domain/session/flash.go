package session

import (
	"fmt"
	"regexp"
	"strings"
)

// FlashKind - вид flash-сообщения.
type FlashKind string

// Виды flash-сообщений.
const (
	FlashInfo    FlashKind = "info"
	FlashError   FlashKind = "error"
	FlashSuccess FlashKind = "success"
)

// FlashLineWidth - максимальная длина строки сообщения в символах.
const FlashLineWidth = 15

// Flash - одноразовое сообщение для пользователя.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Content string    `json:"content"`
}

// Lines возвращает строки сообщения.
func (f *Flash) Lines() []string {
	if f == nil || f.Content == "" {
		return nil
	}
	return strings.Split(f.Content, "\n")
}

var flashChunk = regexp.MustCompile(fmt.Sprintf(`.{1,%d}`, FlashLineWidth))

// SetFlash сохраняет сообщение, разбитое на строки по FlashLineWidth символов.
// Пока предыдущее сообщение не прочитано, новое отбрасывается.
func SetFlash(s *Session, kind FlashKind, message string) {
	if s.Flash != nil {
		return
	}
	s.Flash = &Flash{
		Kind:    kind,
		Content: wrap(message),
	}
	s.dirty = true
}

// TakeFlash возвращает ожидающее сообщение и удаляет его из сессии.
// Повторный вызов возвращает nil.
func TakeFlash(s *Session) *Flash {
	if s == nil || s.Flash == nil {
		return nil
	}
	flash := s.Flash
	s.Flash = nil
	s.dirty = true
	return flash
}

// wrap разбивает строку на куски не длиннее FlashLineWidth символов.
// Переводы строк в исходном сообщении отбрасываются.
func wrap(message string) string {
	return strings.Join(flashChunk.FindAllString(message, -1), "\n")
}
