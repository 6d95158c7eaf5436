// Package assistant отвечает на вопросы пользователей карты по упорядоченному списку правил.
package assistant

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyMessage возвращается для пустого сообщения
var ErrEmptyMessage = errors.New("assistant: empty message")

// Rule - пара (предикат, ответ). Предикат получает нормализованный текст.
type Rule struct {
	Name     string
	Match    func(text string) bool
	Response string
}

// Responder перебирает правила по порядку, срабатывает первое совпавшее
type Responder struct {
	rules    []Rule
	fallback string
}

// Reply - ответ ассистента с именем сработавшего правила
type Reply struct {
	Rule string `json:"rule"`
	Text string `json:"text"`
}

func NewResponder(rules []Rule, fallback string) *Responder {
	return &Responder{rules: rules, fallback: fallback}
}

// NewDefaultResponder создает ассистента со стандартным набором правил
func NewDefaultResponder() *Responder {
	return NewResponder(DefaultRules(), DefaultResponse)
}

// Reply подбирает ответ на сообщение пользователя
func (r *Responder) Reply(message string) (Reply, error) {
	text := Normalize(message)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	for _, rule := range r.rules {
		if rule.Match(text) {
			return Reply{Rule: rule.Name, Text: rule.Response}, nil
		}
	}
	return Reply{Rule: "default", Text: r.fallback}, nil
}

// Normalize приводит текст к нижнему регистру и убирает диакритику ("Clínica" -> "clinica")
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Contains - предикат "текст содержит ключевое слово"
func Contains(keyword string) func(string) bool {
	keyword = Normalize(keyword)
	return func(text string) bool {
		return strings.Contains(text, keyword)
	}
}
