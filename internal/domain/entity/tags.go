package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TagMap é um mapa chave/valor que preserva a ordem de inserção.
// Uma chave repetida mantém a posição original e recebe o último valor.
type TagMap struct {
	keys   []string
	values map[string]string
}

// NewTagMap cria um TagMap vazio.
func NewTagMap() TagMap {
	return TagMap{values: make(map[string]string)}
}

// Set grava o valor de uma chave (last write wins).
func (m *TagMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get retorna o valor de uma chave.
func (m TagMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys retorna as chaves em ordem de inserção.
func (m TagMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m TagMap) Len() int {
	return len(m.keys)
}

// String junta as tags no formato "k1=v1, k2=v2".
// Chaves ou valores contendo "=" ou ", " não são escapados.
func (m TagMap) String() string {
	if len(m.keys) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, k+"="+m.values[k])
	}
	return strings.Join(parts, ", ")
}

// ParseTagDisplay faz o caminho inverso de TagMap.String.
func ParseTagDisplay(s string) TagMap {
	m := NewTagMap()
	if s == "" {
		return m
	}
	for _, pair := range strings.Split(s, ", ") {
		k, v, _ := strings.Cut(pair, "=")
		m.Set(k, v)
	}
	return m
}

// MarshalJSON emite as tags como objeto JSON mantendo a ordem de inserção.
func (m TagMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
