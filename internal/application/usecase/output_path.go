package usecase

import (
	"path/filepath"
	"strings"
)

// DefaultReportFilename é usado quando o operador informa só um diretório.
const DefaultReportFilename = "aws-tag-inventory.xlsx"

// ResolveOutputPath trata a resposta do operador como arquivo quando termina em
// ".xlsx" (sem diferenciar maiúsculas) e como diretório caso contrário.
// Resposta vazia grava no diretório atual.
func ResolveOutputPath(answer string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return DefaultReportFilename
	}
	if strings.EqualFold(filepath.Ext(answer), ".xlsx") {
		return answer
	}
	return filepath.Join(answer, DefaultReportFilename)
}

// ReplaceExt troca a extensão do caminho, ex.: inventory.xlsx -> inventory.csv.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + strings.TrimPrefix(ext, ".")
}
