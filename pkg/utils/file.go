package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename mantém apenas letras ASCII, dígitos, ponto, hífen e sublinhado.
// Separadores de diretório viram sublinhado, então o resultado nunca sai do diretório de destino.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", " ")
	name = strings.ReplaceAll(name, "\\", " ")
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// WriteFileAtomic grava em um arquivo temporário no mesmo diretório e renomeia sobre o destino.
// Leitores concorrentes veem o arquivo antigo ou o novo, nunca um arquivo parcial.
func WriteFileAtomic(destination string, write func(w io.Writer) error) error {
	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}

	id, err := GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar nome temporário: %w", err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(destination), id))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("erro ao fechar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmpPath, destination); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("erro ao mover arquivo para %s: %w", destination, err)
	}

	return nil
}
