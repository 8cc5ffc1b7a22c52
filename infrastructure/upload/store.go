// Package upload guarda as imagens de produto enviadas pelo formulário
package upload

import (
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/vfg2006/sales-report/pkg/utils"
)

// Store grava arquivos em Dir e devolve a URL pública sob URLPrefix
type Store struct {
	Dir       string
	URLPrefix string
}

func NewStore(dir, urlPrefix string) *Store {
	return &Store{
		Dir:       dir,
		URLPrefix: urlPrefix,
	}
}

// Save grava o conteúdo com o nome sanitizado e retorna a URL do arquivo.
// Um envio com o mesmo nome substitui o anterior.
func (s *Store) Save(filename string, content io.Reader) (string, error) {
	name := utils.SanitizeFilename(filepath.Base(filename))
	if name == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return "", fmt.Errorf("erro ao gerar nome do upload: %w", err)
		}
		name = "upload_" + id
	}

	destination := filepath.Join(s.Dir, name)
	err := utils.WriteFileAtomic(destination, func(w io.Writer) error {
		_, err := io.Copy(w, content)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("erro ao gravar upload %s: %w", name, err)
	}

	return path.Join(s.URLPrefix, name), nil
}
