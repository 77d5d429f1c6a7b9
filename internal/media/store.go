package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store сохраняет прикрепленные к постам файлы и возвращает
// относительный путь, под которым файл доступен.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
}

// DiskStore пишет файлы на локальный диск под уникальными именами.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create media dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	// uuid в имени исключает перезапись при совпадении имен загрузок
	name := uuid.New().String() + filepath.Ext(filename)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("could not write media file: %w", err)
	}

	return name, nil
}
