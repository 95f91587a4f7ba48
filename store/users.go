package store

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"annotation-tool/models"
)

// ListExistingUsers находит файлы разметчиков и считает прогресс по каждому.
// Нечитаемые или битые файлы, а также файлы с недопустимым именем в список
// не попадают.
func (s *Store) ListExistingUsers() ([]models.UserProgress, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return []models.UserProgress{}, nil
	}
	if err != nil {
		return nil, errors.Annotatef(err, "scan %s", s.root)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	users := []models.UserProgress{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == s.templateName {
			continue
		}
		username, ok := UsernameFromFileName(name)
		if !ok {
			continue
		}
		if err := s.ValidateUsername(username); err != nil {
			s.logger.Debug("skipping user file with invalid name",
				zap.String("file", name),
				zap.Error(err))
			continue
		}

		path := filepath.Join(s.root, name)
		_, rows, found, err := readTable(path)
		if err != nil || !found {
			s.logger.Debug("skipping unreadable user file",
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		progress := models.UserProgress{Username: username, Total: len(rows)}
		for _, row := range rows {
			if row.Value(models.CompletionField) != "" {
				progress.Completed++
			}
		}
		users = append(users, progress)
	}
	return users, nil
}
