package store

import (
	"annotation-tool/models"
)

// LoadTemplate читает общий шаблон. Отсутствие файла - не ошибка: пустой
// список и count 0. Порядок строк и колонок сохраняется.
func (s *Store) LoadTemplate() ([]models.Row, int, error) {
	_, rows, found, err := s.loadTemplateTable()
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return []models.Row{}, 0, nil
	}
	return rows, len(rows), nil
}

func (s *Store) loadTemplateTable() ([]string, []models.Row, bool, error) {
	return readTable(s.TemplatePath())
}
