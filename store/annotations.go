package store

import (
	"go.uber.org/zap"

	"annotation-tool/models"
)

// CreateUserFile создаёт файл разметчика из шаблона, если его ещё нет.
// Возвращает false, если файл уже существовал.
func (s *Store) CreateUserFile(username string) (bool, error) {
	created, _, err := s.InitUserFile(username)
	return created, err
}

// InitUserFile - то же, что CreateUserFile, но также возвращает число
// записанных строк.
func (s *Store) InitUserFile(username string) (created bool, rowsWritten int, err error) {
	path, err := s.UserPath(username)
	if err != nil {
		return false, 0, err
	}
	exists, err := fileExists(path)
	if err != nil {
		return false, 0, err
	}
	if exists {
		return false, 0, nil
	}

	header, rows, found, err := s.loadTemplateTable()
	if err != nil {
		return false, 0, err
	}
	if !found {
		// Без шаблона файл не создаётся
		s.logger.Warn("template not found, user file not written",
			zap.String("template", s.TemplatePath()),
			zap.String("username", username))
		return true, 0, nil
	}

	annotationColumns := models.AnnotationColumns()
	columns := make([]string, 0, len(header)+len(annotationColumns))
	columns = append(columns, header...)
	columns = append(columns, annotationColumns...)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, 0, len(columns))
		for _, column := range header {
			record = append(record, row.Value(column))
		}
		// annotator_id и пустые поля разметки
		record = append(record, username)
		for range models.AnnotationFields {
			record = append(record, "")
		}
		records = append(records, record)
	}

	if err := writeTable(path, columns, records); err != nil {
		return false, 0, err
	}
	s.logger.Info("user file created",
		zap.String("username", username),
		zap.String("path", path),
		zap.Int("rows", len(records)))
	return true, len(records), nil
}

// LoadUserAnnotations читает файл разметчика. Аннотации собираются только
// для строк с непустым rowid и хотя бы одним заполненным полем схемы.
func (s *Store) LoadUserAnnotations(username string) (models.UserAnnotations, error) {
	result := models.UserAnnotations{
		Data:        []models.Row{},
		Annotations: map[string]models.Annotation{},
	}

	path, err := s.UserPath(username)
	if err != nil {
		return result, err
	}
	_, rows, found, err := readTable(path)
	if err != nil {
		return result, err
	}
	if !found {
		return result, nil
	}

	result.Exists = true
	result.Data = rows
	for _, row := range rows {
		rowID := row.RowID()
		if rowID == "" {
			continue
		}
		if ann := models.AnnotationFromRow(row); len(ann) > 0 {
			result.Annotations[rowID] = ann
		}
	}
	return result, nil
}

// SaveUserAnnotations полностью перезаписывает файл разметчика. Набор и
// порядок строк задаёт только data: аннотации для rowid, которых нет в data,
// отбрасываются.
func (s *Store) SaveUserAnnotations(username string, data []models.Row, annotations map[string]models.Annotation) error {
	path, err := s.UserPath(username)
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(data))
	for _, item := range data {
		record := make([]string, 0, len(models.BaseColumns)+1+len(models.AnnotationFields))
		for _, column := range models.BaseColumns {
			record = append(record, item.Value(column))
		}
		record = append(record, username)

		ann := annotations[item.RowID()]
		for _, field := range models.AnnotationFields {
			record = append(record, ann.Field(field))
		}
		records = append(records, record)
	}

	if err := writeTable(path, models.UserFileColumns(), records); err != nil {
		return err
	}
	s.logger.Info("annotations saved",
		zap.String("username", username),
		zap.String("path", path),
		zap.Int("rows", len(records)))
	return nil
}

// Progress считает сводку, которую даст файл после сохранения data и annotations.
func Progress(username string, data []models.Row, annotations map[string]models.Annotation) (progress models.UserProgress, annotated int) {
	progress.Username = username
	progress.Total = len(data)
	for _, item := range data {
		ann, ok := annotations[item.RowID()]
		if !ok {
			continue
		}
		if !ann.IsEmpty() {
			annotated++
		}
		if ann.Field(models.CompletionField) != "" {
			progress.Completed++
		}
	}
	return progress, annotated
}
