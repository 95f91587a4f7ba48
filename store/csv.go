package store

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"

	"annotation-tool/models"
)

const utf8BOM = "\ufeff"

// readTable читает CSV с заголовком. found=false если файла нет.
func readTable(path string) (header []string, rows []models.Row, found bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, false, nil
		}
		return nil, nil, false, errors.Annotatef(err, "open %s", path)
	}
	defer f.Close()

	header, rows, err = parseTable(f)
	if err != nil {
		return nil, nil, true, errors.Annotatef(err, "parse %s", path)
	}
	return header, rows, true, nil
}

// parseTable разбирает CSV. Короткие записи дополняются пустыми значениями,
// лишние поля отбрасываются; ошибкой считается только нарушение синтаксиса.
func parseTable(r io.Reader) ([]string, []models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, []models.Row{}, nil
	}
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	rows := []models.Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Trace(err)
		}
		rows = append(rows, models.RowFromRecord(header, record))
	}
	return header, rows, nil
}

// writeTable полностью перезаписывает файл. Запись не атомарная.
func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "create %s", path)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return errors.Annotatef(err, "write %s", path)
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return errors.Annotatef(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Annotatef(err, "close %s", path)
	}
	return nil
}
