package database

import (
	"time"

	"github.com/juju/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"annotation-tool/models"
)

const DefaultLimit = 50

// Journal - журнал сохранений в sqlite. Файлы разметки остаются единственным
// источником данных, журнал только фиксирует события.
type Journal struct {
	db  *gorm.DB
	now func() time.Time
}

// Open открывает базу журнала и создаёт таблицу при необходимости.
func Open(path string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Annotatef(err, "open journal %s", path)
	}

	if err := db.AutoMigrate(&models.SaveEvent{}); err != nil {
		return nil, errors.Annotate(err, "migrate journal")
	}

	return &Journal{db: db, now: time.Now}, nil
}

func (j *Journal) Record(event models.SaveEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = j.now().UTC()
	}
	return errors.Trace(j.db.Create(&event).Error)
}

// Recent возвращает последние события, новые первыми. Пустой username - все разметчики.
func (j *Journal) Recent(username string, limit int) ([]models.SaveEvent, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := j.db.Model(&models.SaveEvent{})

	// Фильтр по разметчику
	if username != "" {
		query = query.Where("username = ?", username)
	}

	var events []models.SaveEvent
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, errors.Trace(err)
	}
	return events, nil
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return errors.Trace(err)
	}
	return sqlDB.Close()
}
