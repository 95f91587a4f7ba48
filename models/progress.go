package models

import "time"

// UserProgress - сводка по файлу одного разметчика.
type UserProgress struct {
	Username  string `json:"username"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// UserAnnotations - содержимое файла разметчика после загрузки.
type UserAnnotations struct {
	Data        []Row                 `json:"data"`
	Annotations map[string]Annotation `json:"annotations"`
	Exists      bool                  `json:"exists"`
}

const (
	ActionInit = "init"
	ActionSave = "save"
)

// SaveEvent - запись журнала активности.
type SaveEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"index"`
	Action    string    `json:"action"`
	Rows      int       `json:"rows"`
	Annotated int       `json:"annotated"`
	Completed int       `json:"completed"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
