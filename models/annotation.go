package models

const (
	RowIDColumn     = "rowid"
	AnnotatorColumn = "annotator_id"

	// CompletionField - по нему считается, что строка размечена.
	CompletionField = "emotion_anxiety_likert"
)

// BaseColumns - колонки содержимого, которые пишутся при сохранении.
var BaseColumns = []string{RowIDColumn, "ResponseId", "statement", "agree", "X_describe"}

// AnnotationFields - фиксированная схема разметки, порядок колонок в файле.
var AnnotationFields = []string{
	"skip_reason",
	"emotion_anxiety_likert",
	"emotion_anger_likert",
	"emotion_sadness_likert",
	"emotion_joy_likert",
	"emotion_optimism_likert",
	"emotion_frustration_likert",
	"emotion_fear_likert",
	"emotion_hope_likert",
	"sentiment_categorical",
	"sentiment_likert",
	"mf_best",
	"mf_orientation",
	"political_guess",
}

var annotationFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AnnotationFields))
	for _, f := range AnnotationFields {
		set[f] = struct{}{}
	}
	return set
}()

func IsAnnotationField(name string) bool {
	_, ok := annotationFieldSet[name]
	return ok
}

// AnnotationColumns - annotator_id и затем поля схемы.
func AnnotationColumns() []string {
	return append([]string{AnnotatorColumn}, AnnotationFields...)
}

// UserFileColumns - заголовок файла при полном сохранении.
func UserFileColumns() []string {
	columns := make([]string, 0, len(BaseColumns)+1+len(AnnotationFields))
	columns = append(columns, BaseColumns...)
	return append(columns, AnnotationColumns()...)
}

// Annotation - разметка одной строки. Пустая строка и отсутствие ключа равнозначны.
type Annotation map[string]string

// Field возвращает значение поля схемы; поля вне схемы игнорируются.
func (a Annotation) Field(name string) string {
	if !IsAnnotationField(name) {
		return ""
	}
	return a[name]
}

// Compact оставляет только непустые поля схемы.
func (a Annotation) Compact() Annotation {
	out := Annotation{}
	for _, f := range AnnotationFields {
		if v := a[f]; v != "" {
			out[f] = v
		}
	}
	return out
}

func (a Annotation) IsEmpty() bool {
	return len(a.Compact()) == 0
}

// AnnotationFromRow извлекает непустые поля схемы из строки файла.
func AnnotationFromRow(row Row) Annotation {
	ann := Annotation{}
	for _, f := range AnnotationFields {
		if v := row.Value(f); v != "" {
			ann[f] = v
		}
	}
	return ann
}

func (a *Annotation) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}
	ann := make(Annotation, len(raw))
	for k, v := range raw {
		ann[k] = StringValue(v)
	}
	*a = ann
	return nil
}
