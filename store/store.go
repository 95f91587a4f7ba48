package store

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

const (
	FilePrefix          = "annotations_"
	FileSuffix          = ".csv"
	DefaultTemplateName = FilePrefix + "empty" + FileSuffix
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_-][\p{L}\p{N}._-]*$`)

// Store работает с шаблоном и файлами разметчиков в одном каталоге.
// Состояния между вызовами нет, всё лежит на диске.
type Store struct {
	root         string
	templateName string
	logger       *zap.Logger
}

type Option func(*Store)

func WithTemplateName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.templateName = name
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(root string, opts ...Option) *Store {
	s := &Store{
		root:         root,
		templateName: DefaultTemplateName,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) TemplatePath() string {
	return filepath.Join(s.root, s.templateName)
}

// FileName - имя файла разметчика: префикс + имя как есть + суффикс.
func FileName(username string) string {
	return FilePrefix + username + FileSuffix
}

// UsernameFromFileName восстанавливает имя разметчика; ok=false для чужих файлов.
func UsernameFromFileName(name string) (string, bool) {
	if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, FileSuffix) {
		return "", false
	}
	if len(name) < len(FilePrefix)+len(FileSuffix) {
		return "", false
	}
	username := name[len(FilePrefix) : len(name)-len(FileSuffix)]
	return username, username != ""
}

// ValidateUsername отклоняет пустые имена, имена вне безопасного набора символов
// и имя, совпадающее с файлом шаблона.
func (s *Store) ValidateUsername(username string) error {
	if username == "" {
		return errors.NotValidf("empty username")
	}
	if !usernamePattern.MatchString(username) {
		return errors.NotValidf("username %q", username)
	}
	if FileName(username) == s.templateName {
		return errors.NotValidf("reserved username %q", username)
	}
	return nil
}

// UserPath - путь к файлу разметчика.
func (s *Store) UserPath(username string) (string, error) {
	if err := s.ValidateUsername(username); err != nil {
		return "", err
	}
	return filepath.Join(s.root, FileName(username)), nil
}

func (s *Store) UserFileExists(username string) (bool, error) {
	path, err := s.UserPath(username)
	if err != nil {
		return false, err
	}
	return fileExists(path)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Annotatef(err, "stat %s", path)
}
