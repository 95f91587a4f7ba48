package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotation-tool/models"
)

func TestListExistingUsersEmpty(t *testing.T) {
	s := newTestStore(t, templateCSV)

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)
}

func TestListExistingUsersCountsCompletionField(t *testing.T) {
	s := newTestStore(t, templateCSV)
	rows, _, err := s.LoadTemplate()
	require.NoError(t, err)

	require.NoError(t, s.SaveUserAnnotations("alice", rows, map[string]models.Annotation{
		"1": {"emotion_joy_likert": "4"},
	}))
	require.NoError(t, s.SaveUserAnnotations("bob", rows, map[string]models.Annotation{
		"1": {"emotion_anxiety_likert": "2"},
		"2": {"emotion_anxiety_likert": "5"},
	}))
	_, err = s.CreateUserFile("carol")
	require.NoError(t, err)

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Equal(t, []models.UserProgress{
		{Username: "alice", Completed: 0, Total: 2},
		{Username: "bob", Completed: 2, Total: 2},
		{Username: "carol", Completed: 0, Total: 2},
	}, users)
}

func TestListExistingUsersSkipsTemplateAndBrokenFiles(t *testing.T) {
	s := newTestStore(t, templateCSV)
	dir := s.Root()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("annotations_zed.csv", "rowid,emotion_anxiety_likert\n1,3\n2,\n")
	write("annotations_quote.csv", "rowid\n\"unterminated\n")
	write("annotations_.csv", "rowid\n1\n")
	write("annotations_John Doe.csv", "rowid,emotion_anxiety_likert\n1,3\n")
	write("notes.csv", "rowid\n1\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "annotations_folder.csv"), 0o755))

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Equal(t, []models.UserProgress{
		{Username: "zed", Completed: 1, Total: 2},
	}, users)
}

func TestListExistingUsersReadsRaggedFilesLikeLoad(t *testing.T) {
	s := newTestStore(t, templateCSV)
	path, err := s.UserPath("ragged")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("rowid,statement,emotion_anxiety_likert\n1,S1,4\n2\n3,S3,2,extra\n"), 0o644))

	loaded, err := s.LoadUserAnnotations("ragged")
	require.NoError(t, err)
	require.Len(t, loaded.Data, 3)

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Equal(t, []models.UserProgress{
		{Username: "ragged", Completed: 2, Total: 3},
	}, users)
}

func TestListExistingUsersWithGlobCharsInRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project [v2]")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultTemplateName), []byte(templateCSV), 0o644))

	s := New(dir)
	_, err := s.CreateUserFile("alice")
	require.NoError(t, err)

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Equal(t, []models.UserProgress{
		{Username: "alice", Completed: 0, Total: 2},
	}, users)
}

func TestListExistingUsersMissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))

	users, err := s.ListExistingUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListExistingUsersSortsByFileName(t *testing.T) {
	s := newTestStore(t, "")
	for _, name := range []string{"b", "B", "a_1", "a"} {
		require.NoError(t, s.SaveUserAnnotations(name, nil, nil))
	}

	users, err := s.ListExistingUsers()
	require.NoError(t, err)

	var names []string
	for _, u := range users {
		names = append(names, u.Username)
	}
	// "annotations_a.csv" < "annotations_a_1.csv": '.' < '_'
	assert.Equal(t, []string{"B", "a", "a_1", "b"}, names)
}
