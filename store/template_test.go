package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplateMissing(t *testing.T) {
	s := newTestStore(t, "")

	rows, count, err := s.LoadTemplate()
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
	assert.Equal(t, 0, count)
}

func TestLoadTemplatePreservesOrder(t *testing.T) {
	s := newTestStore(t, templateCSV)

	rows, count, err := s.LoadTemplate()
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"rowid", "ResponseId", "statement", "agree", "X_describe"}, rows[0].Columns())
	assert.Equal(t, "1", rows[0].RowID())
	assert.Equal(t, "2", rows[1].RowID())
	assert.Equal(t, "Statement, with comma", rows[1].Value("statement"))
	assert.Equal(t, "", rows[0].Value("X_describe"))
}

func TestLoadTemplateHeaderOnly(t *testing.T) {
	s := newTestStore(t, "rowid,ResponseId,statement,agree,X_describe\n")

	rows, count, err := s.LoadTemplate()
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, count)
}

func TestLoadTemplateLenientRecords(t *testing.T) {
	s := newTestStore(t, "\ufeffrowid,statement,agree\n1,short\n2,b,c,extra\n")

	rows, _, err := s.LoadTemplate()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"rowid", "statement", "agree"}, rows[0].Columns())
	assert.Equal(t, "", rows[0].Value("agree"))
	assert.Equal(t, "c", rows[1].Value("agree"))
	assert.Equal(t, 3, rows[1].Len())
}

func TestLoadTemplateColumnOrderNotAlphabetical(t *testing.T) {
	s := newTestStore(t, "statement,zeta,rowid,alpha\nS,z,7,a\n")

	rows, _, err := s.LoadTemplate()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"statement", "zeta", "rowid", "alpha"}, rows[0].Columns())

	b, err := rows[0].MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"statement":"S","zeta":"z","rowid":"7","alpha":"a"}`, string(b))
}

func TestLoadTemplateDoesNotModifyFile(t *testing.T) {
	s := newTestStore(t, templateCSV)

	_, err := s.CreateUserFile("alice")
	require.NoError(t, err)

	b, err := os.ReadFile(s.TemplatePath())
	require.NoError(t, err)
	assert.Equal(t, templateCSV, string(b))
}
