package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financely/financely/internal/snapshot"
)

func stageChaseExport(t *testing.T, dir string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "importer", "testdata", "chase_checking.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "Chase_Checking.csv"), data, 0o644))
}

func TestImport_Chase(t *testing.T) {
	dir := initWorkspace(t)
	stageChaseExport(t, dir)

	out, _, err := runFinancely(t, "import", "--dir", dir, "--format", "chase")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 6 transactions from Chase_Checking.csv")

	// Normalized copy lands in transactions/.
	_, err = os.Stat(filepath.Join(dir, "transactions", "chase_checking.csv"))
	require.NoError(t, err)

	// Original moved to processed.
	_, err = os.Stat(filepath.Join(dir, "import", "Chase_Checking.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "Chase_Checking.csv"))
	require.NoError(t, err)

	// The workspace snapshot now includes the imported rows.
	snap, err := snapshot.LoadWorkspace(dir)
	require.NoError(t, err)
	assert.Len(t, snap.Transactions, 3+6)
}

func TestImport_ReportSeesImportedRows(t *testing.T) {
	dir := initWorkspace(t)
	stageChaseExport(t, dir)
	_, _, err := runFinancely(t, "import", "--dir", dir, "--format", "chase")
	require.NoError(t, err)

	out, _, err := runFinancely(t, "report", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Transactions:  9")
	assert.Contains(t, out, "Income:        ₹53,500")
}

func TestImport_NothingToImport(t *testing.T) {
	dir := initWorkspace(t)

	out, _, err := runFinancely(t, "import", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to import")
}

func TestImport_UnknownFormat(t *testing.T) {
	dir := initWorkspace(t)

	_, _, err := runFinancely(t, "import", "--dir", dir, "--format", "mint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: chase, financely")
}

func TestImport_WrongFormatLeavesFileInPlace(t *testing.T) {
	dir := initWorkspace(t)
	stageChaseExport(t, dir)

	_, _, err := runFinancely(t, "import", "--dir", dir, "--format", "financely")
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "import", "Chase_Checking.csv"))
	assert.NoError(t, err, "unparsed file stays in import/")
}

func TestImport_RefusesOverwrite(t *testing.T) {
	dir := initWorkspace(t)
	stageChaseExport(t, dir)
	_, _, err := runFinancely(t, "import", "--dir", dir, "--format", "chase")
	require.NoError(t, err)

	stageChaseExport(t, dir)
	_, _, err = runFinancely(t, "import", "--dir", dir, "--format", "chase")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already imported")
}
