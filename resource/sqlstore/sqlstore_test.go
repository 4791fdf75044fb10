package sqlstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/resource/resourcetest"
	"github.com/koldar/phdtester-go/resource/sqlstore"
)

func TestStore_Contract(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "artifacts.db")
	store, err := sqlstore.Open(dsn)
	require.NoError(t, err)
	defer store.Close()
	resourcetest.Run(t, store)
}
