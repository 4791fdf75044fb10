package fsstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/resource/fsstore"
	"github.com/koldar/phdtester-go/resource/resourcetest"
)

func TestStore_Contract(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	resourcetest.Run(t, store)
}
