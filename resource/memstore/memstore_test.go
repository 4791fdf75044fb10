package memstore_test

import (
	"testing"

	"github.com/koldar/phdtester-go/resource/memstore"
	"github.com/koldar/phdtester-go/resource/resourcetest"
)

func TestStore_Contract(t *testing.T) {
	resourcetest.Run(t, memstore.New())
}
