package report

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryKinds(t *testing.T) {
	assert.Subset(t, Kinds(), []Kind{Inventory, Sales})

	c, err := Lookup(" Sales ")
	require.NoError(t, err)
	assert.Equal(t, Sales, c.CreateReport().Kind())
}

func TestLookupUnknownKind(t *testing.T) {
	c, err := NewDefaultRegistry().Lookup("payroll")
	assert.Nil(t, c)
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), `"payroll" (supported: inventory, sales)`)
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("Audit", SalesCreator{}))
	assert.Equal(t, []Kind{"audit"}, r.Kinds())

	assert.ErrorContains(t, r.Register("audit", SalesCreator{}), "already registered")
	assert.ErrorContains(t, r.Register("  ", SalesCreator{}), "cannot be empty")
	assert.ErrorContains(t, r.Register("ledger", nil), "creator cannot be nil")
}

func TestRegisterOnDefaultRegistry(t *testing.T) {
	original := defaultRegistry
	defaultRegistry = NewDefaultRegistry()
	t.Cleanup(func() { defaultRegistry = original })

	require.NoError(t, Register("returns", CreatorFunc(func() Document { return NewSalesReport() })))

	c, err := Lookup("returns")
	require.NoError(t, err)
	assert.NotNil(t, c.CreateReport())
	assert.Contains(t, Kinds(), "returns")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewDefaultRegistry()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(string(rune('a'+i)), InventoryCreator{})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Lookup(Sales)
			_ = r.Kinds()
		}()
	}
	wg.Wait()

	assert.Len(t, r.Kinds(), 12)
}
