package harness

import (
	"fmt"

	"github.com/roach88/conclave/internal/param"
)

// evaluate checks a single assertion against the store.
// Uses Lookup so assertions never default-fill.
func evaluate(st *param.Store, a Assertion) error {
	switch a.Type {
	case AssertValue:
		v, ok := st.Lookup(a.Key)
		if !ok {
			return fmt.Errorf("key %q not found", a.Key)
		}
		if v != a.Value {
			return fmt.Errorf("key %q = %q, expected %q", a.Key, v, a.Value)
		}
	case AssertAbsent:
		if v, ok := st.Lookup(a.Key); ok {
			return fmt.Errorf("key %q present with %q, expected absent", a.Key, v)
		}
	case AssertCount:
		if n := st.Len(); n != a.Count {
			return fmt.Errorf("store has %d keys, expected %d", n, a.Count)
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
