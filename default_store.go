package kinship

import (
	"fmt"
	"os"
	"sync"

	"github.com/lesfleursdelanuitdev/kinship-infer/rules"
)

var (
	defaultStoreOnce sync.Once
	defaultStore     *rules.Store
	defaultStoreErr  error
)

// LoadDefaultStore reads path once per process and caches the result;
// concurrent callers block on the same load and observe the same
// *rules.Store and error. Subsequent calls, regardless of path,
// return the cached result — this is the explicit, thin convenience
// accessor around the process-wide immutable rule store, not a hidden
// global constructed at init time.
func LoadDefaultStore(path string) (*rules.Store, error) {
	defaultStoreOnce.Do(func() {
		f, err := os.Open(path)
		if err != nil {
			defaultStoreErr = fmt.Errorf("kinship: opening rule table %s: %w", path, err)
			return
		}
		defer f.Close()

		defaultStore, defaultStoreErr = rules.Load(f)
	})
	return defaultStore, defaultStoreErr
}
