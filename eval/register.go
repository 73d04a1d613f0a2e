package eval

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Evaluator{}
)

var ErrEvaluatorExists = errors.New("evaluator exists")

func Register(e Evaluator) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[e.String()]
	if present {
		return fmt.Errorf("%s: %w", e, ErrEvaluatorExists)
	}
	d[e.String()] = e
	return nil
}

func init() {
	Register(Identity())
}

// Lookup returns the evaluator registered under s, or nil.
func Lookup(s string) Evaluator {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Names returns the registered evaluator names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for n := range d {
		res = append(res, n)
	}
	sort.Strings(res)
	return res
}
