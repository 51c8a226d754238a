package render

import "github.com/pagedraw/pagedraw/draw"

type formKey struct {
	scope string
	name  string
}

// FormCache memoizes expanded form XObjects for the lifetime of one
// interpreter. Entries are keyed by the (scope, name) pair, so the same
// name bound to different forms in different scopes never collides.
//
// Cached command lists are shared: callers copy them into their output and
// must not mutate them in place.
type FormCache struct {
	entries    map[formKey][]draw.Command
	expansions int
}

func NewFormCache() *FormCache {
	return &FormCache{entries: make(map[formKey][]draw.Command)}
}

func (c *FormCache) Get(scope, name string) ([]draw.Command, bool) {
	cmds, ok := c.entries[formKey{scope, name}]
	return cmds, ok
}

// Put stores one freshly expanded form and counts the expansion.
func (c *FormCache) Put(scope, name string, cmds []draw.Command) {
	c.entries[formKey{scope, name}] = cmds
	c.expansions++
}

// Expansions reports how many forms were actually expanded, as opposed to
// served from cache. A form referenced twice in one scope counts once.
func (c *FormCache) Expansions() int { return c.expansions }
