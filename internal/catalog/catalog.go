// Package catalog holds the set of test cases registered for a run.
package catalog

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/pkg/microunit/core"
)

// ErrDuplicateName is returned when a test case name is registered twice.
// The first registration is retained.
var ErrDuplicateName = errors.New("duplicate test case name")

type Entry struct {
	Name     string
	Function core.TestFunction
}

// Catalog maps test case names to their functions, ordered by name. A
// catalog is filled during the registration phase and only read afterwards;
// it is not safe for concurrent registration.
type Catalog struct {
	log     *logrus.Logger
	entries []Entry
}

func New(log *logrus.Logger) *Catalog {
	return &Catalog{
		log:     log,
		entries: make([]Entry, 0),
	}
}

// Register adds a test case. It fails without modifying the catalog when the
// name is invalid or already taken, or when fn is nil.
func (c *Catalog) Register(name string, fn core.TestFunction) error {
	if err := core.ValidateEntityName(name, "test case"); err != nil {
		return err
	}

	if fn == nil {
		return errors.Errorf("test case '%s' has no function", name)
	}

	index, found := c.search(name)
	if found {
		return errors.Wrapf(ErrDuplicateName, "test case '%s' is already registered", name)
	}

	c.entries = slices.Insert(c.entries, index, Entry{Name: name, Function: fn})
	c.log.Debugf("Registered test case '%s'", name)
	return nil
}

// Entries returns all registered test cases sorted by name.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, entry := range c.entries {
		names[i] = entry.Name
	}
	return names
}

func (c *Catalog) Lookup(name string) (Entry, bool) {
	index, found := c.search(name)
	if !found {
		return Entry{}, false
	}
	return c.entries[index], true
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) search(name string) (int, bool) {
	return slices.BinarySearchFunc(c.entries, name, func(e Entry, target string) int {
		return strings.Compare(e.Name, target)
	})
}
