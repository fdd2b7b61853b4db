package catalog

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/pkg/microunit/core"
)

// RegistrationError aggregates every problem found while collecting test
// cases from registrants.
type RegistrationError struct {
	Errs []error
}

func (e *RegistrationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "failed to register test cases: " + strings.Join(msgs, "; ")
}

func (e *RegistrationError) Unwrap() []error {
	return e.Errs
}

type unit struct {
	name string
	fn   core.TestFunction
}

type unitCollector struct {
	units []unit
}

// Unit implements core.UnitRegistrar.
func (c *unitCollector) Unit(name string, fn core.TestFunction) {
	c.units = append(c.units, unit{name: name, fn: fn})
}

// Collect runs the registration phase: every registrant declares its test
// cases, which are then inserted into the catalog. Registration continues
// past errors so that all of them are reported at once; any error leaves the
// offending test case out of the catalog.
func (c *Catalog) Collect(registrants ...core.UnitRegistrant) error {
	var errs []error

	for _, registrant := range registrants {
		collector := unitCollector{units: make([]unit, 0)}

		if err := registrant.RegisterUnits(&collector); err != nil {
			errs = append(errs, errors.Wrapf(err, "registrant '%s'", registrant.Name()))
			continue
		}

		c.log.Debugf("Collected %d test cases from '%s'", len(collector.units), registrant.Name())

		for _, u := range collector.units {
			if err := c.Register(u.name, u.fn); err != nil {
				errs = append(errs, errors.Wrapf(err, "registrant '%s'", registrant.Name()))
			}
		}
	}

	if len(errs) > 0 {
		return &RegistrationError{Errs: errs}
	}

	return nil
}

// IsRegistrationError reports whether err came from the registration phase.
func IsRegistrationError(err error) bool {
	var regErr *RegistrationError
	return errors.As(err, &regErr)
}

// Build creates a catalog and runs the registration phase for registrants.
func Build(log *logrus.Logger, registrants ...core.UnitRegistrant) (*Catalog, error) {
	c := New(log)
	if err := c.Collect(registrants...); err != nil {
		return nil, err
	}

	log.Debugf("Catalog holds %d test cases", c.Len())
	return c, nil
}
