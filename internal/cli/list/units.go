package list

import (
	"fmt"
	"io"

	"github.com/smiranda/microunit/internal/catalog"
	"github.com/smiranda/microunit/pkg/microunit/core"
)

type ListUnitsCmd struct{}

func (cmd *ListUnitsCmd) Run(suite core.SuiteContext, out io.Writer) error {
	log := suite.Logger()
	log.Info("Listing test cases")

	cat, err := catalog.Build(log, suite.Registrants()...)
	if err != nil {
		return err
	}

	for _, name := range cat.Names() {
		fmt.Fprintln(out, name)
	}

	log.Infof("Listed %d test cases", cat.Len())
	return nil
}
