package list

import (
	"fmt"
	"io"

	"github.com/smiranda/microunit/pkg/microunit/core"
)

type ListRegistrantsCmd struct{}

func (cmd *ListRegistrantsCmd) Run(suite core.SuiteContext, out io.Writer) error {
	log := suite.Logger()
	log.Info("Listing all registrants")

	for _, registrant := range suite.Registrants() {
		fmt.Fprintln(out, registrant.Name())
	}

	return nil
}
