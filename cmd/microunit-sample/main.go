package main

import (
	"github.com/smiranda/microunit/pkg/microunit"
	"github.com/smiranda/microunit/suites/sample"
)

func main() {
	suite := microunit.CreateSuite("sample")

	// Add sample test cases
	suite.AddUnits(sample.SampleUnits{})

	suite.Run()
}
