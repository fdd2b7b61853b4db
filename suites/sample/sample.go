// Package sample is a small suite showing how test cases are declared. Some
// of its test cases fail on purpose.
package sample

import (
	"github.com/smiranda/microunit/pkg/microunit"
)

// Double returns twice n.
func Double(n int) int {
	return 2 * n
}

// DoubleFlawed doubles n correctly only below 100.
func DoubleFlawed(n int) int {
	if n < 100 {
		return 2 * n
	}
	return 3 * n
}

type SampleUnits struct{}

func (s SampleUnits) Name() string {
	return "sample"
}

func (s SampleUnits) RegisterUnits(r microunit.UnitRegistrar) error {
	r.Unit("Test_Two_Plus_Two", s.twoPlusTwo)
	r.Unit("Test_Flawed_Two_Plus_Two", s.flawedTwoPlusTwo)
	r.Unit("Test_Double", s.double)
	r.Unit("Test_Double_Flawed", s.doubleFlawed)
	return nil
}

func (s SampleUnits) twoPlusTwo(tc microunit.TestCase) microunit.Result {
	return microunit.AssertTrue(2+2 == 4)
}

func (s SampleUnits) flawedTwoPlusTwo(tc microunit.TestCase) microunit.Result {
	return microunit.AssertTrue(2+2 == 5)
}

func (s SampleUnits) double(tc microunit.TestCase) microunit.Result {
	for i := 0; i < 1000; i++ {
		if Double(i) != 2*i {
			return microunit.Fail()
		}
	}

	return microunit.Pass()
}

// Fails partway through the loop, at the first value DoubleFlawed gets wrong.
func (s SampleUnits) doubleFlawed(tc microunit.TestCase) microunit.Result {
	for i := 0; i < 1000; i++ {
		if got := DoubleFlawed(i); got != 2*i {
			tc.Logger().Debugf("DoubleFlawed(%d) = %d", i, got)
			return microunit.Fail()
		}
	}

	return microunit.Pass()
}
