package testmgr

import "github.com/sirupsen/logrus"

// Manager keeps the test cases of one run, in execution order.
type Manager struct {
	log       *logrus.Logger
	testCases []*TestCase
}

func NewManager(log *logrus.Logger) *Manager {
	return &Manager{
		log:       log,
		testCases: make([]*TestCase, 0),
	}
}

func (m *Manager) NewTestCase(name string) *TestCase {
	tc := newTestCase(name, uint(len(m.testCases)), m.log)
	m.testCases = append(m.testCases, tc)
	return tc
}

func (m *Manager) TestCases() []*TestCase {
	return m.testCases
}

// Failures returns the names of the failed test cases, in execution order.
func (m *Manager) Failures() []string {
	failures := make([]string, 0)
	for _, tc := range m.testCases {
		if tc.Status().Failed() {
			failures = append(failures, tc.Name())
		}
	}
	return failures
}
