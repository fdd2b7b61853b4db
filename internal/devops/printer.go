// Package devops emits Azure DevOps pipeline logging commands.
package devops

import (
	"fmt"
	"io"
)

type Printer struct {
	out    io.Writer
	groups []*Group
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		groups: make([]*Group, 0),
	}
}

func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Printer) LogError(msg string, a ...any) {
	p.printf("##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func (p *Printer) LogWarning(msg string, a ...any) {
	p.printf("##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}
