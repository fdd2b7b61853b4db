package devops

// Group is an open `##[group]` block. Groups function as a stack.
type Group struct {
	printer *Printer
}

// Opens a new group and adds it to the stack.
func (p *Printer) OpenGroup(name string) *Group {
	newGroup := &Group{printer: p}
	p.groups = append(p.groups, newGroup)
	p.printf("##[group]%s\n", name)
	return newGroup
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	p := g.printer
	index := len(p.groups) - 1
	for index >= 0 {
		// Pop the last group from the stack
		last := p.groups[index]
		p.groups = p.groups[:index]
		p.printf("##[endgroup]\n")
		if last == g {
			break
		}
		index--
	}
}
