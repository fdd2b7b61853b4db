package list

type ListCmd struct {
	Units       ListUnitsCmd       `cmd:"" default:"1" help:"List test case names in run order"`
	Registrants ListRegistrantsCmd `cmd:"" help:"List the registrants added to the suite"`
}
