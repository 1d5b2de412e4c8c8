// Package explain renders a LogicalPlan tree for human inspection,
// grounded on the teacher's use of k0kubun/pp for ad-hoc struct dumping
// during development (carried in go.mod as an indirect dependency there;
// given a direct job here since the planning core has no wire format of
// its own to eyeball a plan through).
package explain

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pp"

	"github.com/kipsql-go/kipsql/planner"
	"github.com/kipsql-go/kipsql/planner/operator"
)

// Tree renders plan as an indented operator tree, one line per node, with
// every scalar field of the operator pretty-printed via pp.Sprint so
// nested expression/slice values stay readable without a bespoke
// formatter per operator variant.
func Tree(plan *planner.LogicalPlan) string {
	var b strings.Builder
	writeNode(&b, plan, 0)
	return b.String()
}

func writeNode(b *strings.Builder, plan *planner.LogicalPlan, depth int) {
	if plan == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s %s\n", indent, operatorName(plan.Operator), pp.Sprint(plan.Operator))
	for _, c := range plan.Children {
		writeNode(b, c, depth+1)
	}
}

func operatorName(op operator.Operator) string {
	switch op.(type) {
	case operator.Scan:
		return "Scan"
	case operator.Project:
		return "Project"
	case operator.Filter:
		return "Filter"
	case operator.Join:
		return "Join"
	case operator.Aggregate:
		return "Aggregate"
	case operator.Sort:
		return "Sort"
	case operator.Limit:
		return "Limit"
	case operator.Distinct:
		return "Distinct"
	case operator.Dummy:
		return "Dummy"
	default:
		return fmt.Sprintf("%T", op)
	}
}
