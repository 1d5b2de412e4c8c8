// Command kipsql demonstrates the planning core end to end: it loads a
// catalog fixture, builds an AST by hand for a query the real SQL parser
// would otherwise produce, binds it, and runs the column-pruning
// heuristic batch over the bound plan.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/kipsql-go/kipsql/ast"
	"github.com/kipsql-go/kipsql/binder"
	"github.com/kipsql-go/kipsql/catalog/memcatalog"
	"github.com/kipsql-go/kipsql/config"
	"github.com/kipsql-go/kipsql/logger"
	"github.com/kipsql-go/kipsql/optimizer/heuristic"
	"github.com/kipsql-go/kipsql/optimizer/rule"
	"github.com/kipsql-go/kipsql/planner/explain"
)

const fixture = `
[[table]]
name = "orders"
  [[table.column]]
  name = "id"
  type = "bigint"
  primary = true
  [[table.column]]
  name = "customer_id"
  type = "bigint"
  [[table.column]]
  name = "total"
  type = "decimal"
  [[table.column]]
  name = "status"
  type = "varchar"
`

// demoQuery builds the AST for:
//
//	SELECT customer_id, SUM(total) AS revenue
//	FROM orders
//	WHERE status = 'paid'
//	GROUP BY customer_id
//	ORDER BY revenue
//	LIMIT 10
func demoQuery() *ast.Query {
	asc := true
	return &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{
				ast.UnnamedExpr{Expr: ast.Identifier{Name: "customer_id"}},
				ast.ExprWithAlias{
					Expr:  ast.Function{Name: "SUM", Args: []ast.Expr{ast.Identifier{Name: "total"}}},
					Alias: "revenue",
				},
			},
			From: []ast.TableWithJoins{{Relation: ast.TableFactor{Name: ast.ObjectName{"orders"}}}},
			Selection: ast.BinaryOp{
				Left:  ast.Identifier{Name: "status"},
				Op:    "=",
				Right: ast.Value{Kind: ast.StringValue, Raw: "paid"},
			},
			GroupBy: []ast.Expr{ast.Identifier{Name: "customer_id"}},
		},
		OrderBy: []ast.OrderByExpr{{Expr: ast.Identifier{Name: "revenue"}, Asc: &asc}},
		Limit:   ast.Value{Kind: ast.NumberValue, Raw: "10"},
	}
}

func main() {
	var configPath string
	var logLevel string
	flag.StringVar(&configPath, "config", "", "path to a planner config TOML document")
	flag.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	flag.Parse()

	if err := logger.Init(logger.Config{LogLevel: logLevel}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	plannerCfg := config.DefaultPlannerConfig()
	if configPath != "" {
		doc, err := os.ReadFile(configPath)
		if err != nil {
			logger.Errorf("reading planner config %s: %v", configPath, err)
			os.Exit(1)
		}
		plannerCfg, err = config.Load(doc)
		if err != nil {
			logger.Errorf("parsing planner config %s: %v", configPath, err)
			os.Exit(1)
		}
	}

	storage := memcatalog.New()
	if err := storage.LoadTOML([]byte(fixture)); err != nil {
		logger.Errorf("loading catalog fixture: %v", err)
		os.Exit(1)
	}

	logger.Info("binding demo query")
	plan, err := binder.New(storage).BindQuery(context.Background(), demoQuery())
	if err != nil {
		logger.Errorf("bind failed: %v", err)
		os.Exit(1)
	}

	logger.Info("bound plan:")
	os.Stdout.WriteString(explain.Tree(plan))

	optimizer := heuristic.NewHepOptimizer(plan)
	for _, b := range plannerCfg.Batches {
		optimizer.Batch(rule.DefaultBatch(b.Strategy))
	}
	optimized := optimizer.FindBest()

	logger.Info("optimized plan:")
	os.Stdout.WriteString(explain.Tree(optimized))
}
