package memcatalog

import (
	"github.com/pelletier/go-toml"

	"github.com/kipsql-go/kipsql/catalog"
	"github.com/kipsql-go/kipsql/types"
)

// tableFixture and columnFixture mirror the shape of a TOML catalog
// fixture, e.g.:
//
//	[[table]]
//	name = "t1"
//	  [[table.column]]
//	  name = "c1"
//	  type = "integer"
//	  primary = true
type tableFixture struct {
	Name    string           `toml:"name"`
	Columns []columnFixture  `toml:"column"`
}

type columnFixture struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Nullable bool   `toml:"nullable"`
	Primary  bool   `toml:"primary"`
}

var typeByName = map[string]types.LogicalType{
	"boolean":  types.Boolean,
	"tinyint":  types.Tinyint,
	"smallint": types.Smallint,
	"integer":  types.Integer,
	"bigint":   types.Bigint,
	"float":    types.Float,
	"double":   types.Double,
	"varchar":  types.Varchar,
	"date":     types.Date,
	"datetime": types.DateTime,
	"decimal":  types.Decimal,
}

// LoadTOML parses a catalog fixture document and registers every table it
// describes. Used by binder/optimizer tests to stand up a catalog without
// hand-assembling ColumnCatalog literals for every scenario.
func (c *Catalog) LoadTOML(doc []byte) error {
	var parsed struct {
		Table []tableFixture `toml:"table"`
	}
	if err := toml.Unmarshal(doc, &parsed); err != nil {
		return err
	}
	for _, tf := range parsed.Table {
		cols := make([]catalog.ColumnRef, 0, len(tf.Columns))
		for _, cf := range tf.Columns {
			cols = append(cols, catalog.NewColumn(cf.Name, cf.Nullable, catalog.ColumnDesc{
				Datatype:  typeByName[cf.Type],
				IsPrimary: cf.Primary,
			}))
		}
		c.Put(catalog.NewTable(tf.Name, cols))
	}
	return nil
}
