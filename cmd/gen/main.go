// Command gen regenerates the type-safe query package used by the PostgreSQL
// repositories. Run it from the module root after changing a persistence model.
package main

import (
	"gorm.io/gen"

	"bloodlink/internal/infra/persistence/model"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.DonationModel{},
	)

	g.Execute()
}
