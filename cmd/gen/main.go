package main

import (
	"abgad/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StoreModel{},
		model.StoreLocationModel{},
		model.StorePhotoModel{},
		model.StoreVisitModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
