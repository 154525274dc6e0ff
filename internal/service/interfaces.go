package service

import "github.com/alexanderramin/courseplan/internal/app"

type PlannerService interface {
	app.PlannerUseCase
}

type CatalogService interface {
	app.CatalogUseCase
}
