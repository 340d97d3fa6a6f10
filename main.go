package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"library-management/handler"
	"library-management/log"
	"library-management/repository"
	"library-management/service"
)

func main() {
	db := repository.InitDatabase()
	books := repository.NewBookRepo(db)
	users := repository.NewUserRepo(db)
	loans := repository.NewLoanRepo(db)

	h := handler.New(
		service.NewCatalogService(db, books),
		service.NewMembershipService(db, users),
		service.NewLendingService(db, books, users, loans),
		service.NewQueryService(books),
	)

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger())
	h.Register(router)

	if err := router.Run(":8080"); err != nil {
		log.GetLogger(context.Background()).WithError(err).Fatalf("server stopped: %s", err)
	}
}
