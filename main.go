package main

import (
	"github.com/Marmblshko/Simple-blog/config"
	"github.com/Marmblshko/Simple-blog/models"
	"github.com/Marmblshko/Simple-blog/routes"
	"github.com/Marmblshko/Simple-blog/store"
	"github.com/Marmblshko/Simple-blog/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{})

	r := routes.SetupRouter(store.NewGormStore(db))

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
