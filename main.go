package main

import (
	"log"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api/auth"
	"github.com/gearmeet/gearmeet-backend/api/car"
	"github.com/gearmeet/gearmeet-backend/api/event"
	"github.com/gearmeet/gearmeet-backend/api/follow"
	"github.com/gearmeet/gearmeet-backend/api/group"
	"github.com/gearmeet/gearmeet-backend/api/grouppost"
	"github.com/gearmeet/gearmeet-backend/api/member"
	"github.com/gearmeet/gearmeet-backend/api/message"
	"github.com/gearmeet/gearmeet-backend/api/post"
	"github.com/gearmeet/gearmeet-backend/api/user"
	"github.com/gearmeet/gearmeet-backend/authz"
	"github.com/gearmeet/gearmeet-backend/cascade"
	"github.com/gearmeet/gearmeet-backend/db"
	"github.com/gearmeet/gearmeet-backend/env"
	"github.com/gearmeet/gearmeet-backend/follows"
	"github.com/gearmeet/gearmeet-backend/server"
	"github.com/gearmeet/gearmeet-backend/store"
)

func main() {
	logger := log.New(os.Stdout, "gearmeet ", log.LstdFlags|log.Lshortfile)

	gdb, err := db.Open(env.DB_CONN)
	if err != nil {
		logger.Fatalln(err)
	}

	stores := store.New(gdb)
	engine := authz.NewEngine(stores.Groups, stores.Members)
	coordinator := cascade.NewCoordinator(stores, engine, logger)
	reconciler := follows.NewReconciler(stores)

	r := chi.NewRouter()
	server.SetupMiddlewares(r)

	auth.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	user.NewHandlers(logger, stores, coordinator, env.HS256_SECRET).SetupRoutes(r)
	group.NewHandlers(logger, stores, engine, coordinator, env.HS256_SECRET).SetupRoutes(r)
	member.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	grouppost.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	follow.NewHandlers(logger, stores, reconciler, env.HS256_SECRET).SetupRoutes(r)
	post.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	car.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	event.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)
	message.NewHandlers(logger, stores, env.HS256_SECRET).SetupRoutes(r)

	srv := server.New(":"+env.APP_PORT, r)
	logger.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalln(err)
	}
}
