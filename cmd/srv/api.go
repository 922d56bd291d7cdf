package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"github.com/zogakzip-lab/backend/internal/middleware"
	"github.com/zogakzip-lab/backend/pkg/metric"
	"github.com/zogakzip-lab/backend/pkg/router"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadStorage()
	s.loadRepos()
	s.loadBadgeManager()
	s.loadDomains()
	s.loadRouter()

	metric.Register(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", cors.AllowAll().Handler(s.router.Handler()))

	httpSrv := &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: mux,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := httpSrv.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Use(middleware.Logger(s.ctx))

	// Group API
	router.POST(s.router, "/createGroup", s.groupDomain.Create)
	router.GET(s.router, "/getGroups", s.groupDomain.GetList)
	router.GET(s.router, "/getGroup", s.groupDomain.Get)
	router.POST(s.router, "/updateGroupByID", s.groupDomain.UpdateByID)
	router.POST(s.router, "/deleteGroupByID", s.groupDomain.DeleteByID)
	router.POST(s.router, "/verifyGroupPassword", s.groupDomain.VerifyPassword)
	router.POST(s.router, "/likeGroup", s.groupDomain.Like)
	router.GET(s.router, "/getGroupVisibility", s.groupDomain.GetVisibility)

	// Post API
	router.POST(s.router, "/createPost", s.postDomain.Create)
	router.GET(s.router, "/getPosts", s.postDomain.GetList)
	router.GET(s.router, "/getPost", s.postDomain.Get)
	router.POST(s.router, "/updatePostByID", s.postDomain.UpdateByID)
	router.POST(s.router, "/deletePostByID", s.postDomain.DeleteByID)
	router.POST(s.router, "/verifyPostPassword", s.postDomain.VerifyPassword)
	router.POST(s.router, "/likePost", s.postDomain.Like)
	router.GET(s.router, "/getPostVisibility", s.postDomain.GetVisibility)

	// Comment API
	router.POST(s.router, "/createComment", s.commentDomain.Create)
	router.GET(s.router, "/getComments", s.commentDomain.GetList)
	router.POST(s.router, "/updateCommentByID", s.commentDomain.UpdateByID)
	router.POST(s.router, "/deleteCommentByID", s.commentDomain.DeleteByID)

	// Image API
	router.POST(s.router, "/uploadImage", s.imageDomain.Upload)
}
