package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/zogakzip-lab/backend/config"
	"github.com/zogakzip-lab/backend/internal/domain"
	"github.com/zogakzip-lab/backend/internal/domain/badge"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/logger"
	"github.com/zogakzip-lab/backend/pkg/router"
	"github.com/zogakzip-lab/backend/pkg/storage"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"github.com/zogakzip-lab/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs

	groupRepo      repository.GroupRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	tagRepo        repository.TagRepository
	groupLikeRepo  repository.GroupLikeRepository
	postLikeRepo   repository.PostLikeRepository
	badgeRepo      repository.BadgeRepository
	groupBadgeRepo repository.GroupBadgeRepository

	badgeManager *badge.Manager

	groupDomain   domain.GroupDomain
	postDomain    domain.PostDomain
	commentDomain domain.CommentDomain
	imageDomain   domain.ImageDomain

	storage     storage.Storage
	redisClient xredis.Client

	router *router.Router
}

func (s *srv) loadConfig() {
	s.configs = config.Load()
	s.ctx = xcontext.WithConfigs(context.Background(), s.configs)
}

func (s *srv) loadLogger() {
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.ParseLevel(s.configs.LogLevel)))
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx, s.configs.Redis.Addr)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRepos() {
	s.groupRepo = repository.NewGroupRepository(s.redisClient)
	s.postRepo = repository.NewPostRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.tagRepo = repository.NewTagRepository()
	s.groupLikeRepo = repository.NewGroupLikeRepository()
	s.postLikeRepo = repository.NewPostLikeRepository()
	s.badgeRepo = repository.NewBadgeRepository()
	s.groupBadgeRepo = repository.NewGroupBadgeRepository()
}

func (s *srv) loadBadgeManager() {
	s.badgeManager = badge.NewManager(
		s.badgeRepo,
		s.groupBadgeRepo,
		badge.NewPostingStreakScanner(s.postRepo),
		badge.NewPostCountScanner(s.postRepo),
		badge.NewAnniversaryScanner(s.groupRepo),
		badge.NewGroupLikesScanner(s.groupLikeRepo),
		badge.NewPostLikesScanner(s.postRepo, s.postLikeRepo),
	)
}

func (s *srv) loadDomains() {
	s.groupDomain = domain.NewGroupDomain(
		s.groupRepo, s.postRepo, s.groupLikeRepo, s.groupBadgeRepo, s.badgeManager)
	s.postDomain = domain.NewPostDomain(
		s.postRepo, s.groupRepo, s.tagRepo, s.postLikeRepo, s.commentRepo, s.badgeManager)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.postRepo)
	s.imageDomain = domain.NewImageDomain(s.storage)
}
