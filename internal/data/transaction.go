package data

import (
	"VidHub/internal/repository"
	"context"

	"gorm.io/gorm"
)

// UnitOfWork 定义了我们事务管理器的接口
type UnitOfWork interface {
	// Execute 将一个函数包裹在数据库事务中执行。
	// 它会为这个函数提供能在事务中工作的 Repositories，fn返回error则整个事务回滚。
	Execute(ctx context.Context, fn func(repos *TransactionalRepositories) error) error
}

// TransactionalRepositories 持有所有需要在同一个事务中操作的 Repository。
// 建频道（频道+用户）、发视频（视频+频道）、删视频（视频+频道+评论）都走这里。
type TransactionalRepositories struct {
	UserRepo    repository.UserRepository
	ChannelRepo repository.ChannelRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
}

// db是事务的入口和管理者
type gormUnitOfWork struct {
	db    *gorm.DB
	repos TransactionalRepositories
}

// NewUnitOfWork 创建一个新的、基于GORM的“工作单元”。
// 注意，它接收的是原始的、非事务的 repositories。
func NewUnitOfWork(db *gorm.DB, userRepo repository.UserRepository, channelRepo repository.ChannelRepository,
	videoRepo repository.VideoRepository, commentRepo repository.CommentRepository) UnitOfWork {
	return &gormUnitOfWork{
		db: db,
		repos: TransactionalRepositories{
			UserRepo:    userRepo,
			ChannelRepo: channelRepo,
			VideoRepo:   videoRepo,
			CommentRepo: commentRepo,
		},
	}
}

func (u *gormUnitOfWork) Execute(ctx context.Context, fn func(repos *TransactionalRepositories) error) error {
	// GORM创建了一个事务，并把这个事务的句柄作为参数tx传递给了这个匿名函数
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 临时创建“一次性”的、绑定了特定事务的Repo副本
		transactionalRepos := &TransactionalRepositories{
			UserRepo:    u.repos.UserRepo.WithTx(tx),
			ChannelRepo: u.repos.ChannelRepo.WithTx(tx),
			VideoRepo:   u.repos.VideoRepo.WithTx(tx),
			CommentRepo: u.repos.CommentRepo.WithTx(tx),
		}
		return fn(transactionalRepos)
	})
}
