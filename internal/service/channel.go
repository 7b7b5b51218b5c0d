package service

import (
	"VidHub/internal/data"
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/pkg/apperr"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type CreateChannelInput struct {
	Name        string
	Description string
	Banner      string
}

// UpdateChannelInput 中nil表示不修改；名称和横幅的空字符串也不修改
type UpdateChannelInput struct {
	Name        *string
	Description *string
	Banner      *string
}

type ChannelService interface {
	ListChannels(ctx context.Context) ([]model.Channel, error)
	GetChannel(ctx context.Context, channelID uint64) (*model.Channel, error)
	GetChannelByOwner(ctx context.Context, ownerID uint64) (*model.Channel, error)
	CreateChannel(ctx context.Context, ownerID uint64, in CreateChannelInput) (*model.Channel, error)
	UpdateChannel(ctx context.Context, callerID, channelID uint64, in UpdateChannelInput) (*model.Channel, error)
}

type channelService struct {
	channelRepo repository.ChannelRepository
	uow         data.UnitOfWork
}

func NewChannelService(channelRepo repository.ChannelRepository, uow data.UnitOfWork) ChannelService {
	return &channelService{channelRepo: channelRepo, uow: uow}
}

var errChannelExists = apperr.Validation("You already have a channel")

func (s *channelService) ListChannels(ctx context.Context) ([]model.Channel, error) {
	channels, err := s.channelRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return channels, nil
}

func (s *channelService) GetChannel(ctx context.Context, channelID uint64) (*model.Channel, error) {
	channel, err := s.channelRepo.FindDetailByID(ctx, channelID)
	if err != nil {
		return nil, storageErr(err, "Channel not found")
	}
	return channel, nil
}

func (s *channelService) GetChannelByOwner(ctx context.Context, ownerID uint64) (*model.Channel, error) {
	channel, err := s.channelRepo.FindDetailByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, storageErr(err, "Channel not found")
	}
	return channel, nil
}

// 创建频道：1、校验名称 2、事务内先查拥有者是否已有频道 3、插入频道（owner_id唯一索引兜底并发） 4、返回带拥有者的频道
// 用户的频道列表由channels.owner_id反推，插入成功列表就多了一项
func (s *channelService) CreateChannel(ctx context.Context, ownerID uint64, in CreateChannelInput) (*model.Channel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("Channel name is required")
	}
	banner := in.Banner
	if banner == "" {
		banner = model.DefaultChannelBanner
	}

	channel := &model.Channel{
		Name:        name,
		OwnerID:     ownerID,
		Description: in.Description,
		Banner:      banner,
	}
	err := s.uow.Execute(ctx, func(repos *data.TransactionalRepositories) error {
		// 拥有者必须是存在的用户
		if _, err := repos.UserRepo.FindByID(ctx, ownerID); err != nil {
			return storageErr(err, "User not found")
		}
		if _, err := repos.ChannelRepo.FindByOwnerID(ctx, ownerID); err == nil {
			return errChannelExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repos.ChannelRepo.Create(ctx, channel)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errChannelExists
		}
		return nil, storageErr(err, "Channel not found")
	}
	return s.GetChannel(ctx, channel.ID)
}

// 更新频道：只有拥有者能改，只能改名称、简介、横幅
func (s *channelService) UpdateChannel(ctx context.Context, callerID, channelID uint64, in UpdateChannelInput) (*model.Channel, error) {
	channel, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return nil, storageErr(err, "Channel not found")
	}
	if channel.OwnerID != callerID {
		return nil, apperr.Forbidden("You do not own this channel")
	}

	// 名称和横幅传空值视为不修改，简介可以清空
	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			channel.Name = name
		}
	}
	if in.Description != nil {
		channel.Description = *in.Description
	}
	if in.Banner != nil && *in.Banner != "" {
		channel.Banner = *in.Banner
	}

	if err := s.channelRepo.UpdateProfile(ctx, channel); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetChannel(ctx, channel.ID)
}
