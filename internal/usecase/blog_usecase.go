package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"urbancare-clinic-api/internal/converter"
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/domain/repository"
	"urbancare-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogImageUpload describes an optional cover image attached to a new post
type BlogImageUpload struct {
	Body        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// BlogUsecase manages blog posts and their cover images
type BlogUsecase interface {
	GetAllPosts(ctx context.Context) (*dto.BlogPostListResponse, error)
	GetPost(ctx context.Context, id uint) (*dto.BlogPostResponse, error)
	CreatePost(ctx context.Context, req *dto.CreateBlogPostRequest, image *BlogImageUpload) (*dto.BlogPostResponse, error)
}

type blogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	blogRepo     repository.BlogPostRepository
	imageStore   service.ImageStore
	auditService service.AuditService
}

func NewBlogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blogRepo repository.BlogPostRepository,
	imageStore service.ImageStore,
	auditService service.AuditService,
) BlogUsecase {
	return &blogUsecase{
		db:           db,
		log:          log,
		blogRepo:     blogRepo,
		imageStore:   imageStore,
		auditService: auditService,
	}
}

func (u *blogUsecase) GetAllPosts(ctx context.Context) (*dto.BlogPostListResponse, error) {
	posts, err := u.blogRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find blog posts: %+v", err)
		return nil, err
	}

	return &dto.BlogPostListResponse{
		Posts: converter.BlogPostsToResponses(posts),
		Total: len(posts),
	}, nil
}

func (u *blogUsecase) GetPost(ctx context.Context, id uint) (*dto.BlogPostResponse, error) {
	post, err := u.blogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find blog post %d: %+v", id, err)
		return nil, err
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}

	return converter.BlogPostToResponse(post), nil
}

// CreatePost uploads the cover image first, then inserts the post. A failed
// upload aborts the whole operation; a failed insert leaves an orphaned
// object behind, which is harmless and cheaper than a delete round-trip.
func (u *blogUsecase) CreatePost(ctx context.Context, req *dto.CreateBlogPostRequest, image *BlogImageUpload) (*dto.BlogPostResponse, error) {
	var imageURL *string
	if image != nil {
		url, err := u.imageStore.Upload(ctx, image.Body, image.Filename, image.ContentType, image.Size)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	post := &entity.BlogPost{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		ImageURL:    imageURL,
	}

	if err := u.blogRepo.Create(u.db.WithContext(ctx), post); err != nil {
		u.log.Errorf("Failed to create blog post: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionBlogCreate, "blog_post", fmt.Sprint(post.ID), entity.JSON{
		"title":  post.Title,
		"author": post.Author,
	})

	u.log.Infof("Blog post created: id=%d, title=%s", post.ID, post.Title)
	return converter.BlogPostToResponse(post), nil
}
