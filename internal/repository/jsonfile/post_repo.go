package jsonfile

import (
	"context"
	"sort"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"
)

type PostRepoImpl struct {
	store *Store
}

func NewPostRepo(store *Store) repository.PostRepo {
	return &PostRepoImpl{store: store}
}

func (s *PostRepoImpl) CreatePost(_ context.Context, post *model.Post) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return err
	}
	var maxID uint64
	for _, p := range posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	now := time.Now()
	post.ID = maxID + 1
	post.CreatedAt = now
	post.UpdatedAt = now
	posts = append(posts, post)
	return s.store.save(postsFile, posts)
}

func (s *PostRepoImpl) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *PostRepoImpl) ListPosts(_ context.Context) ([]*model.PostSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return nil, err
	}
	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return nil, err
	}
	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return nil, err
	}

	commentCounts := make(map[uint64]int64)
	for _, c := range comments {
		commentCounts[c.PostID]++
	}
	likeCounts := make(map[uint64]int64)
	for _, l := range likes {
		likeCounts[l.PostID]++
	}

	summaries := make([]*model.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, &model.PostSummary{
			ID:             p.ID,
			Title:          p.Title,
			LikeCount:      likeCounts[p.ID],
			Views:          p.Views,
			CommentCount:   commentCounts[p.ID],
			AuthorNickname: p.AuthorNickname,
			AuthorProfile:  p.AuthorProfileImage,
			CreatedAt:      p.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (s *PostRepoImpl) UpdatePost(_ context.Context, id uint64, fields map[string]interface{}) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return 0, err
	}
	for _, p := range posts {
		if p.ID != id {
			continue
		}
		if v, ok := fields["title"].(string); ok {
			p.Title = v
		}
		if v, ok := fields["content"].(string); ok {
			p.Content = v
		}
		if v, ok := fields["image"].(string); ok {
			p.Image = &v
		}
		p.UpdatedAt = time.Now()
		return 1, s.store.save(postsFile, posts)
	}
	return 0, nil
}

func (s *PostRepoImpl) DeletePost(_ context.Context, id uint64) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return 0, err
	}
	kept := posts[:0]
	var removed int64
	for _, p := range posts {
		if p.ID == id {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.save(postsFile, kept); err != nil {
		return 0, err
	}

	// cascade comments and likes of the deleted post
	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return removed, err
	}
	keptComments := comments[:0]
	for _, c := range comments {
		if c.PostID != id {
			keptComments = append(keptComments, c)
		}
	}
	if err := s.store.save(commentsFile, keptComments); err != nil {
		return removed, err
	}

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return removed, err
	}
	keptLikes := likes[:0]
	for _, l := range likes {
		if l.PostID != id {
			keptLikes = append(keptLikes, l)
		}
	}
	return removed, s.store.save(likesFile, keptLikes)
}

func (s *PostRepoImpl) IncrementViews(_ context.Context, id uint64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return err
	}
	for _, p := range posts {
		if p.ID == id {
			p.Views++
			return s.store.save(postsFile, posts)
		}
	}
	return nil
}

func (s *PostRepoImpl) UpdateAuthorByEmail(_ context.Context, email, nickname, profileImage string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var posts []*model.Post
	if err := s.store.load(postsFile, &posts); err != nil {
		return err
	}
	changed := false
	for _, p := range posts {
		if p.AuthorEmail == email {
			p.AuthorNickname = nickname
			p.AuthorProfileImage = profileImage
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.store.save(postsFile, posts)
}
