package usecase

import (
	"context"
	"strings"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"
	"craveconnect/internal/validator"
)

type ReviewUsecase struct {
	reviews repo.ReviewRepository
	foods   repo.FoodRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository, foods repo.FoodRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, foods: foods}
}

type CreateReviewInput struct {
	FoodID  int64  `json:"foodId"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type UpdateReviewInput struct {
	Comment *string `json:"comment"`
	Rating  *int    `json:"rating"`
}

func (u *ReviewUsecase) Create(ctx context.Context, p model.Principal, in CreateReviewInput) (model.Review, error) {
	if err := requireUser(p); err != nil {
		return model.Review{}, err
	}
	if in.FoodID <= 0 {
		return model.Review{}, ValidationError("invalid foodId")
	}
	if strings.TrimSpace(in.Comment) == "" {
		return model.Review{}, ValidationError("comment is required")
	}
	if err := validator.Rating(in.Rating); err != nil {
		return model.Review{}, invalidInput(err)
	}
	if _, err := u.foods.FindByID(ctx, in.FoodID); err != nil {
		return model.Review{}, fromRepo(err, "food not found")
	}

	rv := model.Review{
		UserID:  p.ID,
		FoodID:  in.FoodID,
		Comment: strings.TrimSpace(in.Comment),
		Rating:  in.Rating,
	}
	if err := u.reviews.Create(ctx, &rv); err != nil {
		return model.Review{}, fromRepo(err, "review not found")
	}
	return rv, nil
}

// owned loads a review and hides other users' reviews as not found.
func (u *ReviewUsecase) owned(ctx context.Context, p model.Principal, id int64) (model.Review, error) {
	if err := requireUser(p); err != nil {
		return model.Review{}, err
	}
	if id <= 0 {
		return model.Review{}, ValidationError("invalid review id")
	}
	rv, err := u.reviews.FindByID(ctx, id)
	if err != nil {
		return model.Review{}, fromRepo(err, "review not found")
	}
	if rv.UserID != p.ID {
		return model.Review{}, NotFound("review not found")
	}
	return rv, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, p model.Principal, id int64, in UpdateReviewInput) (model.Review, error) {
	rv, err := u.owned(ctx, p, id)
	if err != nil {
		return model.Review{}, err
	}
	if in.Comment != nil {
		if strings.TrimSpace(*in.Comment) == "" {
			return model.Review{}, ValidationError("comment is required")
		}
		rv.Comment = strings.TrimSpace(*in.Comment)
	}
	if in.Rating != nil {
		if err := validator.Rating(*in.Rating); err != nil {
			return model.Review{}, invalidInput(err)
		}
		rv.Rating = *in.Rating
	}
	if err := u.reviews.Update(ctx, &rv); err != nil {
		return model.Review{}, fromRepo(err, "review not found")
	}
	return rv, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, p model.Principal, id int64) (model.Review, error) {
	rv, err := u.owned(ctx, p, id)
	if err != nil {
		return model.Review{}, err
	}
	if err := u.reviews.Delete(ctx, id); err != nil {
		return model.Review{}, fromRepo(err, "review not found")
	}
	return rv, nil
}

// List returns the caller's own reviews.
func (u *ReviewUsecase) List(ctx context.Context, p model.Principal) ([]model.Review, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	reviews, err := u.reviews.List(ctx, repo.ReviewFilter{UserID: p.ID})
	if err != nil {
		return nil, fromRepo(err, "review not found")
	}
	return reviews, nil
}
