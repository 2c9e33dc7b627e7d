package service

import (
	"planboard/dto"
	"planboard/model"
	"planboard/repository"
	"planboard/util"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func profileResponse(u *model.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:              u.ID.String(),
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Profile:         u.Profile,
		IsEmailVerified: u.IsEmailVerified,
		MFAEnabled:      u.MFAEnabled,
	}
}

func (s *UserService) GetProfile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return profileResponse(user), nil
}

// UpdateProfile writes only the fields the client sent; nil pointers in the
// DTO leave their columns untouched.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Profile != nil {
		fields["profile"] = *req.Profile
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(userID, fields); err != nil {
			if util.IsDuplicateKeyError(err) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return profileResponse(user), nil
}
