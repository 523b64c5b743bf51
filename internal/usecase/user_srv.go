package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/internal/dto/response"
	"retail-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) error

	ListContacts(ctx context.Context, userID uuid.UUID) ([]response.ContactResponse, error)
	CreateContact(ctx context.Context, userID uuid.UUID, req *request.CreateContactRequest) (*response.ContactResponse, error)
	UpdateContact(ctx context.Context, userID uuid.UUID, req *request.UpdateContactRequest) error
	DeleteContacts(ctx context.Context, userID uuid.UUID, items string) (int64, error)
}

type userService struct {
	repo *repository.Repository
	tx   repository.Transactor
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, tx repository.Transactor, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	contacts, err := s.repo.Contact.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}

	resp := response.UserToResponse(user, contacts)
	return &resp, nil
}

// UpdateProfile applies the non-nil fields of req.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, user.Email) {
		other, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if other != nil {
			return ErrEmailTaken
		}
		user.Email = *req.Email
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Type != nil {
		user.Type = entity.AccountType(*req.Type)
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	user.UpdatedAt = time.Now()
	err = s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		if err := repos.User.Update(ctx, user); err != nil {
			return err
		}
		if req.Password == nil {
			return nil
		}

		// Other devices must log in again with the new password.
		current, _ := utils.GetTokenFromContext(ctx)
		return repos.Session.RevokeAllUserSessions(ctx, user.ID, current)
	})
	if repository.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.log.Info("Profile updated",
		zap.String("user_id", user.ID.String()),
		zap.String("type", string(user.Type)),
		zap.Bool("password_changed", req.Password != nil))

	return nil
}

func (s *userService) ListContacts(ctx context.Context, userID uuid.UUID) ([]response.ContactResponse, error) {
	contacts, err := s.repo.Contact.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	return response.ContactsToResponse(contacts), nil
}

func (s *userService) CreateContact(ctx context.Context, userID uuid.UUID, req *request.CreateContactRequest) (*response.ContactResponse, error) {
	contact := &entity.Contact{
		UserID:    userID,
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Structure: req.Structure,
		Building:  req.Building,
		Apartment: req.Apartment,
		Phone:     req.Phone,
	}

	if err := s.repo.Contact.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *userService) UpdateContact(ctx context.Context, userID uuid.UUID, req *request.UpdateContactRequest) error {
	contact, err := s.repo.Contact.FindByIDForUser(ctx, req.ID, userID)
	if err != nil {
		return fmt.Errorf("find contact: %w", err)
	}
	if contact == nil {
		return ErrContactNotFound
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&contact.City, req.City)
	assign(&contact.Street, req.Street)
	assign(&contact.House, req.House)
	assign(&contact.Structure, req.Structure)
	assign(&contact.Building, req.Building)
	assign(&contact.Apartment, req.Apartment)
	assign(&contact.Phone, req.Phone)

	if err := s.repo.Contact.Update(ctx, contact); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

func (s *userService) DeleteContacts(ctx context.Context, userID uuid.UUID, items string) (int64, error) {
	ids, ok := utils.ParseIDList(items)
	if !ok {
		return 0, ErrInvalidIDs
	}

	deleted, err := s.repo.Contact.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete contacts: %w", err)
	}

	return deleted, nil
}
