package option

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
)

// defaultOptions is installed once at startup so a fresh deployment has
// usable registration dropdowns.
var defaultOptions = []option.Option{
	{Type: option.TypeHonor, Value: "Mr."},
	{Type: option.TypeHonor, Value: "Mrs."},
	{Type: option.TypeHonor, Value: "Ms."},
	{Type: option.TypeHonor, Value: "Dr."},
	{Type: option.TypeLevel, Value: "Intern"},
	{Type: option.TypeLevel, Value: "Junior"},
	{Type: option.TypeLevel, Value: "Mid-level"},
	{Type: option.TypeLevel, Value: "Senior"},
	{Type: option.TypeDepartment, Value: "HR"},
	{Type: option.TypeDepartment, Value: "Finance"},
	{Type: option.TypeDepartment, Value: "IT"},
	{Type: option.TypeParty, Value: "Democratic"},
	{Type: option.TypeParty, Value: "Republican"},
	{Type: option.TypeParty, Value: "Independent"},
	{Type: option.TypeGroup, Value: "Group 1"},
	{Type: option.TypeGroup, Value: "Group 2"},
}

type OptionServiceImpl struct {
	db         *database.DB
	optionRepo option.OptionRepository
	userRepo   user.UserRepository
}

func NewOptionService(db *database.DB, optionRepo option.OptionRepository, userRepo user.UserRepository) option.OptionService {
	return &OptionServiceImpl{
		db:         db,
		optionRepo: optionRepo,
		userRepo:   userRepo,
	}
}

// List implements option.OptionService.
func (s *OptionServiceImpl) List(ctx context.Context) ([]option.OptionResponse, error) {
	options, err := s.optionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]option.OptionResponse, 0, len(options))
	for _, opt := range options {
		responses = append(responses, opt.ToResponse())
	}
	return responses, nil
}

// Create implements option.OptionService.
func (s *OptionServiceImpl) Create(ctx context.Context, req option.CreateOptionRequest) (option.OptionResponse, error) {
	if err := req.Validate(); err != nil {
		return option.OptionResponse{}, err
	}

	optType := option.Type(req.Type)
	value := strings.TrimSpace(req.Value)

	_, err := s.optionRepo.GetByTypeAndValue(ctx, optType, value)
	if err == nil {
		return option.OptionResponse{}, option.ErrOptionExists
	}
	if !errors.Is(err, option.ErrOptionNotFound) {
		return option.OptionResponse{}, err
	}

	created, err := s.optionRepo.Create(ctx, option.Option{
		ID:    uuid.NewString(),
		Type:  optType,
		Value: value,
	})
	if err != nil {
		return option.OptionResponse{}, err
	}

	return created.ToResponse(), nil
}

// Update implements option.OptionService.
func (s *OptionServiceImpl) Update(ctx context.Context, req option.UpdateOptionRequest) (option.OptionResponse, error) {
	if err := req.Validate(); err != nil {
		return option.OptionResponse{}, err
	}

	if err := s.optionRepo.Update(ctx, req.ID, strings.TrimSpace(req.Value)); err != nil {
		return option.OptionResponse{}, err
	}

	updated, err := s.optionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return option.OptionResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements option.OptionService. A value still referenced by
// any user profile cannot be removed.
func (s *OptionServiceImpl) Delete(ctx context.Context, id string) error {
	opt, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.userRepo.ExistsWithOptionValue(ctx, opt.Value)
	if err != nil {
		return err
	}
	if inUse {
		return option.ErrOptionInUse
	}

	return s.optionRepo.Delete(ctx, id)
}

// SeedDefaults implements option.OptionService.
func (s *OptionServiceImpl) SeedDefaults(ctx context.Context) error {
	for _, opt := range defaultOptions {
		opt.ID = uuid.NewString()
		if err := s.optionRepo.Upsert(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}
