package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/model/dto"
	"hotelier/internal/domains/user/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/password"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	IssueGuestCredentialsTx(ctx context.Context, tx *sqlx.Tx, displayName string) (dto.GuestCredentials, error)
	DeactivateTx(ctx context.Context, tx *sqlx.Tx, userID string) error
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, usernameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if username exists")

		return fmt.Errorf("failed to check if username exists: %w", err)
	}

	if exists {
		return failure.Conflict("username already taken") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(actor, hashed)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

// IssueGuestCredentialsTx creates an ephemeral guest account inside the
// check-in transaction. The username is derived from the creation timestamp
// for practical uniqueness; the password is random and returned in plaintext
// exactly once so staff can hand it to the guest.
func (s *serviceImpl) IssueGuestCredentialsTx(ctx context.Context, tx *sqlx.Tx, displayName string) (res dto.GuestCredentials, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueGuestCredentialsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	username := fmt.Sprintf("guest%d", now.UnixMilli())

	plaintext, err := password.Generate(password.GeneratedLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate guest password")

		return res, fmt.Errorf("failed to generate guest password: %w", err)
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash guest password")

		return res, fmt.Errorf("failed to hash guest password: %w", err)
	}

	guest := model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashed,
		FullName: displayName,
		Role:     constant.RoleGuest,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if err = s.repo.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest account")

		return res, fmt.Errorf("failed to create guest account: %w", err)
	}

	return dto.GuestCredentials{
		GuestID:  guest.ID,
		Username: username,
		Password: plaintext,
	}, nil
}

// DeactivateTx disables a guest account at checkout. The row is kept so the
// booking history still resolves its guest.
func (s *serviceImpl) DeactivateTx(ctx context.Context, tx *sqlx.Tx, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeactivateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(struct {
		Active bool `db:"active"`
	}{Active: false}, actor)

	// TransformFields skips zero values, so force the flag off.
	fields[model.FieldActive] = false

	if err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate guest account")

		return fmt.Errorf("failed to deactivate guest account: %w", err)
	}

	return nil
}
