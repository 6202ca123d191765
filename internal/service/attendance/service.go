package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/attendance"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db         *database.DB
	recordRepo attendance.RecordRepository
	userRepo   user.UserRepository
}

func NewAttendanceService(db *database.DB, recordRepo attendance.RecordRepository, userRepo user.UserRepository) attendance.RecordService {
	return &AttendanceServiceImpl{
		db:         db,
		recordRepo: recordRepo,
		userRepo:   userRepo,
	}
}

// callerFromContext extracts the authenticated recorder from JWT claims.
func (s *AttendanceServiceImpl) callerFromContext(ctx context.Context) (id string, role user.Role, group string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", "", fmt.Errorf("role claim is missing or invalid")
	}
	group, _ = claims["group"].(string)

	return id, user.Role(roleStr), group, nil
}

// Record implements attendance.RecordService. A repeated observation for
// the same (user, date) inserts a superseding record; reporting resolves
// the duplicate by latest creation time.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	callerID, callerRole, callerGroup, err := s.callerFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	subject, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.RecordResponse{}, attendance.ErrSubjectNotFound
		}
		return attendance.RecordResponse{}, err
	}

	// Resolve the group the observation is recorded under. It is frozen
	// onto the record so later transfers don't rewrite history.
	recordGroup := req.Group
	switch callerRole {
	case user.RoleReporter:
		if recordGroup == "" {
			recordGroup = callerGroup
		} else if recordGroup != callerGroup {
			return attendance.RecordResponse{}, attendance.ErrOutsideOwnGroup
		}
	default:
		if recordGroup == "" {
			recordGroup = subject.Group
		}
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		UserID:     subject.ID,
		Date:       req.ParsedDate(),
		Status:     attendance.Status(req.Status),
		Group:      recordGroup,
		RecordedBy: callerID,
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	created.UserName = &subject.Name
	return created.ToResponse(), nil
}

// ListMine implements attendance.RecordService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, userID string, start, end time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.recordRepo.ListByUser(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, rec.ToResponse())
	}
	return responses, nil
}
