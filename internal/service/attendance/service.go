package attendance

import (
	"context"
	"time"

	"github.com/attendly/hr-console-go/internal/domain/attendance"
	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Helper function to extract the tenant from session claims
func getSessionHRID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrNoSession
	}

	hrID, ok := claims["hr_id"].(string)
	if !ok || hrID == "" {
		return "", auth.ErrNoSession
	}

	return hrID, nil
}

func mapRecordToResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         rec.ID,
		OwnerID:    rec.OwnerID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Mark implements attendance.AttendanceService. The generated id is only
// used when no record exists yet for (employee, date); an overwrite keeps
// the stored record's identity.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// The employee must exist under this tenant before a day can be marked
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, hrID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	saved, err := s.attendanceRepo.Upsert(ctx, attendance.AttendanceRecord{
		ID:         uuid.NewString(),
		OwnerID:    hrID,
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapRecordToResponse(saved), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, hrID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, employeeID string) (attendance.SummaryResponse, error) {
	hrID, err := getSessionHRID(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, hrID); err != nil {
		return attendance.SummaryResponse{}, err
	}

	present, absent, err := s.attendanceRepo.CountByStatus(ctx, hrID, employeeID)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		EmployeeID:  employeeID,
		PresentDays: present,
		AbsentDays:  absent,
		TotalDays:   present + absent,
	}, nil
}
