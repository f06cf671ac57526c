package service

import (
	"context"
	"time"

	"revsync-bot/internal/domain"
)

// ShiftEntryService создаёт смены из диалога с сотрудником.
type ShiftEntryService struct {
	Shifts   domain.ShiftRepo
	Resolver domain.Resolver
}

func (s *ShiftEntryService) AddShift(ctx context.Context, tgID int64, date time.Time, outletName, positionName string) (domain.RecordID, error) {
	outletID, err := s.Resolver.OutletID(ctx, outletName)
	if err != nil {
		return "", err
	}
	positionID, err := s.Resolver.PositionID(ctx, positionName)
	if err != nil {
		return "", err
	}
	employeeID, err := s.Resolver.EmployeeByTelegramID(ctx, tgID)
	if err != nil {
		return "", err
	}
	return s.Shifts.Create(ctx, domain.NewShift{
		Date:       date,
		OutletID:   outletID,
		PositionID: positionID,
		EmployeeID: employeeID,
	})
}

func (s *ShiftEntryService) DeleteShift(ctx context.Context, id domain.RecordID) error {
	return s.Shifts.Delete(ctx, id)
}
